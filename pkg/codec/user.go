// Copyright 2025 greenBin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package codec

import (
	"encoding/xml"

	"github.com/MeBouha/greenBin-sub000/pkg/models"
)

type userDocument struct {
	XMLName xml.Name   `xml:"users"`
	Items   []userItem `xml:"user"`
}

type userItem struct {
	ID           int         `xml:"id,attr"`
	Role         string      `xml:"role,attr"`
	Availability string      `xml:"availability,attr"`
	Name         string      `xml:"name"`
	Surname      string      `xml:"surname"`
	Account      accountItem `xml:"account"`
}

type accountItem struct {
	Login          string `xml:"login,attr"`
	Password       string `xml:"password,attr"`
	State          string `xml:"state,attr"`
	FailedAttempts int    `xml:"failedAttempts,attr"`
}

// UserCodec converts the user collection document.
type UserCodec struct{}

func (UserCodec) Kind() string { return "users" }

func (UserCodec) Decode(raw []byte) ([]models.User, error) {
	if isEmptyDocument(raw) {
		return []models.User{}, nil
	}

	var doc userDocument
	if err := unmarshalDocument(raw, &doc); err != nil {
		return nil, err
	}

	records := make([]models.User, 0, len(doc.Items))
	for _, item := range doc.Items {
		records = append(records, models.User{
			ID:      item.ID,
			Name:    item.Name,
			Surname: item.Surname,
			Role:    models.Role(item.Role),
			Account: models.Account{
				Login:          item.Account.Login,
				PasswordHash:   item.Account.Password,
				State:          models.AccountState(item.Account.State),
				FailedAttempts: item.Account.FailedAttempts,
			},
			Availability: models.Availability(item.Availability),
		})
	}

	return records, nil
}

func (UserCodec) Encode(records []models.User) ([]byte, error) {
	doc := userDocument{Items: make([]userItem, 0, len(records))}
	for _, r := range records {
		doc.Items = append(doc.Items, userItem{
			ID:           r.ID,
			Role:         string(r.Role),
			Availability: string(r.Availability),
			Name:         r.Name,
			Surname:      r.Surname,
			Account: accountItem{
				Login:          r.Account.Login,
				Password:       r.Account.PasswordHash,
				State:          string(r.Account.State),
				FailedAttempts: r.Account.FailedAttempts,
			},
		})
	}

	return marshalDocument(doc)
}
