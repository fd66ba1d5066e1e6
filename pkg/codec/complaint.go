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

type complaintDocument struct {
	XMLName xml.Name        `xml:"complaints"`
	Items   []complaintItem `xml:"complaint"`
}

type complaintItem struct {
	ID        int    `xml:"id,attr"`
	CitizenID int    `xml:"citizenId,attr"`
	Date      string `xml:"date,attr"`
	Status    string `xml:"status,attr"`
	Category  string `xml:"category,attr"`
	Content   string `xml:"content"`
}

// ComplaintCodec converts the complaint collection document.
type ComplaintCodec struct{}

func (ComplaintCodec) Kind() string { return "complaints" }

func (ComplaintCodec) Decode(raw []byte) ([]models.Complaint, error) {
	if isEmptyDocument(raw) {
		return []models.Complaint{}, nil
	}

	var doc complaintDocument
	if err := unmarshalDocument(raw, &doc); err != nil {
		return nil, err
	}

	records := make([]models.Complaint, 0, len(doc.Items))
	for _, item := range doc.Items {
		records = append(records, models.Complaint{
			ID:        item.ID,
			CitizenID: item.CitizenID,
			Content:   item.Content,
			Date:      item.Date,
			Status:    models.ComplaintStatus(item.Status),
			Category:  models.ComplaintCategory(item.Category),
		})
	}

	return records, nil
}

func (ComplaintCodec) Encode(records []models.Complaint) ([]byte, error) {
	doc := complaintDocument{Items: make([]complaintItem, 0, len(records))}
	for _, r := range records {
		doc.Items = append(doc.Items, complaintItem{
			ID:        r.ID,
			CitizenID: r.CitizenID,
			Date:      r.Date,
			Status:    string(r.Status),
			Category:  string(r.Category),
			Content:   r.Content,
		})
	}

	return marshalDocument(doc)
}
