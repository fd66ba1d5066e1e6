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

type notificationDocument struct {
	XMLName xml.Name           `xml:"notifications"`
	Items   []notificationItem `xml:"notification"`
}

type notificationItem struct {
	ID       int    `xml:"id,attr"`
	LeaderID int    `xml:"leaderId,attr"`
	JobID    int    `xml:"jobId,attr"`
	Content  string `xml:"content"`
}

// NotificationCodec converts the notification collection document.
type NotificationCodec struct{}

func (NotificationCodec) Kind() string { return "notifications" }

func (NotificationCodec) Decode(raw []byte) ([]models.Notification, error) {
	if isEmptyDocument(raw) {
		return []models.Notification{}, nil
	}

	var doc notificationDocument
	if err := unmarshalDocument(raw, &doc); err != nil {
		return nil, err
	}

	records := make([]models.Notification, 0, len(doc.Items))
	for _, item := range doc.Items {
		records = append(records, models.Notification{
			ID:       item.ID,
			LeaderID: item.LeaderID,
			JobID:    item.JobID,
			Content:  item.Content,
		})
	}

	return records, nil
}

func (NotificationCodec) Encode(records []models.Notification) ([]byte, error) {
	doc := notificationDocument{Items: make([]notificationItem, 0, len(records))}
	for _, r := range records {
		doc.Items = append(doc.Items, notificationItem{
			ID:       r.ID,
			LeaderID: r.LeaderID,
			JobID:    r.JobID,
			Content:  r.Content,
		})
	}

	return marshalDocument(doc)
}
