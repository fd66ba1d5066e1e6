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

type trashCanDocument struct {
	XMLName xml.Name       `xml:"trashCans"`
	Items   []trashCanItem `xml:"trashCan"`
}

type trashCanItem struct {
	ID          int            `xml:"id,attr"`
	WasteType   string         `xml:"wasteType,attr"`
	FillStatus  string         `xml:"fillStatus,attr"`
	Address     string         `xml:"address"`
	Coordinates coordinateItem `xml:"coordinates"`
}

type coordinateItem struct {
	Lat float64 `xml:"lat,attr"`
	Lng float64 `xml:"lng,attr"`
}

// TrashCanCodec converts the trash can collection document.
type TrashCanCodec struct{}

func (TrashCanCodec) Kind() string { return "trashcans" }

func (TrashCanCodec) Decode(raw []byte) ([]models.TrashCan, error) {
	if isEmptyDocument(raw) {
		return []models.TrashCan{}, nil
	}

	var doc trashCanDocument
	if err := unmarshalDocument(raw, &doc); err != nil {
		return nil, err
	}

	records := make([]models.TrashCan, 0, len(doc.Items))
	for _, item := range doc.Items {
		records = append(records, models.TrashCan{
			ID:         item.ID,
			Address:    item.Address,
			Latitude:   item.Coordinates.Lat,
			Longitude:  item.Coordinates.Lng,
			WasteType:  models.WasteType(item.WasteType),
			FillStatus: models.FillStatus(item.FillStatus),
		})
	}

	return records, nil
}

func (TrashCanCodec) Encode(records []models.TrashCan) ([]byte, error) {
	doc := trashCanDocument{Items: make([]trashCanItem, 0, len(records))}
	for _, r := range records {
		doc.Items = append(doc.Items, trashCanItem{
			ID:         r.ID,
			WasteType:  string(r.WasteType),
			FillStatus: string(r.FillStatus),
			Address:    r.Address,
			Coordinates: coordinateItem{
				Lat: r.Latitude,
				Lng: r.Longitude,
			},
		})
	}

	return marshalDocument(doc)
}
