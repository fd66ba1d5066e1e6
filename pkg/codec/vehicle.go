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

type vehicleDocument struct {
	XMLName xml.Name      `xml:"vehicles"`
	Items   []vehicleItem `xml:"vehicle"`
}

type vehicleItem struct {
	ID           int    `xml:"id,attr"`
	Plate        string `xml:"plate,attr"`
	DriverID     int    `xml:"driverId,attr"`
	Availability string `xml:"availability,attr"`
}

// VehicleCodec converts the vehicle collection document.
type VehicleCodec struct{}

func (VehicleCodec) Kind() string { return "vehicles" }

func (VehicleCodec) Decode(raw []byte) ([]models.Vehicle, error) {
	if isEmptyDocument(raw) {
		return []models.Vehicle{}, nil
	}

	var doc vehicleDocument
	if err := unmarshalDocument(raw, &doc); err != nil {
		return nil, err
	}

	records := make([]models.Vehicle, 0, len(doc.Items))
	for _, item := range doc.Items {
		records = append(records, models.Vehicle{
			ID:           item.ID,
			Plate:        item.Plate,
			DriverID:     item.DriverID,
			Availability: models.Availability(item.Availability),
		})
	}

	return records, nil
}

func (VehicleCodec) Encode(records []models.Vehicle) ([]byte, error) {
	doc := vehicleDocument{Items: make([]vehicleItem, 0, len(records))}
	for _, r := range records {
		doc.Items = append(doc.Items, vehicleItem{
			ID:           r.ID,
			Plate:        r.Plate,
			DriverID:     r.DriverID,
			Availability: string(r.Availability),
		})
	}

	return marshalDocument(doc)
}
