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

type roundDocument struct {
	XMLName xml.Name    `xml:"rounds"`
	Items   []roundItem `xml:"round"`
}

type roundItem struct {
	ID        int        `xml:"id,attr"`
	Date      string     `xml:"date,attr"`
	VehicleID int        `xml:"vehicleId,attr"`
	Zone      string     `xml:"zone"`
	Workers   workerList `xml:"workers"`
}

type workerList struct {
	Items []workerRef `xml:"worker"`
}

type workerRef struct {
	ID int `xml:"id,attr"`
}

// RoundCodec converts the round collection document.
type RoundCodec struct{}

func (RoundCodec) Kind() string { return "rounds" }

func (RoundCodec) Decode(raw []byte) ([]models.Round, error) {
	if isEmptyDocument(raw) {
		return []models.Round{}, nil
	}

	var doc roundDocument
	if err := unmarshalDocument(raw, &doc); err != nil {
		return nil, err
	}

	records := make([]models.Round, 0, len(doc.Items))
	for _, item := range doc.Items {
		workers := make([]int, 0, len(item.Workers.Items))
		for _, w := range item.Workers.Items {
			workers = append(workers, w.ID)
		}

		records = append(records, models.Round{
			ID:        item.ID,
			Zone:      item.Zone,
			Date:      item.Date,
			VehicleID: item.VehicleID,
			WorkerIDs: workers,
		})
	}

	return records, nil
}

func (RoundCodec) Encode(records []models.Round) ([]byte, error) {
	doc := roundDocument{Items: make([]roundItem, 0, len(records))}
	for _, r := range records {
		workers := workerList{Items: make([]workerRef, 0, len(r.WorkerIDs))}
		for _, id := range r.WorkerIDs {
			workers.Items = append(workers.Items, workerRef{ID: id})
		}

		doc.Items = append(doc.Items, roundItem{
			ID:        r.ID,
			Date:      r.Date,
			VehicleID: r.VehicleID,
			Zone:      r.Zone,
			Workers:   workers,
		})
	}

	return marshalDocument(doc)
}
