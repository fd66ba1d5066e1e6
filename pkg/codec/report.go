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

type reportDocument struct {
	XMLName xml.Name     `xml:"reports"`
	Items   []reportItem `xml:"report"`
}

type reportItem struct {
	ID          int            `xml:"id,attr"`
	Date        string         `xml:"date,attr"`
	RoundID     int            `xml:"roundId,attr"`
	DriverID    int            `xml:"driverId,attr"`
	Attendance  attendanceList `xml:"attendance"`
	Collections collectionList `xml:"collections"`
	Metrics     metricsItem    `xml:"metrics"`
}

type attendanceList struct {
	Items []attendanceItem `xml:"worker"`
}

type attendanceItem struct {
	ID     int    `xml:"id,attr"`
	Name   string `xml:"name,attr"`
	Status string `xml:"status,attr"`
}

type collectionList struct {
	Items []collectionItem `xml:"trashCan"`
}

type collectionItem struct {
	ID       int     `xml:"id,attr"`
	Quantity float64 `xml:"quantity,attr"`
}

type metricsItem struct {
	DistanceKm float64 `xml:"distanceKm,attr"`
	CO2Kg      float64 `xml:"co2Kg,attr"`
	FuelLiters float64 `xml:"fuelLiters,attr"`
}

// ReportCodec converts the report collection document.
type ReportCodec struct{}

func (ReportCodec) Kind() string { return "reports" }

func (ReportCodec) Decode(raw []byte) ([]models.Report, error) {
	if isEmptyDocument(raw) {
		return []models.Report{}, nil
	}

	var doc reportDocument
	if err := unmarshalDocument(raw, &doc); err != nil {
		return nil, err
	}

	records := make([]models.Report, 0, len(doc.Items))
	for _, item := range doc.Items {
		attendance := make([]models.WorkerAttendance, 0, len(item.Attendance.Items))
		for _, a := range item.Attendance.Items {
			attendance = append(attendance, models.WorkerAttendance{
				WorkerID: a.ID,
				Name:     a.Name,
				Status:   models.AttendanceStatus(a.Status),
			})
		}

		collections := make([]models.CanCollection, 0, len(item.Collections.Items))
		for _, c := range item.Collections.Items {
			collections = append(collections, models.CanCollection{
				TrashCanID: c.ID,
				Quantity:   c.Quantity,
			})
		}

		records = append(records, models.Report{
			ID:          item.ID,
			Date:        item.Date,
			RoundID:     item.RoundID,
			DriverID:    item.DriverID,
			Attendance:  attendance,
			Collections: collections,
			Metrics: models.ReportMetrics{
				DistanceKm: item.Metrics.DistanceKm,
				CO2Kg:      item.Metrics.CO2Kg,
				FuelLiters: item.Metrics.FuelLiters,
			},
		})
	}

	return records, nil
}

func (ReportCodec) Encode(records []models.Report) ([]byte, error) {
	doc := reportDocument{Items: make([]reportItem, 0, len(records))}
	for _, r := range records {
		attendance := attendanceList{Items: make([]attendanceItem, 0, len(r.Attendance))}
		for _, a := range r.Attendance {
			attendance.Items = append(attendance.Items, attendanceItem{
				ID:     a.WorkerID,
				Name:   a.Name,
				Status: string(a.Status),
			})
		}

		collections := collectionList{Items: make([]collectionItem, 0, len(r.Collections))}
		for _, c := range r.Collections {
			collections.Items = append(collections.Items, collectionItem{
				ID:       c.TrashCanID,
				Quantity: c.Quantity,
			})
		}

		doc.Items = append(doc.Items, reportItem{
			ID:          r.ID,
			Date:        r.Date,
			RoundID:     r.RoundID,
			DriverID:    r.DriverID,
			Attendance:  attendance,
			Collections: collections,
			Metrics: metricsItem{
				DistanceKm: r.Metrics.DistanceKm,
				CO2Kg:      r.Metrics.CO2Kg,
				FuelLiters: r.Metrics.FuelLiters,
			},
		})
	}

	return marshalDocument(doc)
}
