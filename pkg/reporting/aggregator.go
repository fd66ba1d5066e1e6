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

// Package reporting folds the report collection into weekly and monthly
// aggregate buckets for dashboards. Aggregation never mutates any
// collection.
package reporting

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/MeBouha/greenBin-sub000/pkg/logger"
	"github.com/MeBouha/greenBin-sub000/pkg/models"
)

// WeekBucket is one ISO week of aggregated report figures. The interval is
// [WeekStart, WeekEnd).
type WeekBucket struct {
	WeekStart       time.Time
	WeekEnd         time.Time
	TotalCO2        float64
	WasteByCategory map[models.WasteType]float64
	ReportCount     int
}

// MonthBucket groups week buckets by the calendar month of their start
// date.
type MonthBucket struct {
	Year            int
	Month           time.Month
	TotalCO2        float64
	WasteByCategory map[models.WasteType]float64
	ReportCount     int
}

// Aggregator buckets reports into weekly and monthly totals. The waste-type
// index maps trash can ids to their category; collections from cans missing
// from the index count as "other".
type Aggregator struct {
	canTypes map[int]models.WasteType
	clock    func() time.Time
	log      *zap.SugaredLogger
}

// NewAggregator creates an aggregator over the given waste-type index.
func NewAggregator(canTypes map[int]models.WasteType) *Aggregator {
	return &Aggregator{
		canTypes: canTypes,
		clock:    time.Now,
		log:      logger.For(logger.ComponentReporting),
	}
}

// WithClock replaces the clock used for reports without a date. Useful for
// tests; aggregation of dated reports never consults the clock.
func (a *Aggregator) WithClock(clock func() time.Time) *Aggregator {
	a.clock = clock
	return a
}

// AggregateByWeek folds reports into ISO-week buckets, ordered by week
// start. Bucket boundaries and sums depend only on the report set.
func (a *Aggregator) AggregateByWeek(reports []models.Report) []WeekBucket {
	byStart := make(map[time.Time]*WeekBucket)

	for _, r := range reports {
		start := weekStart(a.reportDate(r))

		bucket, ok := byStart[start]
		if !ok {
			bucket = &WeekBucket{
				WeekStart:       start,
				WeekEnd:         start.AddDate(0, 0, 7),
				WasteByCategory: emptyCategories(),
			}
			byStart[start] = bucket
		}

		bucket.TotalCO2 += r.Metrics.CO2Kg
		bucket.ReportCount++

		for _, c := range r.Collections {
			bucket.WasteByCategory[a.category(c.TrashCanID)] += c.Quantity
		}
	}

	buckets := make([]WeekBucket, 0, len(byStart))
	for _, b := range byStart {
		buckets = append(buckets, *b)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].WeekStart.Before(buckets[j].WeekStart)
	})

	return buckets
}

// AggregateByMonth groups week buckets by the calendar month of their start
// date, ordered chronologically.
func (a *Aggregator) AggregateByMonth(weeks []WeekBucket) []MonthBucket {
	type monthKey struct {
		year  int
		month time.Month
	}

	byMonth := make(map[monthKey]*MonthBucket)

	for _, w := range weeks {
		key := monthKey{year: w.WeekStart.Year(), month: w.WeekStart.Month()}

		bucket, ok := byMonth[key]
		if !ok {
			bucket = &MonthBucket{
				Year:            key.year,
				Month:           key.month,
				WasteByCategory: emptyCategories(),
			}
			byMonth[key] = bucket
		}

		bucket.TotalCO2 += w.TotalCO2
		bucket.ReportCount += w.ReportCount

		for category, mass := range w.WasteByCategory {
			bucket.WasteByCategory[category] += mass
		}
	}

	buckets := make([]MonthBucket, 0, len(byMonth))
	for _, b := range byMonth {
		buckets = append(buckets, *b)
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year < buckets[j].Year
		}

		return buckets[i].Month < buckets[j].Month
	})

	return buckets
}

// reportDate parses a report's date. A report without a usable date falls
// back to the clock.
func (a *Aggregator) reportDate(r models.Report) time.Time {
	if r.Date == "" {
		return a.clock()
	}

	date, err := time.Parse(models.DateLayout, r.Date)
	if err != nil {
		a.log.Warnf("report %d carries unparseable date %q", r.ID, r.Date)
		return a.clock()
	}

	return date
}

// category resolves a trash can's waste type through the index. Dangling
// can references count as "other".
func (a *Aggregator) category(canID int) models.WasteType {
	if t, ok := a.canTypes[canID]; ok {
		return t
	}

	return models.WasteOther
}

// weekStart truncates a timestamp to the Monday of its ISO week, at
// midnight UTC.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7

	return day.AddDate(0, 0, -offset)
}

// emptyCategories returns a category map with every category present at
// zero, so consumers see stable keys.
func emptyCategories() map[models.WasteType]float64 {
	return map[models.WasteType]float64{
		models.WastePaper:   0,
		models.WastePlastic: 0,
		models.WasteGlass:   0,
		models.WasteOther:   0,
	}
}
