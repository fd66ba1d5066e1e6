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

package reporting_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MeBouha/greenBin-sub000/pkg/models"
	"github.com/MeBouha/greenBin-sub000/pkg/reporting"
)

var _ = Describe("AggregateByWeek", func() {
	canTypes := map[int]models.WasteType{
		1: models.WastePaper,
		2: models.WastePlastic,
	}

	It("folds two reports of the same ISO week into one bucket", func() {
		agg := reporting.NewAggregator(canTypes)

		reports := []models.Report{
			{ID: 1, Date: "2024-03-04", Metrics: models.ReportMetrics{CO2Kg: 5.0}},
			{ID: 2, Date: "2024-03-06", Metrics: models.ReportMetrics{CO2Kg: 7.5}},
		}

		weeks := agg.AggregateByWeek(reports)
		Expect(weeks).To(HaveLen(1))
		Expect(weeks[0].WeekStart).To(Equal(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)))
		Expect(weeks[0].WeekEnd).To(Equal(time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)))
		Expect(weeks[0].TotalCO2).To(BeNumerically("~", 12.5))
		Expect(weeks[0].ReportCount).To(Equal(2))
	})

	It("splits reports of different weeks and orders buckets by start", func() {
		agg := reporting.NewAggregator(canTypes)

		reports := []models.Report{
			{ID: 2, Date: "2024-03-12", Metrics: models.ReportMetrics{CO2Kg: 2.0}},
			{ID: 1, Date: "2024-03-04", Metrics: models.ReportMetrics{CO2Kg: 5.0}},
		}

		weeks := agg.AggregateByWeek(reports)
		Expect(weeks).To(HaveLen(2))
		Expect(weeks[0].WeekStart.Before(weeks[1].WeekStart)).To(BeTrue())
	})

	It("buckets a Sunday into the week of the preceding Monday", func() {
		agg := reporting.NewAggregator(canTypes)

		weeks := agg.AggregateByWeek([]models.Report{
			{ID: 1, Date: "2024-03-10"},
		})
		Expect(weeks).To(HaveLen(1))
		Expect(weeks[0].WeekStart).To(Equal(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)))
	})

	It("sums collected mass per waste category through the can index", func() {
		agg := reporting.NewAggregator(canTypes)

		weeks := agg.AggregateByWeek([]models.Report{
			{
				ID:   1,
				Date: "2024-03-04",
				Collections: []models.CanCollection{
					{TrashCanID: 1, Quantity: 10},
					{TrashCanID: 2, Quantity: 4},
					{TrashCanID: 1, Quantity: 2.5},
				},
			},
		})
		Expect(weeks).To(HaveLen(1))
		Expect(weeks[0].WasteByCategory[models.WastePaper]).To(BeNumerically("~", 12.5))
		Expect(weeks[0].WasteByCategory[models.WastePlastic]).To(BeNumerically("~", 4))
		Expect(weeks[0].WasteByCategory[models.WasteGlass]).To(BeZero())
	})

	It("counts collections from unknown cans as other", func() {
		agg := reporting.NewAggregator(canTypes)

		weeks := agg.AggregateByWeek([]models.Report{
			{ID: 1, Date: "2024-03-04", Collections: []models.CanCollection{{TrashCanID: 99, Quantity: 3}}},
		})
		Expect(weeks[0].WasteByCategory[models.WasteOther]).To(BeNumerically("~", 3))
	})

	It("dates an undated report by the clock", func() {
		now := time.Date(2024, time.March, 6, 12, 0, 0, 0, time.UTC)
		agg := reporting.NewAggregator(canTypes).WithClock(func() time.Time { return now })

		weeks := agg.AggregateByWeek([]models.Report{{ID: 1}})
		Expect(weeks).To(HaveLen(1))
		Expect(weeks[0].WeekStart).To(Equal(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)))
	})

	It("returns no buckets for no reports", func() {
		agg := reporting.NewAggregator(canTypes)
		Expect(agg.AggregateByWeek(nil)).To(BeEmpty())
	})
})

var _ = Describe("AggregateByMonth", func() {
	It("rolls week buckets up into their calendar month", func() {
		agg := reporting.NewAggregator(nil)

		reports := []models.Report{
			{ID: 1, Date: "2024-03-04", Metrics: models.ReportMetrics{CO2Kg: 5.0}},
			{ID: 2, Date: "2024-03-06", Metrics: models.ReportMetrics{CO2Kg: 7.5}},
		}

		months := agg.AggregateByMonth(agg.AggregateByWeek(reports))
		Expect(months).To(HaveLen(1))
		Expect(months[0].Year).To(Equal(2024))
		Expect(months[0].Month).To(Equal(time.March))
		Expect(months[0].TotalCO2).To(BeNumerically("~", 12.5))
		Expect(months[0].ReportCount).To(Equal(2))
	})

	It("assigns a week to the month of its start date", func() {
		agg := reporting.NewAggregator(nil)

		// 2024-03-31 is a Sunday; its week starts Monday 2024-03-25.
		months := agg.AggregateByMonth(agg.AggregateByWeek([]models.Report{
			{ID: 1, Date: "2024-03-31", Metrics: models.ReportMetrics{CO2Kg: 1.0}},
		}))
		Expect(months).To(HaveLen(1))
		Expect(months[0].Month).To(Equal(time.March))
	})

	It("orders months chronologically across years", func() {
		agg := reporting.NewAggregator(nil)

		months := agg.AggregateByMonth(agg.AggregateByWeek([]models.Report{
			{ID: 1, Date: "2025-01-06"},
			{ID: 2, Date: "2024-12-02"},
		}))
		Expect(months).To(HaveLen(2))
		Expect(months[0].Year).To(Equal(2024))
		Expect(months[1].Year).To(Equal(2025))
	})
})
