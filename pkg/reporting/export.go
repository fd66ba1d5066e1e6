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

package reporting

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/MeBouha/greenBin-sub000/pkg/models"
)

const (
	weeklySheet  = "Weekly"
	monthlySheet = "Monthly"
)

var exportCategories = []models.WasteType{
	models.WastePaper,
	models.WastePlastic,
	models.WasteGlass,
	models.WasteOther,
}

// BuildWorkbook renders weekly and monthly aggregate tables into an Excel
// workbook, one sheet per granularity. The caller owns the returned file.
func BuildWorkbook(weeks []WeekBucket, months []MonthBucket) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", weeklySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	if _, err := f.NewSheet(monthlySheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet %s: %w", monthlySheet, err)
	}

	if err := writeWeeklySheet(f, weeks); err != nil {
		return nil, err
	}

	if err := writeMonthlySheet(f, months); err != nil {
		return nil, err
	}

	return f, nil
}

// ExportFile writes the aggregate workbook to path.
func ExportFile(path string, weeks []WeekBucket, months []MonthBucket) error {
	f, err := BuildWorkbook(weeks, months)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}

	return nil
}

func writeWeeklySheet(f *excelize.File, weeks []WeekBucket) error {
	header := []any{"Week start", "Week end", "Reports", "CO2 (kg)"}
	for _, c := range exportCategories {
		header = append(header, fmt.Sprintf("%s (kg)", c))
	}

	if err := f.SetSheetRow(weeklySheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, w := range weeks {
		row := []any{
			w.WeekStart.Format(models.DateLayout),
			w.WeekEnd.Format(models.DateLayout),
			w.ReportCount,
			w.TotalCO2,
		}
		for _, c := range exportCategories {
			row = append(row, w.WasteByCategory[c])
		}

		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(weeklySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return nil
}

func writeMonthlySheet(f *excelize.File, months []MonthBucket) error {
	header := []any{"Month", "Reports", "CO2 (kg)"}
	for _, c := range exportCategories {
		header = append(header, fmt.Sprintf("%s (kg)", c))
	}

	if err := f.SetSheetRow(monthlySheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, m := range months {
		row := []any{
			fmt.Sprintf("%04d-%02d", m.Year, m.Month),
			m.ReportCount,
			m.TotalCO2,
		}
		for _, c := range exportCategories {
			row = append(row, m.WasteByCategory[c])
		}

		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(monthlySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return nil
}
