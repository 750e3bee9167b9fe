package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"bikeshare_analysis/dataset"
	"bikeshare_analysis/models"
	"bikeshare_analysis/stats"

	"github.com/xuri/excelize/v2"
)

// groupSheet describes one per-grouping sheet of the report workbook
type groupSheet struct {
	Name      string
	GroupCol  string
	ChartType excelize.ChartType
	Title     string
	labelFor  func(key string) string
}

var groupSheets = []groupSheet{
	{
		Name:      "Season",
		GroupCol:  "season",
		ChartType: excelize.Col,
		Title:     "Average Rentals per Season",
		labelFor: func(key string) string {
			code, _ := strconv.Atoi(key)
			return models.SeasonLabelFor(code)
		},
	},
	{
		Name:      "Weather",
		GroupCol:  "weather",
		ChartType: excelize.Col,
		Title:     "Average Rentals per Weather Condition",
		labelFor: func(key string) string {
			code, _ := strconv.Atoi(key)
			return models.WeatherLabelFor(code)
		},
	},
	{
		Name:      "WorkingDay",
		GroupCol:  "workingday",
		ChartType: excelize.Col,
		Title:     "Average Rentals: Working Day vs Off Day",
		labelFor: func(key string) string {
			if key == "1" {
				return "working day"
			}
			return "off day"
		},
	},
	{
		Name:      "Hourly",
		GroupCol:  "hour",
		ChartType: excelize.Line,
		Title:     "Average Rentals by Hour of Day",
		labelFor:  func(key string) string { return key },
	},
}

var summaryHeader = []string{"Group", "Label", "Count", "Mean", "Median", "Sum", "Min", "Max", "StdDev"}

// BuildWorkbook writes the analysis report workbook: an overview sheet with
// the user-type split, one sheet per grouping with summary statistics and a
// chart, and the correlation matrix.
func BuildWorkbook(path string, table *dataset.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Overview"); err != nil {
		return fmt.Errorf("failed to set up overview sheet: %w", err)
	}
	if err := writeOverview(f, table); err != nil {
		return err
	}

	for _, sheet := range groupSheets {
		if err := writeGroupSheet(f, table, sheet); err != nil {
			return err
		}
	}

	if err := writeCorrelations(f, table); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report workbook: %w", err)
	}
	return nil
}

func writeOverview(f *excelize.File, table *dataset.Table) error {
	const sheet = "Overview"

	split := stats.UserTypeShare(table)

	cells := [][2]interface{}{
		{"Bike Sharing Usage Report", nil},
		{"Source", table.Source},
		{"Observations", table.Len()},
		{"Total rentals", split.Total},
		{nil, nil},
		{"User type", "Rentals"},
		{"casual", split.Casual},
		{"registered", split.Registered},
	}
	for i, pair := range cells {
		row := i + 1
		if pair[0] != nil {
			if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), pair[0]); err != nil {
				return fmt.Errorf("failed to write overview: %w", err)
			}
		}
		if pair[1] != nil {
			if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), pair[1]); err != nil {
				return fmt.Errorf("failed to write overview: %w", err)
			}
		}
	}

	chart := &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       "Registered vs Casual Share",
			Categories: "Overview!$A$7:$A$8",
			Values:     "Overview!$B$7:$B$8",
		}},
		Title:  []excelize.RichTextRun{{Text: "Registered vs Casual Share"}},
		Legend: excelize.ChartLegend{Position: "bottom"},
	}
	if err := f.AddChart(sheet, "D2", chart); err != nil {
		return fmt.Errorf("failed to add user share chart: %w", err)
	}
	return nil
}

func writeGroupSheet(f *excelize.File, table *dataset.Table, sheet groupSheet) error {
	summaries, err := stats.Summarize(table, sheet.GroupCol, stats.DefaultAggColumn)
	if err != nil {
		return fmt.Errorf("failed to summarize by %s: %w", sheet.GroupCol, err)
	}

	if _, err := f.NewSheet(sheet.Name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
	}

	for col, name := range summaryHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet.Name, cell, name); err != nil {
			return fmt.Errorf("failed to write header on %s: %w", sheet.Name, err)
		}
	}

	for i, s := range summaries {
		row := i + 2
		values := []interface{}{
			s.Key, sheet.labelFor(s.Key), s.Count,
			s.Mean, s.Median, s.Sum, s.Min, s.Max, s.StdDev,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet.Name, cell, v); err != nil {
				return fmt.Errorf("failed to write row on %s: %w", sheet.Name, err)
			}
		}
	}

	lastRow := len(summaries) + 1
	chart := &excelize.Chart{
		Type: sheet.ChartType,
		Series: []excelize.ChartSeries{{
			Name:       "Mean rentals",
			Categories: fmt.Sprintf("%s!$B$2:$B$%d", sheet.Name, lastRow),
			Values:     fmt.Sprintf("%s!$D$2:$D$%d", sheet.Name, lastRow),
		}},
		Title:  []excelize.RichTextRun{{Text: sheet.Title}},
		Legend: excelize.ChartLegend{Position: "none"},
	}
	if err := f.AddChart(sheet.Name, "K2", chart); err != nil {
		return fmt.Errorf("failed to add chart on %s: %w", sheet.Name, err)
	}
	return nil
}

func writeCorrelations(f *excelize.File, table *dataset.Table) error {
	const sheet = "Correlations"

	matrix, err := stats.Correlations(table)
	if err != nil {
		return fmt.Errorf("failed to compute correlations: %w", err)
	}

	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create correlations sheet: %w", err)
	}

	for i, name := range matrix.Columns {
		topCell, _ := excelize.CoordinatesToCellName(i+2, 1)
		sideCell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetCellValue(sheet, topCell, name); err != nil {
			return fmt.Errorf("failed to write correlation header: %w", err)
		}
		if err := f.SetCellValue(sheet, sideCell, name); err != nil {
			return fmt.Errorf("failed to write correlation header: %w", err)
		}
	}

	for i, row := range matrix.Values {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+2, i+2)
			if err := f.SetCellValue(sheet, cell, round2(v)); err != nil {
				return fmt.Errorf("failed to write correlation cell: %w", err)
			}
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
