package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"bikeshare_analysis/dataset"
	"bikeshare_analysis/models"
)

// processedColumns is the fixed column order of the processed CSV,
// input columns first, derived features after
var processedColumns = []string{
	"datetime", "season", "holiday", "workingday", "weather",
	"temp", "atemp", "humidity", "windspeed",
	"casual", "registered", "count",
	"hour", "weekday", "day_of_week", "month", "year", "date",
	"season_label", "weather_label",
	"temp_category", "atemp_category", "humidity_category", "wind_category",
}

// CSVWriter writes the cleaned, feature-engineered table back out as CSV
type CSVWriter struct {
	// BOMPrefix adds a UTF-8 BOM so Excel opens the file correctly
	BOMPrefix bool
}

// WriteProcessed writes the full table, derived columns included, to path
func (w *CSVWriter) WriteProcessed(path string, table *dataset.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create processed CSV: %w", err)
	}
	defer file.Close()

	if w.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(processedColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range table.Rows {
		if err := writer.Write(processedRow(&table.Rows[i])); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}

	return writer.Error()
}

func processedRow(o *models.Observation) []string {
	return []string{
		o.Datetime.Format(time.RFC3339),
		strconv.Itoa(o.Season),
		strconv.Itoa(o.Holiday),
		strconv.Itoa(o.WorkingDay),
		strconv.Itoa(o.Weather),
		formatFloat(o.Temp),
		formatFloat(o.ATemp),
		formatFloat(o.Humidity),
		formatFloat(o.Windspeed),
		strconv.Itoa(o.Casual),
		strconv.Itoa(o.Registered),
		strconv.Itoa(o.Count),
		strconv.Itoa(o.Hour),
		strconv.Itoa(o.Weekday),
		o.DayOfWeek,
		strconv.Itoa(o.Month),
		strconv.Itoa(o.Year),
		o.Date,
		o.SeasonLabel,
		o.WeatherLabel,
		o.TempCategory,
		o.ATempCategory,
		o.HumidityCategory,
		o.WindCategory,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
