package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"bikeshare_analysis/models"

	"github.com/araddon/dateparse"
)

// Load reads a bike sharing CSV from a local path into a Table
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	return LoadReader(file, path)
}

// LoadURL downloads a bike sharing CSV and loads it into a Table
func LoadURL(url string) (*Table, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download dataset: unexpected status %s", resp.Status)
	}

	return LoadReader(resp.Body, url)
}

// LoadReader parses CSV data against the default schema. It fails fast with
// a SchemaError on a missing required column or an unparseable cell; blank
// numeric cells are recorded in the missing mask for Clean to impute.
func LoadReader(r io.Reader, source string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow ragged rows, checked per cell

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV input")
	}

	schema := DefaultSchema()

	// Header names are trimmed and lowercased before matching
	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[normalizeHeader(name)] = i
	}

	table := newTable(source)
	for _, col := range schema.Columns {
		if _, ok := index[col.Name]; !ok {
			return nil, MissingColumnErr(col.Name)
		}
	}
	for _, name := range header {
		norm := normalizeHeader(name)
		if _, known := columnKind(schema, norm); !known {
			table.ExtraColumns = append(table.ExtraColumns, norm)
		}
	}

	for rowNum, record := range records[1:] {
		if isBlankRow(record) {
			continue
		}

		obs := models.Observation{}
		row := len(table.Rows) // index of the row we are about to append

		for _, col := range schema.Columns {
			idx := index[col.Name]
			var cell string
			if idx < len(record) {
				cell = strings.TrimSpace(record[idx])
			}

			if err := parseCell(table, &obs, row, col, cell); err != nil {
				// report against the 1-based data row in the file
				if serr, ok := err.(*SchemaError); ok {
					serr.Row = rowNum + 1
				}
				return nil, err
			}
		}

		table.Rows = append(table.Rows, obs)
	}

	return table, nil
}

func parseCell(t *Table, obs *models.Observation, row int, col Column, cell string) error {
	switch col.Kind {
	case KindTimestamp:
		if cell == "" {
			return &SchemaError{Column: col.Name, Reason: "blank timestamp"}
		}
		ts, err := dateparse.ParseAny(cell)
		if err != nil {
			return MalformedValueErr(col.Name, 0, cell)
		}
		obs.Datetime = ts

	case KindCategory, KindFlag:
		// blank codes fall back to 0
		if cell == "" {
			setIntColumn(obs, col.Name, 0)
			return nil
		}
		v, err := strconv.Atoi(cell)
		if err != nil {
			return MalformedValueErr(col.Name, 0, cell)
		}
		setIntColumn(obs, col.Name, v)

	case KindNumeric:
		if cell == "" {
			t.markMissing(row, col.Name)
			return nil
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return MalformedValueErr(col.Name, 0, cell)
		}
		setFloatColumn(obs, col.Name, v)

	case KindCount:
		if cell == "" {
			t.markMissing(row, col.Name)
			return nil
		}
		v, err := strconv.Atoi(cell)
		if err != nil {
			return MalformedValueErr(col.Name, 0, cell)
		}
		if v < 0 {
			return &SchemaError{Column: col.Name, Reason: fmt.Sprintf("negative count %d", v)}
		}
		setIntColumn(obs, col.Name, v)
	}
	return nil
}

func setIntColumn(obs *models.Observation, name string, v int) {
	switch name {
	case "season":
		obs.Season = v
	case "holiday":
		obs.Holiday = v
	case "workingday":
		obs.WorkingDay = v
	case "weather":
		obs.Weather = v
	case "casual":
		obs.Casual = v
	case "registered":
		obs.Registered = v
	case "count":
		obs.Count = v
	}
}

func setFloatColumn(obs *models.Observation, name string, v float64) {
	switch name {
	case "temp":
		obs.Temp = v
	case "atemp":
		obs.ATemp = v
	case "humidity":
		obs.Humidity = v
	case "windspeed":
		obs.Windspeed = v
	}
}

func columnKind(s Schema, name string) (ColumnKind, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c.Kind, true
		}
	}
	return 0, false
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isBlankRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
