package dataset

import (
	"fmt"
	"math"
	"sort"
)

// CleanReport summarizes what Clean changed
type CleanReport struct {
	CellsImputed      int
	CountsDerived     int
	DuplicatesDropped int
}

// imputableColumns are the numeric columns whose blank cells Clean fills
// with the column median
var imputableColumns = []string{
	"temp", "atemp", "humidity", "windspeed", "casual", "registered",
}

// Clean imputes blank numeric cells with column medians, derives the total
// count for rows where it was blank, and drops exact duplicate rows.
// Imputation runs first so every missing cell is resolved before rows move.
func Clean(t *Table) (*CleanReport, error) {
	report := &CleanReport{}

	for _, column := range imputableColumns {
		n, err := imputeColumn(t, column)
		if err != nil {
			return nil, err
		}
		report.CellsImputed += n
	}

	// counts blank in the input can now be derived from the imputed partitions
	for i := range t.Rows {
		if t.IsMissing(i, "count") {
			t.Rows[i].Count = t.Rows[i].Casual + t.Rows[i].Registered
			t.clearMissing(i, "count")
			report.CountsDerived++
		}
	}

	if t.MissingCells() != 0 {
		return nil, fmt.Errorf("%d cells still missing after imputation", t.MissingCells())
	}

	report.DuplicatesDropped = dropDuplicates(t)
	return report, nil
}

func imputeColumn(t *Table, column string) (int, error) {
	values, err := t.NumericColumn(column)
	if err != nil {
		return 0, err
	}

	present := make([]float64, 0, len(values))
	var missing []int
	for i, v := range values {
		if t.IsMissing(i, column) {
			missing = append(missing, i)
		} else {
			present = append(present, v)
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	med := Median(present) // 0 when the whole column is blank

	for _, i := range missing {
		switch column {
		case "temp":
			t.Rows[i].Temp = med
		case "atemp":
			t.Rows[i].ATemp = med
		case "humidity":
			t.Rows[i].Humidity = med
		case "windspeed":
			t.Rows[i].Windspeed = med
		case "casual":
			t.Rows[i].Casual = int(math.Round(med))
		case "registered":
			t.Rows[i].Registered = int(math.Round(med))
		}
		t.clearMissing(i, column)
	}
	return len(missing), nil
}

// Median returns the median of values, 0 for an empty slice.
// An even-sized input yields the mean of the two middle values.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func dropDuplicates(t *Table) int {
	seen := make(map[string]bool, len(t.Rows))
	kept := t.Rows[:0]
	dropped := 0

	for i := range t.Rows {
		o := &t.Rows[i]
		key := fmt.Sprintf("%d|%d|%d|%d|%d|%g|%g|%g|%g|%d|%d|%d",
			o.Datetime.Unix(), o.Season, o.Holiday, o.WorkingDay, o.Weather,
			o.Temp, o.ATemp, o.Humidity, o.Windspeed,
			o.Casual, o.Registered, o.Count)
		if seen[key] {
			dropped++
			continue
		}
		seen[key] = true
		kept = append(kept, t.Rows[i])
	}

	t.Rows = kept
	return dropped
}
