package dataset

import (
	"fmt"
	"strconv"

	"bikeshare_analysis/models"
)

// Table is the in-memory observation table produced by the loader.
// Rows keep input order. The missing mask remembers blank numeric cells
// until Clean imputes them; the table is treated as read-only afterwards.
type Table struct {
	Source       string
	Rows         []models.Observation
	ExtraColumns []string

	missing map[cellRef]bool
}

type cellRef struct {
	row    int
	column string
}

// NumericColumns lists the columns included in correlation analysis
var NumericColumns = []string{
	"season", "holiday", "workingday", "weather",
	"temp", "atemp", "humidity", "windspeed",
	"casual", "registered", "count",
}

func newTable(source string) *Table {
	return &Table{
		Source:  source,
		missing: make(map[cellRef]bool),
	}
}

// Len returns the number of observation rows
func (t *Table) Len() int {
	return len(t.Rows)
}

func (t *Table) markMissing(row int, column string) {
	t.missing[cellRef{row: row, column: column}] = true
}

func (t *Table) clearMissing(row int, column string) {
	delete(t.missing, cellRef{row: row, column: column})
}

// IsMissing reports whether a cell was blank in the input and not yet imputed
func (t *Table) IsMissing(row int, column string) bool {
	return t.missing[cellRef{row: row, column: column}]
}

// MissingCells returns the number of cells still waiting for imputation
func (t *Table) MissingCells() int {
	return len(t.missing)
}

// Validate checks the per-record invariant casual + registered == count.
// Rows whose count was blank in the input get it derived from the two
// user-type partitions; a present but inconsistent count is an error.
func (t *Table) Validate() error {
	for i := range t.Rows {
		o := &t.Rows[i]

		if t.IsMissing(i, "casual") || t.IsMissing(i, "registered") {
			continue // cannot check until Clean imputes the partitions
		}

		if t.IsMissing(i, "count") {
			o.Count = o.Casual + o.Registered
			t.clearMissing(i, "count")
			continue
		}

		if o.Casual+o.Registered != o.Count {
			return fmt.Errorf("row %d: casual (%d) + registered (%d) does not equal count (%d)",
				i+1, o.Casual, o.Registered, o.Count)
		}
	}
	return nil
}

// CategoryColumn returns the grouping key of the named column for every row.
// Integer-coded columns yield their code as a string so group keys stay
// comparable and sortable.
func (t *Table) CategoryColumn(name string) ([]string, error) {
	get, err := categoryAccessor(name)
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(t.Rows))
	for i := range t.Rows {
		keys[i] = get(&t.Rows[i])
	}
	return keys, nil
}

func categoryAccessor(name string) (func(*models.Observation) string, error) {
	switch name {
	case "season":
		return func(o *models.Observation) string { return strconv.Itoa(o.Season) }, nil
	case "weather":
		return func(o *models.Observation) string { return strconv.Itoa(o.Weather) }, nil
	case "holiday":
		return func(o *models.Observation) string { return strconv.Itoa(o.Holiday) }, nil
	case "workingday":
		return func(o *models.Observation) string { return strconv.Itoa(o.WorkingDay) }, nil
	case "hour":
		return func(o *models.Observation) string { return strconv.Itoa(o.Hour) }, nil
	case "weekday":
		return func(o *models.Observation) string { return strconv.Itoa(o.Weekday) }, nil
	case "day_of_week":
		return func(o *models.Observation) string { return o.DayOfWeek }, nil
	case "month":
		return func(o *models.Observation) string { return strconv.Itoa(o.Month) }, nil
	case "year":
		return func(o *models.Observation) string { return strconv.Itoa(o.Year) }, nil
	case "date":
		return func(o *models.Observation) string { return o.Date }, nil
	case "season_label":
		return func(o *models.Observation) string { return o.SeasonLabel }, nil
	case "weather_label":
		return func(o *models.Observation) string { return o.WeatherLabel }, nil
	case "temp_category":
		return func(o *models.Observation) string { return o.TempCategory }, nil
	case "atemp_category":
		return func(o *models.Observation) string { return o.ATempCategory }, nil
	case "humidity_category":
		return func(o *models.Observation) string { return o.HumidityCategory }, nil
	case "wind_category":
		return func(o *models.Observation) string { return o.WindCategory }, nil
	default:
		return nil, UnknownColumnErr(name)
	}
}

// NumericColumn returns the named column as float64 values for every row
func (t *Table) NumericColumn(name string) ([]float64, error) {
	get, err := numericAccessor(name)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(t.Rows))
	for i := range t.Rows {
		values[i] = get(&t.Rows[i])
	}
	return values, nil
}

func numericAccessor(name string) (func(*models.Observation) float64, error) {
	switch name {
	case "season":
		return func(o *models.Observation) float64 { return float64(o.Season) }, nil
	case "holiday":
		return func(o *models.Observation) float64 { return float64(o.Holiday) }, nil
	case "workingday":
		return func(o *models.Observation) float64 { return float64(o.WorkingDay) }, nil
	case "weather":
		return func(o *models.Observation) float64 { return float64(o.Weather) }, nil
	case "temp":
		return func(o *models.Observation) float64 { return o.Temp }, nil
	case "atemp":
		return func(o *models.Observation) float64 { return o.ATemp }, nil
	case "humidity":
		return func(o *models.Observation) float64 { return o.Humidity }, nil
	case "windspeed":
		return func(o *models.Observation) float64 { return o.Windspeed }, nil
	case "casual":
		return func(o *models.Observation) float64 { return float64(o.Casual) }, nil
	case "registered":
		return func(o *models.Observation) float64 { return float64(o.Registered) }, nil
	case "count":
		return func(o *models.Observation) float64 { return float64(o.Count) }, nil
	case "hour":
		return func(o *models.Observation) float64 { return float64(o.Hour) }, nil
	default:
		return nil, UnknownColumnErr(name)
	}
}
