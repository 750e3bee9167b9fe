package dataset

import (
	"sort"
	"time"

	"bikeshare_analysis/models"
)

// BuildFeatures populates the derived columns of every row: calendar fields
// from the timestamp, season/weather labels, quartile bins for temperature,
// fixed humidity bins and windspeed terciles. Must run after Clean.
func BuildFeatures(t *Table) error {
	if t.MissingCells() != 0 {
		return &SchemaError{Column: "", Reason: "table has unimputed cells; run Clean first"}
	}

	for i := range t.Rows {
		o := &t.Rows[i]
		o.Hour = o.Datetime.Hour()
		o.Weekday = mondayFirstWeekday(o.Datetime.Weekday())
		o.DayOfWeek = o.Datetime.Weekday().String()
		o.Month = int(o.Datetime.Month())
		o.Year = o.Datetime.Year()
		o.Date = o.Datetime.Format("2006-01-02")
		o.SeasonLabel = models.SeasonLabelFor(o.Season)
		o.WeatherLabel = models.WeatherLabelFor(o.Weather)
	}

	if err := binQuartiles(t, "temp"); err != nil {
		return err
	}
	if err := binQuartiles(t, "atemp"); err != nil {
		return err
	}
	binHumidity(t)
	binWindspeed(t)
	return nil
}

// mondayFirstWeekday shifts Go's Sunday-first weekday to Monday=0
func mondayFirstWeekday(d time.Weekday) int {
	return (int(d) + 6) % 7
}

var quartileLabels = [4]string{"cold", "mild", "warm", "hot"}

// binQuartiles labels each row by which quartile of the column it falls in
func binQuartiles(t *Table, column string) error {
	values, err := t.NumericColumn(column)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	q1 := Quantile(values, 0.25)
	q2 := Quantile(values, 0.50)
	q3 := Quantile(values, 0.75)

	for i, v := range values {
		var label string
		switch {
		case v <= q1:
			label = quartileLabels[0]
		case v <= q2:
			label = quartileLabels[1]
		case v <= q3:
			label = quartileLabels[2]
		default:
			label = quartileLabels[3]
		}
		if column == "temp" {
			t.Rows[i].TempCategory = label
		} else {
			t.Rows[i].ATempCategory = label
		}
	}
	return nil
}

// binHumidity uses fixed cut points: <=30 low, <=60 medium, else high
func binHumidity(t *Table) {
	for i := range t.Rows {
		switch h := t.Rows[i].Humidity; {
		case h <= 30:
			t.Rows[i].HumidityCategory = "low"
		case h <= 60:
			t.Rows[i].HumidityCategory = "medium"
		default:
			t.Rows[i].HumidityCategory = "high"
		}
	}
}

// binWindspeed replaces calm readings of exactly zero with the column median
// before labelling terciles, so a spike of zeros cannot collapse the bins
func binWindspeed(t *Table) {
	values := make([]float64, len(t.Rows))
	for i := range t.Rows {
		values[i] = t.Rows[i].Windspeed
	}
	if len(values) == 0 {
		return
	}

	med := Median(values)
	for i := range values {
		if values[i] == 0 {
			values[i] = med
			t.Rows[i].Windspeed = med
		}
	}

	t1 := Quantile(values, 1.0/3.0)
	t2 := Quantile(values, 2.0/3.0)
	for i, v := range values {
		switch {
		case v <= t1:
			t.Rows[i].WindCategory = "low"
		case v <= t2:
			t.Rows[i].WindCategory = "medium"
		default:
			t.Rows[i].WindCategory = "high"
		}
	}
}

// Quantile computes the q-th quantile with linear interpolation between
// order statistics
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}

	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
