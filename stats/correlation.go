package stats

import (
	"math"

	"bikeshare_analysis/dataset"
)

// CorrelationMatrix is a symmetric Pearson correlation matrix over the
// numeric columns of a table, in the fixed dataset column order.
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
}

// Correlations computes pairwise Pearson correlations between all numeric
// columns. A column with zero variance correlates 0 with everything except
// itself, which stays 1 so the diagonal is always clean.
func Correlations(t *dataset.Table) (*CorrelationMatrix, error) {
	columns := dataset.NumericColumns

	series := make([][]float64, len(columns))
	for i, name := range columns {
		values, err := t.NumericColumn(name)
		if err != nil {
			return nil, err
		}
		series[i] = values
	}

	m := &CorrelationMatrix{
		Columns: columns,
		Values:  make([][]float64, len(columns)),
	}
	for i := range columns {
		m.Values[i] = make([]float64, len(columns))
		for j := range columns {
			if i == j {
				m.Values[i][j] = 1
				continue
			}
			if j < i {
				m.Values[i][j] = m.Values[j][i]
				continue
			}
			m.Values[i][j] = pearson(series[i], series[j])
		}
	}
	return m, nil
}

// Get returns the correlation between two named columns
func (m *CorrelationMatrix) Get(a, b string) (float64, bool) {
	ai, bi := -1, -1
	for i, c := range m.Columns {
		if c == a {
			ai = i
		}
		if c == b {
			bi = i
		}
	}
	if ai < 0 || bi < 0 {
		return 0, false
	}
	return m.Values[ai][bi], true
}

func pearson(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	denom := math.Sqrt(varX * varY)
	if denom == 0 {
		return 0
	}
	return cov / denom
}
