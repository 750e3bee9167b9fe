package stats

import (
	"fmt"
	"strings"
	"testing"

	"bikeshare_analysis/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func correlationTable(t *testing.T) *dataset.Table {
	t.Helper()

	// temp rises linearly while humidity falls linearly, so the two are
	// perfectly anti-correlated and each tracks count exactly
	lines := []string{csvHeader}
	for i := 0; i < 10; i++ {
		temp := float64(i)
		humidity := float64(100 - i)
		count := 10 + i
		lines = append(lines, fmt.Sprintf(
			"2011-03-%02d 00:00:00,1,0,1,1,%g,%g,%g,5,0,%d,%d",
			i+1, temp, temp, humidity, count, count))
	}

	table, err := dataset.LoadReader(strings.NewReader(strings.Join(lines, "\n")), "test")
	require.NoError(t, err)
	return table
}

func TestCorrelations(t *testing.T) {
	matrix, err := Correlations(correlationTable(t))
	require.NoError(t, err)

	require.Equal(t, dataset.NumericColumns, matrix.Columns)
	require.Len(t, matrix.Values, len(matrix.Columns))

	t.Run("diagonal is one", func(t *testing.T) {
		for i := range matrix.Columns {
			assert.InDelta(t, 1.0, matrix.Values[i][i], 1e-9)
		}
	})

	t.Run("matrix is symmetric", func(t *testing.T) {
		for i := range matrix.Columns {
			for j := range matrix.Columns {
				assert.InDelta(t, matrix.Values[i][j], matrix.Values[j][i], 1e-9)
			}
		}
	})

	t.Run("perfect linear relationships", func(t *testing.T) {
		v, ok := matrix.Get("temp", "count")
		require.True(t, ok)
		assert.InDelta(t, 1.0, v, 1e-9)

		v, ok = matrix.Get("temp", "humidity")
		require.True(t, ok)
		assert.InDelta(t, -1.0, v, 1e-9)
	})

	t.Run("constant column correlates zero", func(t *testing.T) {
		// windspeed is constant in the fixture
		v, ok := matrix.Get("windspeed", "count")
		require.True(t, ok)
		assert.Zero(t, v)
	})
}

func TestCorrelationMatrixGetUnknown(t *testing.T) {
	matrix, err := Correlations(correlationTable(t))
	require.NoError(t, err)

	_, ok := matrix.Get("temp", "bogus")
	assert.False(t, ok)
}
