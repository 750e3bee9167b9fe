package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bikeshare_analysis/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `datetime,season,holiday,workingday,weather,temp,atemp,humidity,windspeed,casual,registered,count
2011-01-01 00:00:00,1,0,0,1,9.84,14.395,81,10,3,13,16
2011-07-04 12:00:00,3,1,0,2,31.16,33.335,43,16.9979,120,180,300
`

func processedTable(t *testing.T) *dataset.Table {
	t.Helper()
	table, err := dataset.LoadReader(strings.NewReader(sampleCSV), "test")
	require.NoError(t, err)
	_, err = dataset.Clean(table)
	require.NoError(t, err)
	require.NoError(t, table.Validate())
	require.NoError(t, dataset.BuildFeatures(table))
	return table
}

func TestWriteProcessed(t *testing.T) {
	table := processedTable(t)
	path := filepath.Join(t.TempDir(), "out", "processed.csv")

	writer := &CSVWriter{}
	require.NoError(t, writer.WriteProcessed(path, table))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, processedColumns, records[0])

	byName := make(map[string]string)
	for i, name := range records[0] {
		byName[name] = records[1][i]
	}
	assert.Equal(t, "1", byName["season"])
	assert.Equal(t, "spring", byName["season_label"])
	assert.Equal(t, "16", byName["count"])
	assert.Equal(t, "0", byName["hour"])
	assert.Equal(t, "2011-01-01", byName["date"])
}

func TestWriteProcessedBOM(t *testing.T) {
	table := processedTable(t)
	path := filepath.Join(t.TempDir(), "processed.csv")

	writer := &CSVWriter{BOMPrefix: true}
	require.NoError(t, writer.WriteProcessed(path, table))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(content), 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, content[:3])
}
