package stats

import (
	"fmt"
	"strings"
	"testing"

	"bikeshare_analysis/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "datetime,season,holiday,workingday,weather,temp,atemp,humidity,windspeed,casual,registered,count"

// buildTable assembles a table from (season, count) pairs; the remaining
// columns get filler values consistent with the count invariant
func buildTable(t *testing.T, rows ...[2]int) *dataset.Table {
	t.Helper()

	lines := []string{csvHeader}
	for i, r := range rows {
		season, count := r[0], r[1]
		lines = append(lines, fmt.Sprintf(
			"2011-01-01 %02d:00:00,%d,0,1,1,10,12,50,5,0,%d,%d", i%24, season, count, count))
	}

	table, err := dataset.LoadReader(strings.NewReader(strings.Join(lines, "\n")), "test")
	require.NoError(t, err)
	require.NoError(t, table.Validate())
	return table
}

func TestSummarizeWorkedExample(t *testing.T) {
	table := buildTable(t, [2]int{1, 10}, [2]int{1, 20}, [2]int{2, 5})

	summaries, err := Summarize(table, "season", "count")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "1", summaries[0].Key)
	assert.Equal(t, 2, summaries[0].Count)
	assert.InDelta(t, 15.0, summaries[0].Mean, 1e-9)
	assert.InDelta(t, 15.0, summaries[0].Median, 1e-9)

	assert.Equal(t, "2", summaries[1].Key)
	assert.Equal(t, 1, summaries[1].Count)
	assert.InDelta(t, 5.0, summaries[1].Mean, 1e-9)
	assert.InDelta(t, 5.0, summaries[1].Median, 1e-9)
}

func TestSummarizeSortsNumericKeys(t *testing.T) {
	// seasons deliberately out of order, including a two-digit code that
	// would sort before "2" lexicographically
	table := buildTable(t,
		[2]int{12, 1}, [2]int{2, 1}, [2]int{4, 1}, [2]int{1, 1}, [2]int{10, 1})

	summaries, err := Summarize(table, "season", "")
	require.NoError(t, err)

	keys := make([]string, len(summaries))
	for i, s := range summaries {
		keys[i] = s.Key
	}
	assert.Equal(t, []string{"1", "2", "4", "10", "12"}, keys)
}

func TestSummarizeCountsCoverTable(t *testing.T) {
	table := buildTable(t,
		[2]int{1, 10}, [2]int{2, 20}, [2]int{1, 30}, [2]int{3, 40}, [2]int{2, 50})

	summaries, err := Summarize(table, "season", "count")
	require.NoError(t, err)

	total := 0
	for _, s := range summaries {
		assert.Positive(t, s.Count, "group %s must not be empty", s.Key)
		total += s.Count
	}
	assert.Equal(t, table.Len(), total)
}

func TestSummarizeIdempotent(t *testing.T) {
	table := buildTable(t,
		[2]int{1, 10}, [2]int{2, 20}, [2]int{1, 30}, [2]int{4, 40})

	first, err := Summarize(table, "season", "count")
	require.NoError(t, err)
	second, err := Summarize(table, "season", "count")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSummarizeStatistics(t *testing.T) {
	table := buildTable(t,
		[2]int{1, 2}, [2]int{1, 4}, [2]int{1, 4}, [2]int{1, 4}, [2]int{1, 5},
		[2]int{1, 5}, [2]int{1, 7}, [2]int{1, 9})

	summaries, err := Summarize(table, "season", "count")
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 8, s.Count)
	assert.InDelta(t, 5.0, s.Mean, 1e-9)
	assert.InDelta(t, 4.5, s.Median, 1e-9)
	assert.InDelta(t, 40.0, s.Sum, 1e-9)
	assert.InDelta(t, 2.0, s.Min, 1e-9)
	assert.InDelta(t, 9.0, s.Max, 1e-9)
	// sample standard deviation of the classic 2,4,4,4,5,5,7,9 series
	assert.InDelta(t, 2.138089935, s.StdDev, 1e-6)
}

func TestSummarizeSingleRecordGroup(t *testing.T) {
	table := buildTable(t, [2]int{1, 10})

	summaries, err := Summarize(table, "season", "count")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Zero(t, summaries[0].StdDev)
}

func TestSummarizeUnknownColumns(t *testing.T) {
	table := buildTable(t, [2]int{1, 10})

	tests := []struct {
		name     string
		groupCol string
		aggCol   string
		wantCol  string
	}{
		{name: "unknown group column", groupCol: "bogus", aggCol: "count", wantCol: "bogus"},
		{name: "unknown agg column", groupCol: "season", aggCol: "nope", wantCol: "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Summarize(table, tt.groupCol, tt.aggCol)
			var serr *dataset.SchemaError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.wantCol, serr.Column)
		})
	}
}

func TestSummarizeDefaultAggColumn(t *testing.T) {
	table := buildTable(t, [2]int{1, 10}, [2]int{1, 20})

	explicit, err := Summarize(table, "season", "count")
	require.NoError(t, err)
	defaulted, err := Summarize(table, "season", "")
	require.NoError(t, err)

	assert.Equal(t, explicit, defaulted)
}

func TestSummarizeLabelGroupsSortLexicographically(t *testing.T) {
	lines := []string{csvHeader,
		"2011-01-15 00:00:00,1,0,1,1,10,12,50,5,0,10,10",
		"2011-07-15 00:00:00,3,0,1,1,30,32,50,5,0,20,20",
		"2011-10-15 00:00:00,4,0,1,1,15,17,50,5,0,30,30",
	}
	table, err := dataset.LoadReader(strings.NewReader(strings.Join(lines, "\n")), "test")
	require.NoError(t, err)
	_, err = dataset.Clean(table)
	require.NoError(t, err)
	require.NoError(t, dataset.BuildFeatures(table))

	summaries, err := Summarize(table, "season_label", "")
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "fall", summaries[0].Key)
	assert.Equal(t, "spring", summaries[1].Key)
	assert.Equal(t, "winter", summaries[2].Key)
}

func TestUserTypeShare(t *testing.T) {
	lines := []string{csvHeader,
		"2011-01-01 00:00:00,1,0,1,1,10,12,50,5,30,70,100",
		"2011-01-01 01:00:00,1,0,1,1,10,12,50,5,20,80,100",
	}
	table, err := dataset.LoadReader(strings.NewReader(strings.Join(lines, "\n")), "test")
	require.NoError(t, err)

	split := UserTypeShare(table)
	assert.Equal(t, 50, split.Casual)
	assert.Equal(t, 150, split.Registered)
	assert.Equal(t, 200, split.Total)
	assert.InDelta(t, 25.0, split.CasualPct, 1e-9)
	assert.InDelta(t, 75.0, split.RegisteredPct, 1e-9)
}
