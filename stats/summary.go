package stats

import (
	"math"
	"sort"
	"strconv"

	"bikeshare_analysis/dataset"
)

// DefaultAggColumn is the column summarized when the caller names none:
// the total rental count.
const DefaultAggColumn = "count"

// GroupSummary holds the descriptive statistics of one group
type GroupSummary struct {
	Key    string
	Count  int
	Mean   float64
	Median float64
	Sum    float64
	Min    float64
	Max    float64
	StdDev float64
}

// Summarize groups the table by groupCol and computes descriptive statistics
// of aggCol per group. Groups come back sorted by key (numerically when every
// key is a number) so repeated runs over the same table yield identical
// output. Groups with zero records never appear.
func Summarize(t *dataset.Table, groupCol, aggCol string) ([]GroupSummary, error) {
	if aggCol == "" {
		aggCol = DefaultAggColumn
	}

	keys, err := t.CategoryColumn(groupCol)
	if err != nil {
		return nil, err
	}
	values, err := t.NumericColumn(aggCol)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]float64)
	for i, key := range keys {
		grouped[key] = append(grouped[key], values[i])
	}

	summaries := make([]GroupSummary, 0, len(grouped))
	for key, vals := range grouped {
		summaries = append(summaries, summarizeGroup(key, vals))
	}

	sortByKey(summaries)
	return summaries, nil
}

func summarizeGroup(key string, vals []float64) GroupSummary {
	s := GroupSummary{
		Key:    key,
		Count:  len(vals),
		Median: dataset.Median(vals),
		Min:    math.Inf(1),
		Max:    math.Inf(-1),
	}
	for _, v := range vals {
		s.Sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = s.Sum / float64(s.Count)

	// sample standard deviation, zero for a single record
	if s.Count > 1 {
		var ss float64
		for _, v := range vals {
			d := v - s.Mean
			ss += d * d
		}
		s.StdDev = math.Sqrt(ss / float64(s.Count-1))
	}
	return s
}

// sortByKey orders groups numerically when every key parses as a number,
// falling back to lexicographic order for label columns
func sortByKey(summaries []GroupSummary) {
	numeric := true
	for _, s := range summaries {
		if _, err := strconv.ParseFloat(s.Key, 64); err != nil {
			numeric = false
			break
		}
	}

	if numeric {
		sort.Slice(summaries, func(i, j int) bool {
			a, _ := strconv.ParseFloat(summaries[i].Key, 64)
			b, _ := strconv.ParseFloat(summaries[j].Key, 64)
			return a < b
		})
		return
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Key < summaries[j].Key })
}
