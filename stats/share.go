package stats

import "bikeshare_analysis/dataset"

// UserTypeSplit is the casual vs registered partition of total rentals
type UserTypeSplit struct {
	Casual        int
	Registered    int
	Total         int
	CasualPct     float64
	RegisteredPct float64
}

// UserTypeShare totals the two user-type partitions across the table
func UserTypeShare(t *dataset.Table) UserTypeSplit {
	var split UserTypeSplit
	for i := range t.Rows {
		split.Casual += t.Rows[i].Casual
		split.Registered += t.Rows[i].Registered
	}
	split.Total = split.Casual + split.Registered
	if split.Total > 0 {
		split.CasualPct = 100 * float64(split.Casual) / float64(split.Total)
		split.RegisteredPct = 100 * float64(split.Registered) / float64(split.Total)
	}
	return split
}
