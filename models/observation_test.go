package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeasonLabelFor(t *testing.T) {
	tests := []struct {
		season int
		want   string
	}{
		{season: 1, want: "spring"},
		{season: 2, want: "summer"},
		{season: 3, want: "fall"},
		{season: 4, want: "winter"},
		{season: 0, want: "unknown"},
		{season: 5, want: "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SeasonLabelFor(tt.season), "season %d", tt.season)
	}
}

func TestWeatherLabelFor(t *testing.T) {
	tests := []struct {
		weather int
		want    string
	}{
		{weather: 1, want: "clear"},
		{weather: 2, want: "mist/cloudy"},
		{weather: 3, want: "light_precip"},
		{weather: 4, want: "heavy_precip"},
		{weather: 9, want: "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WeatherLabelFor(tt.weather), "weather %d", tt.weather)
	}
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "observations", Observation{}.TableName())
}

func TestGetAllModels(t *testing.T) {
	all := GetAllModels()
	assert.Len(t, all, 1)
	assert.IsType(t, &Observation{}, all[0])
}
