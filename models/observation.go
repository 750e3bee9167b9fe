package models

import (
	"time"
)

// Observation represents a single bike rental record
type Observation struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Datetime   time.Time `gorm:"uniqueIndex:idx_datetime;not null" json:"datetime"`
	Season     int       `gorm:"not null" json:"season"`
	Holiday    int       `gorm:"not null" json:"holiday"`
	WorkingDay int       `gorm:"not null" json:"workingday"`
	Weather    int       `gorm:"not null" json:"weather"`
	Temp       float64   `json:"temp"`
	ATemp      float64   `json:"atemp"`
	Humidity   float64   `json:"humidity"`
	Windspeed  float64   `json:"windspeed"`
	Casual     int       `gorm:"not null" json:"casual"`
	Registered int       `gorm:"not null" json:"registered"`
	Count      int       `gorm:"not null" json:"count"`

	// Derived feature columns, populated by dataset.BuildFeatures
	Hour             int    `json:"hour"`
	Weekday          int    `json:"weekday"`
	DayOfWeek        string `gorm:"size:16" json:"day_of_week"`
	Month            int    `json:"month"`
	Year             int    `json:"year"`
	Date             string `gorm:"size:16" json:"date"`
	SeasonLabel      string `gorm:"size:16" json:"season_label"`
	WeatherLabel     string `gorm:"size:32" json:"weather_label"`
	TempCategory     string `gorm:"size:16" json:"temp_category"`
	ATempCategory    string `gorm:"size:16" json:"atemp_category"`
	HumidityCategory string `gorm:"size:16" json:"humidity_category"`
	WindCategory     string `gorm:"size:16" json:"wind_category"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName customizes the table name
func (Observation) TableName() string {
	return "observations"
}

// SeasonLabelFor maps a season code to its label (1=spring .. 4=winter)
func SeasonLabelFor(season int) string {
	switch season {
	case 1:
		return "spring"
	case 2:
		return "summer"
	case 3:
		return "fall"
	case 4:
		return "winter"
	default:
		return "unknown"
	}
}

// WeatherLabelFor maps a weather code to its label (1=clear .. 4=heavy precipitation)
func WeatherLabelFor(weather int) string {
	switch weather {
	case 1:
		return "clear"
	case 2:
		return "mist/cloudy"
	case 3:
		return "light_precip"
	case 4:
		return "heavy_precip"
	default:
		return "unknown"
	}
}

// GetAllModels returns all models for migration
func GetAllModels() []interface{} {
	return []interface{}{
		&Observation{},
	}
}
