//go:build ignore

// Generates a synthetic bike sharing CSV with a plausible seasonal and
// diurnal shape, for trying out the analysis commands without the real
// dataset.
//
// Usage: go run generate_test_data.go <output_directory>
package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const numberOfDays = 365

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run generate_test_data.go <output_directory>")
		fmt.Println("Example: go run generate_test_data.go data")
		return
	}

	outputDir := os.Args[1]

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Failed to create directory: %v\n", err)
		return
	}

	path := filepath.Join(outputDir, "bike_sharing.csv")
	file, err := os.Create(path)
	if err != nil {
		fmt.Printf("Failed to create file: %v\n", err)
		return
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"datetime", "season", "holiday", "workingday", "weather",
		"temp", "atemp", "humidity", "windspeed", "casual", "registered", "count"}
	if err := writer.Write(header); err != nil {
		fmt.Printf("Failed to write header: %v\n", err)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	start := time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := 0
	for day := 0; day < numberOfDays; day++ {
		for hour := 0; hour < 24; hour++ {
			ts := start.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour)
			if err := writer.Write(observationRow(rng, ts)); err != nil {
				fmt.Printf("Failed to write row: %v\n", err)
				return
			}
			rows++
		}
	}

	fmt.Printf("Wrote %d observations to %s\n", rows, path)
}

func observationRow(rng *rand.Rand, ts time.Time) []string {
	season := (int(ts.Month())%12)/3 + 1

	// yearly temperature wave plus daily wobble
	yearFrac := float64(ts.YearDay()) / 365.0
	temp := 15 + 12*math.Sin(2*math.Pi*(yearFrac-0.25)) + rng.Float64()*6 - 3
	atemp := temp + rng.Float64()*4 - 2
	humidity := 40 + rng.Float64()*50
	windspeed := math.Max(0, rng.NormFloat64()*8+12)

	weather := 1
	switch r := rng.Float64(); {
	case r > 0.97:
		weather = 3
	case r > 0.75:
		weather = 2
	}

	weekday := ts.Weekday()
	workingday := 1
	if weekday == time.Saturday || weekday == time.Sunday {
		workingday = 0
	}

	// commuter peaks on working days, midday bump otherwise
	hour := ts.Hour()
	demand := 30 + 8*temp
	if workingday == 1 && (hour == 8 || hour == 17 || hour == 18) {
		demand *= 2.5
	} else if workingday == 0 && hour >= 11 && hour <= 16 {
		demand *= 1.8
	} else if hour < 6 {
		demand *= 0.15
	}
	if weather >= 3 {
		demand *= 0.4
	}

	total := int(math.Max(0, demand+rng.NormFloat64()*20))
	casual := int(float64(total) * (0.15 + rng.Float64()*0.2))
	registered := total - casual

	return []string{
		ts.Format("2006-01-02 15:04:05"),
		strconv.Itoa(season),
		"0",
		strconv.Itoa(workingday),
		strconv.Itoa(weather),
		fmt.Sprintf("%.2f", temp),
		fmt.Sprintf("%.2f", atemp),
		fmt.Sprintf("%.2f", humidity),
		fmt.Sprintf("%.2f", windspeed),
		strconv.Itoa(casual),
		strconv.Itoa(registered),
		strconv.Itoa(total),
	}
}
