package database

import (
	"fmt"
	"time"

	"bikeshare_analysis/dataset"
	"bikeshare_analysis/logger"
	"bikeshare_analysis/models"

	"gorm.io/gorm"
)

const importBatchSize = 1000

// Importer writes cleaned observation tables into the database
type Importer struct {
	db *gorm.DB
}

// ImportResult contains the outcome of importing a table
type ImportResult struct {
	Source      string
	RecordCount int
	ErrorCount  int
	Duration    time.Duration
}

// NewImporter creates a new observation importer
func NewImporter(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

// Import batch-inserts every row of the table. The table must already be
// cleaned; rows go in exactly as they sit in memory.
func (im *Importer) Import(table *dataset.Table) (*ImportResult, error) {
	start := time.Now()
	result := &ImportResult{
		Source:      table.Source,
		RecordCount: table.Len(),
	}

	if table.MissingCells() != 0 {
		return nil, fmt.Errorf("refusing to import table with %d unimputed cells", table.MissingCells())
	}

	for i := 0; i < len(table.Rows); i += importBatchSize {
		end := i + importBatchSize
		if end > len(table.Rows) {
			end = len(table.Rows)
		}

		batch := table.Rows[i:end]
		if err := im.db.CreateInBatches(batch, importBatchSize).Error; err != nil {
			// retry one by one so a single bad record doesn't sink the batch
			errs := im.individualInsert(batch)
			result.ErrorCount += errs
			if errs == len(batch) {
				result.Duration = time.Since(start)
				return result, fmt.Errorf("failed to insert any records in batch starting at row %d: %w", i+1, err)
			}
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

// individualInsert attempts to insert records one at a time when a batch
// insert fails, returning the number that still could not be stored
func (im *Importer) individualInsert(batch []models.Observation) int {
	failed := 0
	for i := range batch {
		record := batch[i]
		if err := im.db.Create(&record).Error; err != nil {
			failed++
			logger.Warnf("Failed to insert observation at %s: %v\n",
				record.Datetime.Format(time.RFC3339), err)
		}
	}
	return failed
}
