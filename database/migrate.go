package database

import (
	"fmt"

	"bikeshare_analysis/models"

	"gorm.io/gorm"
)

// TableStatus reports whether a model's backing table exists
type TableStatus struct {
	Table  string
	Exists bool
}

// Migrate brings the schema up to date for all registered models
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.GetAllModels()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}

// MigrationStatus returns the table status of every registered model
func MigrationStatus(db *gorm.DB) []TableStatus {
	migrator := db.Migrator()

	all := models.GetAllModels()
	statuses := make([]TableStatus, 0, len(all))
	for _, model := range all {
		statuses = append(statuses, TableStatus{
			Table:  tableNameOf(db, model),
			Exists: migrator.HasTable(model),
		})
	}
	return statuses
}

func tableNameOf(db *gorm.DB, model interface{}) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return fmt.Sprintf("%T", model)
	}
	return stmt.Schema.Table
}
