package database

import (
	"fmt"
	"time"

	"bikeshare_analysis/config"
	"bikeshare_analysis/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance
var DB *gorm.DB

// Connect establishes a database connection based on the provided configuration
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.GetDSN())
	case "postgres":
		dialector = postgres.Open(cfg.GetDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	pool := cfg.Database.ConnectionPool
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	DB = db
	return db, nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		return sqlDB.Close()
	}
	return nil
}

// GetDB returns the global database instance
func GetDB() *gorm.DB {
	return DB
}

// IsConnected checks if database is connected
func IsConnected() bool {
	if DB == nil {
		return false
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return false
	}

	return sqlDB.Ping() == nil
}

// Info describes the connected database and the observations it holds
type Info struct {
	Driver       string
	Connected    bool
	Observations int64
	Seasons      int64
	EarliestDate time.Time
	LatestDate   time.Time
}

// GetInfo returns information about the connected database and its contents
func GetInfo(cfg *config.Config) Info {
	info := Info{
		Driver:    cfg.Database.Driver,
		Connected: IsConnected(),
	}
	if !info.Connected {
		return info
	}

	db := GetDB()
	db.Model(&models.Observation{}).Count(&info.Observations)
	db.Model(&models.Observation{}).Distinct("season").Count(&info.Seasons)

	if info.Observations > 0 {
		db.Model(&models.Observation{}).Select("MIN(datetime)").Scan(&info.EarliestDate)
		db.Model(&models.Observation{}).Select("MAX(datetime)").Scan(&info.LatestDate)
	}
	return info
}
