package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"bikeshare_analysis/config"
	"bikeshare_analysis/database"
	"bikeshare_analysis/dataset"
	"bikeshare_analysis/logger"
	"bikeshare_analysis/report"
	"bikeshare_analysis/stats"
)

func main() {
	if len(os.Args) < 2 {
		showHelp()
		return
	}

	command := os.Args[1]

	// Initialize logging only for commands that need it
	if needsLogging(command) {
		cfg := loadConfig()
		if err := logger.Init(cfg); err != nil {
			log.Fatalf("Failed to initialize logging: %v", err)
		}
		defer func() {
			err := logger.Close()
			if err != nil {
				log.Fatalf("Failed to close logging: %v", err)
			}
		}()
		logger.LogCommand(os.Args[0], os.Args)
	}

	switch command {
	case "process":
		processCommand(argOrEmpty(2))
	case "summary":
		if len(os.Args) < 3 {
			fmt.Println("Error: grouping column required")
			fmt.Println("Usage: go run main.go summary <group_column> [agg_column]")
			return
		}
		summaryCommand(os.Args[2], argOrEmpty(3))
	case "report":
		reportCommand(argOrEmpty(2))
	case "import":
		importCommand(argOrEmpty(2))
	case "connect":
		connectCommand()
	case "migrate":
		migrateCommand()
	case "db:info":
		dbInfoCommand()
	case "help":
		showHelp()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		showHelp()
	}
}

// needsLogging determines which commands need logging
func needsLogging(command string) bool {
	loggingCommands := map[string]bool{
		"process": true,
		"summary": true,
		"report":  true,
		"import":  true,
		"connect": true,
		"migrate": true,
	}
	return loggingCommands[command]
}

func argOrEmpty(i int) string {
	if len(os.Args) > i {
		return os.Args[i]
	}
	return ""
}

func showHelp() {
	fmt.Println("Bike Sharing Analysis - Dataset Exploration Tool")
	fmt.Println("")
	fmt.Println("Usage: go run main.go <command> [arguments]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  process [csv_path]            Load, clean and feature-engineer the dataset,")
	fmt.Println("                                then write the processed CSV")
	fmt.Println("  summary <group> [column]      Print descriptive statistics of a column")
	fmt.Println("                                (default: count) grouped by season, weather,")
	fmt.Println("                                workingday, hour, ...")
	fmt.Println("  report [csv_path]             Write the Excel report workbook with charts")
	fmt.Println("  import [csv_path]             Import the cleaned observations into the database")
	fmt.Println("  connect                       Test database connection")
	fmt.Println("  migrate                       Bring the database schema up to date")
	fmt.Println("  db:info                       Show database information")
	fmt.Println("  help                          Show this help message")
	fmt.Println("")
	fmt.Println("Configuration:")
	fmt.Println("  Edit config.yaml to configure dataset, output and database settings")
	fmt.Println("")
	fmt.Println("CSV File Format:")
	fmt.Println("  Expected columns: datetime,season,holiday,workingday,weather,")
	fmt.Println("                    temp,atemp,humidity,windspeed,casual,registered,count")
}

func loadConfig() *config.Config {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

// loadDataset runs the shared pipeline: load, clean, validate, build features
func loadDataset(cfg *config.Config, pathOverride string) *dataset.Table {
	var (
		table *dataset.Table
		err   error
	)

	switch {
	case pathOverride != "":
		logger.Printf("Loading dataset from file: %s\n", pathOverride)
		table, err = dataset.Load(pathOverride)
	case cfg.Dataset.Path != "":
		logger.Printf("Loading dataset from file: %s\n", cfg.Dataset.Path)
		table, err = dataset.Load(cfg.Dataset.Path)
	default:
		logger.Printf("Loading dataset from URL: %s\n", cfg.Dataset.URL)
		table, err = dataset.LoadURL(cfg.Dataset.URL)
	}
	if err != nil {
		logger.Fatalf("Failed to load dataset: %v", err)
	}

	if len(table.ExtraColumns) > 0 {
		logger.Warnf("Ignoring unexpected columns: %s\n", strings.Join(table.ExtraColumns, ", "))
	}

	if !cfg.Dataset.ImputeMissing && table.MissingCells() > 0 {
		logger.Fatalf("Dataset has %d blank numeric cells and imputation is disabled", table.MissingCells())
	}

	cleanReport, err := dataset.Clean(table)
	if err != nil {
		logger.Fatalf("Failed to clean dataset: %v", err)
	}
	logger.Printf("Cleaned dataset: %d cells imputed, %d counts derived, %d duplicates dropped\n",
		cleanReport.CellsImputed, cleanReport.CountsDerived, cleanReport.DuplicatesDropped)

	if err := table.Validate(); err != nil {
		logger.Fatalf("Dataset failed validation: %v", err)
	}

	if err := dataset.BuildFeatures(table); err != nil {
		logger.Fatalf("Failed to build features: %v", err)
	}

	logger.Printf("✓ Loaded %d observations from %s\n", table.Len(), table.Source)
	return table
}

func processCommand(pathOverride string) {
	cfg := loadConfig()
	table := loadDataset(cfg, pathOverride)

	outPath := filepath.Join(cfg.Output.Dir, cfg.Output.ProcessedCSV)
	writer := &report.CSVWriter{BOMPrefix: cfg.Output.CSVBom}
	if err := writer.WriteProcessed(outPath, table); err != nil {
		logger.Fatalf("Failed to write processed CSV: %v", err)
	}

	logger.Printf("✓ Wrote processed CSV: %s\n", outPath)
}

func summaryCommand(groupCol, aggCol string) {
	cfg := loadConfig()
	table := loadDataset(cfg, "")

	summaries, err := stats.Summarize(table, groupCol, aggCol)
	if err != nil {
		logger.Fatalf("Failed to summarize: %v", err)
	}

	if aggCol == "" {
		aggCol = stats.DefaultAggColumn
	}
	logger.Printf("\nSummary of %q grouped by %q\n", aggCol, groupCol)
	logger.Println(strings.Repeat("-", 78))
	logger.Printf("%-12s %8s %10s %10s %12s %8s %8s %10s\n",
		"Group", "Count", "Mean", "Median", "Sum", "Min", "Max", "StdDev")
	for _, s := range summaries {
		logger.Printf("%-12s %8d %10.2f %10.2f %12.0f %8.0f %8.0f %10.2f\n",
			s.Key, s.Count, s.Mean, s.Median, s.Sum, s.Min, s.Max, s.StdDev)
	}
	logger.Println(strings.Repeat("-", 78))

	split := stats.UserTypeShare(table)
	logger.Printf("User split: %.1f%% registered, %.1f%% casual\n",
		split.RegisteredPct, split.CasualPct)
}

func reportCommand(pathOverride string) {
	cfg := loadConfig()
	table := loadDataset(cfg, pathOverride)

	outPath := filepath.Join(cfg.Output.Dir, cfg.Output.ReportFile)
	if err := report.BuildWorkbook(outPath, table); err != nil {
		logger.Fatalf("Failed to build report workbook: %v", err)
	}

	logger.Printf("✓ Wrote report workbook: %s\n", outPath)
}

func importCommand(pathOverride string) {
	cfg := loadConfig()
	table := loadDataset(cfg, pathOverride)

	if _, err := database.Connect(cfg); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.Migrate(db); err != nil {
		logger.Fatalf("Migration failed: %v", err)
	}

	importer := database.NewImporter(db)
	result, err := importer.Import(table)
	if err != nil {
		logger.Fatalf("Import failed: %v", err)
	}

	logger.Printf("✓ Imported %d observations (%d errors) in %v\n",
		result.RecordCount-result.ErrorCount, result.ErrorCount, result.Duration)
}

func connectCommand() {
	logger.Println("Testing database connection...")

	cfg := loadConfig()
	if _, err := database.Connect(cfg); err != nil {
		logger.Fatalf("Connection failed: %v", err)
	}
	defer database.Close()

	logger.Printf("✓ Successfully connected to %s database\n", cfg.Database.Driver)
}

func migrateCommand() {
	logger.Println("Running database migration...")

	cfg := loadConfig()
	if _, err := database.Connect(cfg); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(database.GetDB()); err != nil {
		logger.Fatalf("Migration failed: %v", err)
	}

	for _, status := range database.MigrationStatus(database.GetDB()) {
		state := "Missing"
		if status.Exists {
			state = "Ready"
		}
		logger.Printf("%-20s %s\n", status.Table, state)
	}
	logger.Println("✓ Migration completed")
}

func dbInfoCommand() {
	fmt.Println("Database Information:")
	fmt.Println(strings.Repeat("=", 50))

	cfg := loadConfig()
	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	info := database.GetInfo(cfg)

	fmt.Printf("Database Type:     %s\n", info.Driver)
	if info.Connected {
		fmt.Println("Connection Status: ✓ Connected")
		fmt.Println("\nData Information:")
		fmt.Printf("  Total Records:   %d\n", info.Observations)
		fmt.Printf("  Seasons Seen:    %d\n", info.Seasons)
		if info.Observations > 0 {
			fmt.Printf("  Date Range:      %s to %s\n",
				info.EarliestDate.Format("2006-01-02 15:04:05"),
				info.LatestDate.Format("2006-01-02 15:04:05"))
		}
	} else {
		fmt.Println("Connection Status: ✗ Disconnected")
	}

	fmt.Println(strings.Repeat("=", 50))
}
