package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "dataset:\n  impute_missing: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/bike_sharing.csv", cfg.Dataset.Path)
	assert.True(t, cfg.Dataset.ImputeMissing)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.Equal(t, "processed_bike_sharing.csv", cfg.Output.ProcessedCSV)
	assert.Equal(t, "bike_sharing_report.xlsx", cfg.Output.ReportFile)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "bikeshare.db", cfg.Database.SQLite.Path)
	assert.Equal(t, "result.log", cfg.Logging.LogFile)
	assert.Equal(t, "info", cfg.Logging.LogLevel)
}

func TestLoadURLSkipsPathDefault(t *testing.T) {
	path := writeConfig(t, "dataset:\n  url: https://example.com/bike.csv\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Empty(t, cfg.Dataset.Path)
	assert.Equal(t, "https://example.com/bike.csv", cfg.Dataset.URL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "dataset: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BIKESHARE_MYSQL_USER", "env_user")
	t.Setenv("BIKESHARE_MYSQL_PASSWORD", "env_pass")

	path := writeConfig(t, `database:
  driver: mysql
  mysql:
    host: localhost
    port: 3306
    user: yaml_user
    password: yaml_pass
    dbname: bikeshare
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env_user", cfg.Database.MySQL.User)
	assert.Equal(t, "env_pass", cfg.Database.MySQL.Password)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid sqlite",
			modify: func(c *Config) {},
		},
		{
			name: "mysql without host",
			modify: func(c *Config) {
				c.Database.Driver = "mysql"
				c.Database.MySQL.User = "root"
				c.Database.MySQL.DBName = "bikeshare"
			},
			wantErr: "mysql host is required",
		},
		{
			name: "postgres without user",
			modify: func(c *Config) {
				c.Database.Driver = "postgres"
				c.Database.PostgreSQL.Host = "localhost"
				c.Database.PostgreSQL.DBName = "bikeshare"
			},
			wantErr: "postgres user is required",
		},
		{
			name: "unknown driver",
			modify: func(c *Config) {
				c.Database.Driver = "oracle"
			},
			wantErr: "unsupported database driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Driver = "mysql"
	cfg.Database.MySQL = MySQLConfig{
		Host: "localhost", Port: 3306, User: "root", Password: "secret",
		DBName: "bikeshare", Charset: "utf8mb4", ParseTime: true, Loc: "Local",
	}
	assert.Equal(t,
		"root:secret@tcp(localhost:3306)/bikeshare?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.GetDSN())

	cfg.Database.Driver = "sqlite"
	cfg.Database.SQLite.Path = "bikeshare.db"
	assert.Equal(t, "bikeshare.db", cfg.GetDSN())

	cfg.Database.Driver = "oracle"
	assert.Empty(t, cfg.GetDSN())
}
