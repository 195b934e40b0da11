package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/waldolaw-go/internal/infrastructure/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Act
	cfg, err := config.LoadConfig(writeFile(t, "{}\n"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "MATE", cfg.Planner.ShipName)
	assert.Equal(t, 500, cfg.Planner.MinDockMs)
	assert.Equal(t, 3600*time.Millisecond, cfg.Planner.Search.Soft)
	assert.Equal(t, 3700*time.Millisecond, cfg.Planner.Search.Hard)
	assert.Equal(t, 3800*time.Millisecond, cfg.Planner.Evaluate)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "waldolaw.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadConfig_File(t *testing.T) {
	// Arrange
	path := writeFile(t, `
planner:
  ship_name: BOATY
  min_dock_ms: 750
  search:
    soft: 1s
    hard: 2s
  evaluate: 3s
logging:
  level: debug
  format: json
`)

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "BOATY", cfg.Planner.ShipName)
	assert.Equal(t, 750, cfg.Planner.MinDockMs)
	assert.Equal(t, time.Second, cfg.Planner.Search.Soft)
	assert.Equal(t, 2*time.Second, cfg.Planner.Search.Hard)
	assert.Equal(t, 3*time.Second, cfg.Planner.Evaluate)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	// Arrange
	path := writeFile(t, "planner:\n  ship_name: BOATY\n")
	t.Setenv("WALDO_PLANNER_SHIP_NAME", "ENVY")
	t.Setenv("WALDO_DATABASE_ENABLED", "true")

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ENVY", cfg.Planner.ShipName)
	assert.True(t, cfg.Database.Enabled)
}

func TestLoadConfig_DatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://waldo:secret@db:5432/waldolaw")

	cfg, err := config.LoadConfig(writeFile(t, "database:\n  type: postgres\n"))

	require.NoError(t, err)
	assert.Equal(t, "postgresql://waldo:secret@db:5432/waldolaw", cfg.Database.URL)
}

func TestLoadConfig_RejectsInvertedDeadlines(t *testing.T) {
	path := writeFile(t, `
planner:
  search:
    soft: 3s
    hard: 2s
`)

	_, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Hard")
}

func TestLoadConfig_RejectsEvaluateBeforeHardStop(t *testing.T) {
	path := writeFile(t, `
planner:
  search:
    soft: 1s
    hard: 2s
  evaluate: 1500ms
`)

	_, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Evaluate")
}

func TestLoadConfig_FileOutputNeedsPath(t *testing.T) {
	_, err := config.LoadConfig(writeFile(t, "logging:\n  output: file\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "FilePath")
}

func TestLoadConfig_UnknownDatabaseType(t *testing.T) {
	_, err := config.LoadConfig(writeFile(t, "database:\n  type: mysql\n"))

	assert.Error(t, err)
}

func TestLoadConfigOrDefault_FallsBackOnError(t *testing.T) {
	cfg := config.LoadConfigOrDefault(writeFile(t, "database:\n  type: mysql\n"))

	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "MATE", cfg.Planner.ShipName)
}
