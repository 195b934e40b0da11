package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/waldolaw-go/internal/adapters/cli"
	"github.com/andrescamacho/waldolaw-go/internal/adapters/puzzle"
	"github.com/andrescamacho/waldolaw-go/test/helpers"
)

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	return writeConfigWith(t, dir, "")
}

// writeConfigWith appends extra planner keys, indented under planner:
func writeConfigWith(t *testing.T, dir, plannerExtra string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	content := "planner:\n" +
		plannerExtra +
		"  search:\n" +
		"    soft: 60s\n" +
		"    hard: 61s\n" +
		"  evaluate: 62s\n" +
		"database:\n" +
		"  type: sqlite\n" +
		"  path: " + filepath.Join(dir, "history.db") + "\n" +
		"metrics:\n" +
		"  enabled: true\n" +
		"  textfile_path: " + filepath.Join(dir, "waldolaw.prom") + "\n" +
		"logging:\n" +
		"  level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	root := cli.NewRootCommand()
	root.SetArgs(args)
	return root.Execute()
}

func TestPlanCommand_WritesCommandsAndHistory(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)
	input := filepath.Join("..", "puzzle", "testdata", "refuel.json")
	output := filepath.Join(dir, "output.json")

	// Act
	err := run(t, "plan", input, output, "--config", cfgPath, "--persist")

	// Assert
	require.NoError(t, err)
	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	var out puzzle.Output
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, helpers.RefuelSectorCommands, out.Commands)

	assert.FileExists(t, filepath.Join(dir, "history.db"))
	assert.FileExists(t, filepath.Join(dir, "waldolaw.prom"))
	require.NoError(t, run(t, "history", "list", "--config", cfgPath, "--limit", "5"))
}

func TestPlanCommand_RecordHistoryFromConfig(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	cfgPath := writeConfigWith(t, dir, "  record_history: true\n")
	input := filepath.Join("..", "puzzle", "testdata", "refuel.json")
	output := filepath.Join(dir, "output.json")

	// Act
	err := run(t, "plan", input, output, "--config", cfgPath)

	// Assert
	require.NoError(t, err)
	assert.FileExists(t, output)
	assert.FileExists(t, filepath.Join(dir, "history.db"))
}

func TestPlanCommand_RejectsInvalidPuzzle(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)
	input := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"mapsize": 1}`), 0o644))

	// Act
	err := run(t, "plan", input, filepath.Join(dir, "output.json"), "--config", cfgPath)

	// Assert
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "output.json"))
}

func TestHistoryShow_UnknownRun(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	err := run(t, "history", "show", "does-not-exist", "--config", cfgPath)

	assert.Error(t, err)
}

func TestPlanCommand_RequiresTwoArguments(t *testing.T) {
	assert.Error(t, run(t, "plan", "only-one.json"))
}
