package puzzle_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/waldolaw-go/internal/adapters/puzzle"
)

func TestLoadFile_JSON(t *testing.T) {
	// Act
	doc, err := puzzle.LoadFile(filepath.Join("testdata", "refuel.json"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 7, doc.Input.MapSize)
	assert.Equal(t, 10000, doc.Input.MaxFuel)
	assert.Equal(t, 6, doc.Input.MaxSpeed)
	require.Len(t, doc.Input.Items, 2)
	assert.Equal(t, "PLANET_f2", doc.Input.Items[1].Name)
	assert.Equal(t, 10000, doc.Input.Items[1].Fuel)
	assert.Len(t, doc.Digest, 64)
}

func TestLoadFile_YAMLMatchesJSON(t *testing.T) {
	// Act
	fromJSON, err := puzzle.LoadFile(filepath.Join("testdata", "refuel.json"))
	require.NoError(t, err)
	fromYAML, err := puzzle.LoadFile(filepath.Join("testdata", "refuel.yaml"))
	require.NoError(t, err)

	// Assert
	assert.Equal(t, fromJSON.Input.MapSize, fromYAML.Input.MapSize)
	assert.Equal(t, fromJSON.Input.Fuel, fromYAML.Input.Fuel)
	assert.Equal(t, fromJSON.Input.Items[0].Name, fromYAML.Input.Items[0].Name)
	assert.Equal(t, fromJSON.Input.Items[1].Fuel, fromYAML.Input.Items[1].Fuel)
	assert.NotEqual(t, fromJSON.Digest, fromYAML.Digest)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := puzzle.LoadFile(filepath.Join("testdata", "nope.json"))

	assert.Error(t, err)
}

func TestParse_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing mapsize", `{"fuel": 1, "speed": 1, "max_speed": 1, "max_fuel": 1, "items": []}`},
		{"fractional fuel", `{"mapsize": 5, "fuel": 1.5, "speed": 1, "max_speed": 1, "max_fuel": 1, "items": []}`},
		{"zero speed", `{"mapsize": 5, "fuel": 1, "speed": 0, "max_speed": 1, "max_fuel": 1, "items": []}`},
		{"unknown satellite", `{"mapsize": 5, "fuel": 1, "speed": 1, "max_speed": 1, "max_fuel": 1, "items": [
			{"name": "WALDO_1", "distances": [{"SatelliteName": "SAT_9", "Distance": 1}, {"SatelliteName": "SAT_0", "Distance": 1}]}]}`},
		{"single distance", `{"mapsize": 5, "fuel": 1, "speed": 1, "max_speed": 1, "max_fuel": 1, "items": [
			{"name": "WALDO_1", "distances": [{"SatelliteName": "SAT_0", "Distance": 1}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := puzzle.Parse([]byte(tt.doc), puzzle.FormatJSON)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema")
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := puzzle.Parse([]byte("mapsize: [7"), puzzle.FormatYAML)

	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, puzzle.FormatYAML, puzzle.FormatFromPath("a/b/puzzle.YML"))
	assert.Equal(t, puzzle.FormatYAML, puzzle.FormatFromPath("puzzle.yaml"))
	assert.Equal(t, puzzle.FormatJSON, puzzle.FormatFromPath("puzzle.json"))
	assert.Equal(t, puzzle.FormatJSON, puzzle.FormatFromPath("puzzle"))
}

func TestWriteCommands(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "output.json")

	// Act
	err := puzzle.WriteCommands(path, []string{"NAME MATE", "FORWARD 2"})

	// Assert
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var out puzzle.Output
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, []string{"NAME MATE", "FORWARD 2"}, out.Commands)
}

func TestWriteCommands_NilIsEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.json")

	require.NoError(t, puzzle.WriteCommands(path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Commands": []}`, string(raw))
}
