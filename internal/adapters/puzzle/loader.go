package puzzle

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a puzzle file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath guesses the format from the file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Document is a loaded, validated puzzle
type Document struct {
	Input  *Input
	Digest string // sha256 of the raw file
}

// LoadFile reads and validates a puzzle file
func LoadFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle: %w", err)
	}
	return Parse(raw, FormatFromPath(path))
}

// Parse decodes raw in the given format, validates it against the puzzle
// schema and returns the typed input. YAML is normalised to JSON first so
// both formats go through the same schema.
func Parse(raw []byte, format Format) (*Document, error) {
	jsonBytes := raw
	if format == FormatYAML {
		var generic interface{}
		if err := yaml.Unmarshal(raw, &generic); err != nil {
			return nil, fmt.Errorf("failed to decode yaml puzzle: %w", err)
		}
		converted, err := json.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("failed to convert yaml puzzle: %w", err)
		}
		jsonBytes = converted
	}

	var doc interface{}
	decoder := json.NewDecoder(bytes.NewReader(jsonBytes))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode puzzle: %w", err)
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}

	var input Input
	if err := json.Unmarshal(jsonBytes, &input); err != nil {
		return nil, fmt.Errorf("failed to decode puzzle: %w", err)
	}

	sum := sha256.Sum256(raw)
	return &Document{Input: &input, Digest: hex.EncodeToString(sum[:])}, nil
}
