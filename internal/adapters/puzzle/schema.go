package puzzle

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed puzzle.schema.json
var schemaSource string

const schemaURL = "waldolaw://puzzle.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func puzzleSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString(schemaURL, schemaSource)
	})
	return compiledSchema, schemaErr
}

// ValidateDocument checks a decoded JSON document (maps, slices, float64 and
// json.Number values) against the puzzle schema
func ValidateDocument(doc interface{}) error {
	schema, err := puzzleSchema()
	if err != nil {
		return fmt.Errorf("failed to compile puzzle schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("puzzle does not match schema: %w", err)
	}
	return nil
}
