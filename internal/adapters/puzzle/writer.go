package puzzle

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteCommands stores command lines as {"Commands": [...]}
func WriteCommands(path string, lines []string) error {
	if lines == nil {
		lines = []string{}
	}
	data, err := json.Marshal(Output{Commands: lines})
	if err != nil {
		return fmt.Errorf("failed to encode commands: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write commands: %w", err)
	}
	return nil
}
