package steps

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/waldolaw-go/internal/domain/shared"
	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
)

// getCellValueFromTable finds the value in row for the column named in the header row
func getCellValueFromTable(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	headerRow := table.Rows[0]

	for i, headerCell := range headerRow.Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}

	return ""
}

// columnValues returns every data row's value in the named column
func columnValues(table *godog.Table, columnName string) []string {
	values := make([]string, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		values = append(values, getCellValueFromTable(table, row, columnName))
	}
	return values
}

func parseDirection(name string) (shared.Direction, error) {
	for _, d := range shared.AllDirections {
		if d.String() == strings.ToUpper(name) {
			return d, nil
		}
	}
	return shared.DirectionNone, fmt.Errorf("unknown direction: %s", name)
}
