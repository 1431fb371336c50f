package parser

import (
	"context"
	"strings"

	"github.com/tealeg/xlsx"
)

// ParseXLSX reads the first sheet of a spreadsheet statement export and runs
// it through the same header-driven row logic as the CSV path.
func (h *HSBC) ParseXLSX(ctx context.Context, data []byte) *ParseResult {
	result := &ParseResult{}

	fileData, err := xlsx.OpenBinary(data)
	if err != nil {
		result.Errors = append(result.Errors, "failed to open spreadsheet: "+err.Error())
		return result
	}

	if len(fileData.Sheets) == 0 {
		result.Errors = append(result.Errors, "no sheets found")
		return result
	}

	sheet := fileData.Sheets[0]

	var rows [][]string
	for _, row := range sheet.Rows {
		if len(row.Cells) == 0 {
			continue
		}

		cells := make([]string, 0, len(row.Cells))

		empty := true
		for _, cell := range row.Cells {
			value := cell.String()
			if strings.TrimSpace(value) != "" {
				empty = false
			}

			cells = append(cells, value)
		}

		if empty {
			continue
		}

		rows = append(rows, cells)
	}

	return h.parseRows(ctx, rows)
}
