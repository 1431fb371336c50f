package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// HSBC parses the CSV (and spreadsheet, see hsbc_xlsx.go) statement exports
// the treasurer downloads from online banking. Column positions move around
// between export formats, so columns are resolved by header name against a
// small alias table rather than by index.
type HSBC struct {
}

func NewHSBC() *HSBC {
	return &HSBC{}
}

func (h *HSBC) Type() string {
	return "hsbc"
}

var (
	dateAliases        = []string{"date", "transaction date"}
	descriptionAliases = []string{"description", "transaction description"}
	moneyInAliases     = []string{"money in", "credit amount", "credit"}
)

var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"02-01-2006",
	"02 Jan 2006",
	"2 Jan 2006",
}

type columnSet struct {
	date        int
	description int
	moneyIn     int
}

// ParseFile dispatches on the uploaded file name: spreadsheet exports go
// through the xlsx reader, everything else is treated as CSV text.
func (h *HSBC) ParseFile(ctx context.Context, fileName string, data []byte) *ParseResult {
	if strings.EqualFold(filepath.Ext(fileName), ".xlsx") {
		return h.ParseXLSX(ctx, data)
	}

	return h.Parse(ctx, data)
}

func (h *HSBC) Parse(ctx context.Context, data []byte) *ParseResult {
	lines := toLines(string(data))

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, splitFields(line))
	}

	return h.parseRows(ctx, rows)
}

func (h *HSBC) parseRows(ctx context.Context, rows [][]string) *ParseResult {
	result := &ParseResult{}

	if len(rows) < 2 {
		result.Errors = append(result.Errors,
			"statement must contain a header row and at least one data row")
		return result
	}

	columns, missing := resolveColumns(rows[0])
	if len(missing) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Missing required columns: %s", strings.Join(missing, ", ")))
		return result
	}

	result.TotalRows = len(rows) - 1

	for i, cells := range rows[1:] {
		tx, rowErr := h.parseRow(cells, columns)
		if rowErr != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Error parsing row %d: %s", i+1, rowErr))

			zerolog.Ctx(ctx).Debug().
				Str("cells", spew.Sdump(cells)).
				Msg("failed to parse statement row")

			continue
		}

		if !tx.MoneyIn.GreaterThan(decimal.Zero) {
			continue // debit or zero-credit line, not relevant here
		}

		result.Transactions = append(result.Transactions, *tx)
	}

	return result
}

func resolveColumns(header []string) (columnSet, []string) {
	index := map[string]int{}
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	columns := columnSet{}
	var missing []string

	var ok bool
	if columns.date, ok = resolveColumn(index, dateAliases); !ok {
		missing = append(missing, "Date")
	}
	if columns.description, ok = resolveColumn(index, descriptionAliases); !ok {
		missing = append(missing, "Description")
	}
	if columns.moneyIn, ok = resolveColumn(index, moneyInAliases); !ok {
		missing = append(missing, "Money In")
	}

	return columns, missing
}

func resolveColumn(index map[string]int, aliases []string) (int, bool) {
	for _, alias := range aliases {
		if at, ok := index[alias]; ok {
			return at, true
		}
	}

	return 0, false
}

func (h *HSBC) parseRow(cells []string, columns columnSet) (*Transaction, error) {
	rawDate, err := cellAt(cells, columns.date)
	if err != nil {
		return nil, err
	}

	rawDescription, err := cellAt(cells, columns.description)
	if err != nil {
		return nil, err
	}

	rawAmount, err := cellAt(cells, columns.moneyIn)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(rawDescription)

	return &Transaction{
		Date:        parseDate(rawDate),
		Description: description,
		MoneyIn:     parseAmount(rawAmount),
		Reference:   ExtractReference(description),
	}, nil
}

func cellAt(cells []string, at int) (string, error) {
	if at >= len(cells) {
		return "", errors.Newf("column %d is out of range, row has %d fields", at, len(cells))
	}

	return cells[at], nil
}

// parseDate tries the British day-first layouts the bank uses. An unparseable
// date degrades to the zero time rather than failing the row.
func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}

	return time.Time{}
}

// parseAmount parses the credit column, defaulting to zero when the cell is
// blank or unparseable. Pound signs and thousands separators show up in some
// export variants.
func parseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, "£", "")
	raw = strings.ReplaceAll(raw, ",", "")

	if raw == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}

	return amount
}
