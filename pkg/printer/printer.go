package printer

import (
	"context"
	"fmt"
	"strings"

	"github.com/parishledger/bank-importer/pkg/importer"
	"github.com/parishledger/bank-importer/pkg/matcher"
	"github.com/parishledger/bank-importer/pkg/parser"
)

// Printer renders import and match results as the plain-text summaries sent
// to the finance team and printed by the CLI.
type Printer struct {
}

func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) ImportSummary(
	_ context.Context,
	fileName string,
	parseResult *parser.ParseResult,
	importResult *importer.Result,
) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Statement import: %s", fileName))
	sb.WriteString(fmt.Sprintf("\nRows in file: %v", parseResult.TotalRows))
	sb.WriteString(fmt.Sprintf("\nNew transactions: %v 🔥", importResult.NewTransactions))
	sb.WriteString(fmt.Sprintf("\nDuplicates skipped: %v ✨", importResult.DuplicatesSkipped))
	sb.WriteString(fmt.Sprintf("\nIgnored (no money in): %v", importResult.IgnoredNoMoneyIn))

	if len(parseResult.Errors) > 0 {
		sb.WriteString("\n\nErrors:")
		for _, parseErr := range parseResult.Errors {
			sb.WriteString(fmt.Sprintf("\n%s", parseErr))
		}
	}

	if len(importResult.Errors) > 0 {
		sb.WriteString("\n\nImport errors: 🚒")
		for _, importErr := range importResult.Errors {
			sb.WriteString(fmt.Sprintf("\n%s", importErr))
		}
	}

	if importResult.Success && len(parseResult.Errors) == 0 {
		sb.WriteString("\n\nAll rows imported cleanly! 🎉")
	}

	return sb.String()
}

func (p *Printer) MatchSummary(
	_ context.Context,
	result *matcher.Result,
) string {
	var sb strings.Builder

	sb.WriteString("Contribution matching")
	sb.WriteString(fmt.Sprintf("\nTransactions processed: %v", result.TotalProcessed))
	sb.WriteString(fmt.Sprintf("\nMatched: %v 🔥", result.MatchedCount))
	sb.WriteString(fmt.Sprintf("\nUnmatched: %v", result.UnmatchedCount))
	sb.WriteString(fmt.Sprintf("\nTotal credited: %s", result.TotalAmount.StringFixed(2)))

	if len(result.UnmatchedReferences) > 0 {
		sb.WriteString("\n\nUnmatched references:")
		for _, reference := range result.UnmatchedReferences {
			sb.WriteString(fmt.Sprintf("\n%s", reference))
		}
	}

	if len(result.Errors) > 0 {
		sb.WriteString("\n\nErrors: 🚒")
		for _, matchErr := range result.Errors {
			sb.WriteString(fmt.Sprintf("\n%s", matchErr))
		}
	}

	if result.UnmatchedCount == 0 && result.Success {
		sb.WriteString("\n\nEverything matched! 🎉")
	}

	return sb.String()
}
