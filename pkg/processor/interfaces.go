package processor

import (
	"context"

	"github.com/parishledger/bank-importer/pkg/importer"
	"github.com/parishledger/bank-importer/pkg/matcher"
	"github.com/parishledger/bank-importer/pkg/parser"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package processor_test -source=interfaces.go

type StatementParser interface {
	ParseFile(ctx context.Context, fileName string, data []byte) *parser.ParseResult
}

type TransactionImporter interface {
	Import(
		ctx context.Context,
		transactions []parser.Transaction,
		uploadedBy string,
	) (*importer.Result, error)
}

type ContributionMatcher interface {
	MatchAndCreateContributions(
		ctx context.Context,
		uploadedBy string,
	) (*matcher.Result, error)
}

type Printer interface {
	ImportSummary(
		ctx context.Context,
		fileName string,
		parseResult *parser.ParseResult,
		importResult *importer.Result,
	) string

	MatchSummary(ctx context.Context, result *matcher.Result) string
}

type NotificationSvc interface {
	SendMessage(ctx context.Context, text string) error
}
