package parser

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one credit row lifted from a statement export, before it is
// persisted.
type Transaction struct {
	Date        time.Time
	Description string
	MoneyIn     decimal.Decimal
	Reference   string
}

// ParseResult carries everything a single statement parse produced. Row-level
// failures land in Errors and never abort the batch. TotalRows counts data
// lines seen (header excluded), independent of how many rows were kept.
type ParseResult struct {
	Transactions []Transaction
	Errors       []string
	TotalRows    int
}
