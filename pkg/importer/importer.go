package importer

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/parishledger/bank-importer/pkg/database"
	"github.com/parishledger/bank-importer/pkg/parser"
)

type Importer struct {
	repo Repo
}

func NewImporter(repo Repo) *Importer {
	return &Importer{
		repo: repo,
	}
}

type Result struct {
	TotalProcessed    int
	NewTransactions   int
	DuplicatesSkipped int
	IgnoredNoMoneyIn  int
	Success           bool
	Errors            []string
}

// duplicateKey builds the natural key for a statement line: day-granularity
// date, pence-precision amount, description truncated the same way it is
// stored. Changing the format changes which historical rows count as
// duplicates, so it stays fixed.
func duplicateKey(date time.Time, moneyIn decimal.Decimal, description string) string {
	return strings.Join([]string{
		date.Format(time.DateOnly),
		moneyIn.StringFixed(2),
		truncate(description, database.MaxDescriptionLength),
	}, "$$")
}

// truncate caps value at max characters. Rune-based on purpose: cutting a
// multi-byte character in half produces invalid UTF-8 that Postgres rejects.
func truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) > max {
		return string(runes[:max])
	}

	return value
}

// Import persists the parsed transactions that are not already stored. All
// inserts happen inside one database transaction; on failure nothing is
// partially committed.
func (i *Importer) Import(
	ctx context.Context,
	transactions []parser.Transaction,
	uploadedBy string,
) (*Result, error) {
	result := &Result{
		TotalProcessed: len(transactions),
	}

	credits := lo.Filter(transactions, func(tx parser.Transaction, _ int) bool {
		return tx.MoneyIn.GreaterThan(decimal.Zero)
	})
	result.IgnoredNoMoneyIn = len(transactions) - len(credits)

	if len(credits) == 0 {
		result.Success = true
		return result, nil
	}

	stored, err := i.repo.GetActiveTransactions(ctx)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result, errors.Wrap(err, "failed to load stored transactions")
	}

	seen := make(map[string]struct{}, len(stored))
	for _, tx := range stored {
		seen[duplicateKey(tx.Date, tx.MoneyIn, tx.Description)] = struct{}{}
	}

	now := time.Now().UTC()

	var batch []*database.BankCreditTransaction
	for _, tx := range credits {
		if err = ctx.Err(); err != nil {
			return result, errors.WithStack(err)
		}

		key := duplicateKey(tx.Date, tx.MoneyIn, tx.Description)
		if _, ok := seen[key]; ok {
			result.DuplicatesSkipped++
			continue
		}

		seen[key] = struct{}{} // identical rows within the same upload are duplicates too

		batch = append(batch, &database.BankCreditTransaction{
			Date:            tx.Date,
			Description:     truncate(tx.Description, database.MaxDescriptionLength),
			Reference:       truncate(tx.Reference, database.MaxReferenceLength),
			MoneyIn:         tx.MoneyIn,
			IsProcessed:     false,
			Deleted:         false,
			CreatedBy:       uploadedBy,
			CreatedDateTime: now,
		})
	}

	if len(batch) > 0 {
		if err = i.repo.InsertTransactions(ctx, batch); err != nil {
			result.Errors = append(result.Errors, err.Error())
			return result, errors.Wrap(err, "failed to insert transactions")
		}
	}

	result.NewTransactions = len(batch)
	result.Success = true

	zerolog.Ctx(ctx).Info().
		Int("new", result.NewTransactions).
		Int("duplicates", result.DuplicatesSkipped).
		Int("ignored", result.IgnoredNoMoneyIn).
		Str("uploaded_by", uploadedBy).
		Msg("statement import finished")

	return result, nil
}
