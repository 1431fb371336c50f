package matcher

import (
	"context"

	"github.com/parishledger/bank-importer/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package matcher_test -source=interfaces.go

type Repo interface {
	GetUnprocessedTransactions(ctx context.Context) ([]*database.BankCreditTransaction, error)
	GetActiveMembers(ctx context.Context) ([]*database.Member, error)
	GetContributedTransactionIDs(ctx context.Context) ([]uint, error)

	// SaveContributions must commit the new contribution rows and the
	// processed flags of their source transactions atomically.
	SaveContributions(
		ctx context.Context,
		contributions []*database.ContributionRecord,
		processedTransactionIDs []uint,
	) error
}
