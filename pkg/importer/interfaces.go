package importer

import (
	"context"

	"github.com/parishledger/bank-importer/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package importer_test -source=interfaces.go

type Repo interface {
	GetActiveTransactions(ctx context.Context) ([]*database.BankCreditTransaction, error)
	InsertTransactions(ctx context.Context, transactions []*database.BankCreditTransaction) error
}
