package main

import (
	"context"

	"github.com/parishledger/bank-importer/pkg/database"
	"github.com/parishledger/bank-importer/pkg/matcher"
	"github.com/parishledger/bank-importer/pkg/processor"
)

type StatementProcessor interface {
	ImportStatement(
		ctx context.Context,
		upload processor.Upload,
	) (*processor.ImportSummary, error)

	RunMatching(
		ctx context.Context,
		requestedBy string,
	) (*matcher.Result, error)
}

type TransactionLister interface {
	GetUnprocessedTransactions(ctx context.Context) ([]*database.BankCreditTransaction, error)
}
