package repo

import (
	"context"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	"github.com/parishledger/bank-importer/pkg/database"
)

const insertBatchSize = 200

// Postgres is the storage layer behind the importer and the matcher. Reads
// are plain snapshots; every write phase runs inside one database
// transaction so a failure never leaves a partial batch behind.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{
		db: db,
	}
}

func (p *Postgres) GetActiveTransactions(
	ctx context.Context,
) ([]*database.BankCreditTransaction, error) {
	var transactions []*database.BankCreditTransaction

	if err := p.db.WithContext(ctx).
		Where("deleted = false").
		Find(&transactions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load stored transactions")
	}

	return transactions, nil
}

func (p *Postgres) InsertTransactions(
	ctx context.Context,
	transactions []*database.BankCreditTransaction,
) error {
	if len(transactions) == 0 {
		return nil
	}

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(transactions, insertBatchSize).Error
	})

	return errors.Wrap(err, "failed to insert transactions")
}

func (p *Postgres) GetUnprocessedTransactions(
	ctx context.Context,
) ([]*database.BankCreditTransaction, error) {
	var transactions []*database.BankCreditTransaction

	if err := p.db.WithContext(ctx).
		Where("is_processed = false AND deleted = false").
		Order("date, id").
		Find(&transactions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load unprocessed transactions")
	}

	return transactions, nil
}

func (p *Postgres) GetActiveMembers(
	ctx context.Context,
) ([]*database.Member, error) {
	var members []*database.Member

	if err := p.db.WithContext(ctx).
		Where("is_active = true AND deleted = false").
		Find(&members).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load members")
	}

	return members, nil
}

func (p *Postgres) GetContributedTransactionIDs(
	ctx context.Context,
) ([]uint, error) {
	var ids []uint

	if err := p.db.WithContext(ctx).
		Model(&database.ContributionRecord{}).
		Pluck("source_transaction_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load contributed transaction ids")
	}

	return ids, nil
}

func (p *Postgres) SaveContributions(
	ctx context.Context,
	contributions []*database.ContributionRecord,
	processedTransactionIDs []uint,
) error {
	if len(contributions) == 0 {
		return nil
	}

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(contributions, insertBatchSize).Error; err != nil {
			return err
		}

		return tx.Model(&database.BankCreditTransaction{}).
			Where("id IN ?", processedTransactionIDs).
			Update("is_processed", true).Error
	})

	return errors.Wrap(err, "failed to save contributions")
}
