package database

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// Contribution type ids match the static lookup table seeded by the
	// admin application. Cash is the envelope pipeline, Transfer is ours.
	ContributionTypeCash     = 1
	ContributionTypeTransfer = 2
)

const (
	MaxDescriptionLength = 500
	MaxReferenceLength   = 100
)

// BankCreditTransaction is one inbound credit line from a bank statement.
// Rows are created once by the importer and never mutated afterwards except
// for IsProcessed, which flips to true exactly once when a contribution is
// created from the row.
type BankCreditTransaction struct {
	ID              uint `gorm:"primaryKey"`
	Date            time.Time
	Description     string          `gorm:"size:500"`
	Reference       string          `gorm:"size:100"`
	MoneyIn         decimal.Decimal `gorm:"type:decimal(18,2)"`
	IsProcessed     bool
	Deleted         bool
	CreatedBy       string
	CreatedDateTime time.Time
}

func (BankCreditTransaction) TableName() string {
	return "bank_credit_transactions"
}

// Member is the slice of the member directory this service reads: the bank
// reference payers put on their transfers. Maintained by the admin screens,
// read-only here.
type Member struct {
	ID            uint `gorm:"primaryKey"`
	Name          string
	BankReference string `gorm:"size:100"`
	IsActive      bool
	Deleted       bool
}

func (Member) TableName() string {
	return "members"
}

// ContributionRecord is one ledger entry produced by the matcher.
// SourceTransactionID carries a unique constraint so a transaction can never
// be credited twice, even across concurrent matcher runs.
type ContributionRecord struct {
	ID                  uint `gorm:"primaryKey"`
	MemberID            uint
	Amount              decimal.Decimal `gorm:"type:decimal(18,2)"`
	Date                time.Time
	TransactionRef      string `gorm:"size:100"`
	Description         string `gorm:"size:500"`
	ContributionTypeID  int
	SourceTransactionID uint `gorm:"uniqueIndex"`
	CreatedBy           string
	CreatedDateTime     time.Time
}

func (ContributionRecord) TableName() string {
	return "contribution_records"
}
