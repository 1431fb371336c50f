package repo

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, &gormigrate.Options{
		TableName:                 "gorm_migrations",
		IDColumnName:              "id",
		IDColumnSize:              255,
		UseTransaction:            false,
		ValidateUnknownMigrations: false,
	}, getMigrations())

	return m.Migrate()
}

func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2025_03_14_Initial",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists bank_credit_transactions
(
    id                serial primary key,
    date              date         not null,
    description       varchar(500) not null,
    reference         varchar(100) not null default '',
    money_in          decimal(18, 2) not null,
    is_processed      boolean      not null default false,
    deleted           boolean      not null default false,
    created_by        varchar(255) not null default '',
    created_date_time timestamp    not null
);
`).Error
			},
		},
		{
			ID: "2025_03_14_Members",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists members
(
    id             serial primary key,
    name           varchar(255) not null,
    bank_reference varchar(100) not null default '',
    is_active      boolean      not null default true,
    deleted        boolean      not null default false
);
`).Error
			},
		},
		{
			ID: "2025_03_14_Contributions",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists contribution_records
(
    id                    serial primary key,
    member_id             integer      not null references members (id),
    amount                decimal(18, 2) not null,
    date                  date         not null,
    transaction_ref       varchar(100) not null default '',
    description           varchar(500) not null default '',
    contribution_type_id  integer      not null,
    source_transaction_id integer      not null
        references bank_credit_transactions (id),
    created_by            varchar(255) not null default '',
    created_date_time     timestamp    not null,
    constraint contribution_records_source_transaction_uq
        unique (source_transaction_id)
);
`).Error
			},
		},
		{
			ID: "2025_03_21_DuplicateScanIndex",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create index if not exists bank_credit_transactions_dedup_idx
    on bank_credit_transactions (date, money_in);
`).Error
			},
		},
	}
}
