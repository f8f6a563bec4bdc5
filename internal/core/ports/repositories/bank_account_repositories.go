package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankAccountReader defines read operations for bank account data
type BankAccountReader interface {
	// FindBankAccountByID retrieves a specific bank account by its unique identifier.
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)

	// ListBankAccountsByCompany retrieves all bank accounts of a company.
	ListBankAccountsByCompany(ctx context.Context, companyID string) ([]domain.BankAccount, error)
}

// BankAccountWriter defines write operations for bank account data
type BankAccountWriter interface {
	// SaveBankAccount persists a new bank account.
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
}

// BankAccountTransactionSupport defines operations used inside ledger transactions.
// Every balance mutation goes through these under a row lock, so concurrent
// recomputes against the same account serialize at the storage layer.
type BankAccountTransactionSupport interface {
	// FindBankAccountForUpdate selects a bank account and locks its row within a transaction.
	FindBankAccountForUpdate(ctx context.Context, tx pgx.Tx, bankAccountID string) (*domain.BankAccount, error)

	// SetCurrentBalanceInTx overwrites the authoritative current balance within a transaction.
	SetCurrentBalanceInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, balance decimal.Decimal, userID string, now time.Time) error
}

// BankAccountRepositoryFacade combines all bank-account repository interfaces.
type BankAccountRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
	BankAccountTransactionSupport
}
