package repositories

import (
	"context"
	"time"

	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for passbook ledger rows
type TransactionReader interface {
	// FindTransactionByID retrieves a specific ledger row.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByBankAccount retrieves a page of ledger rows in
	// canonical passbook order using token pagination. It also returns the
	// account's current balance as of the read.
	ListTransactionsByBankAccount(ctx context.Context, bankAccountID string, limit int, nextToken *string) ([]domain.Transaction, *string, decimal.Decimal, error)
}

// TransactionWriter defines the mutating ledger operations. Each call is one
// serializable unit per bank account: the account row is locked, the ledger is
// mutated, running balances are recomputed forward and the current balance is
// updated, or none of it happens.
type TransactionWriter interface {
	// RecordTransaction inserts a ledger row and recomputes the chain from its
	// date forward. Returns the row with its running balance set.
	RecordTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// UpdateTransactionAmountAndDate applies a retroactive edit and recomputes
	// from min(old date, new date) forward.
	UpdateTransactionAmountAndDate(ctx context.Context, transactionID string, amount decimal.Decimal, transactionDate time.Time, userID string, now time.Time) (*domain.Transaction, error)

	// DeleteTransaction removes a ledger row and recomputes from its date forward.
	DeleteTransaction(ctx context.Context, transactionID string, userID string, now time.Time) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
