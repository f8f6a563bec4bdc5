package services

import (
	"context"

	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/ledgerworks/voucher_disbursement_app/internal/dto"
)

// LedgerSvcFacade defines passbook ledger business operations.
type LedgerSvcFacade interface {
	// RecordTransaction posts a manual ledger entry against a bank account.
	// Admin only.
	RecordTransaction(ctx context.Context, actor domain.Actor, bankAccountID string, req dto.RecordTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction retroactively edits a ledger row's amount or date and
	// cascades running balances forward. Admin only.
	UpdateTransaction(ctx context.Context, actor domain.Actor, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a ledger row and cascades running balances
	// forward. Admin only.
	DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error

	// ListTransactions retrieves a page of passbook rows in canonical order
	// plus the account's current balance.
	ListTransactions(ctx context.Context, bankAccountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}
