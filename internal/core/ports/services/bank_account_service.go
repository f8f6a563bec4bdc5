package services

import (
	"context"

	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/ledgerworks/voucher_disbursement_app/internal/dto"
	"github.com/shopspring/decimal"
)

// BankAccountSvcFacade defines bank account business operations.
type BankAccountSvcFacade interface {
	// CreateBankAccount registers a bank account with its opening balance.
	// Admin only.
	CreateBankAccount(ctx context.Context, actor domain.Actor, req dto.CreateBankAccountRequest) (*domain.BankAccount, error)

	// GetBankAccount retrieves a bank account along with its derived unclaimed
	// balance (sum of outstanding checks).
	GetBankAccount(ctx context.Context, bankAccountID string) (*domain.BankAccount, decimal.Decimal, error)

	// ListBankAccounts retrieves all bank accounts of a company, each with its
	// derived unclaimed balance.
	ListBankAccounts(ctx context.Context, companyID string) ([]dto.BankAccountResponse, error)
}
