package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerworks/voucher_disbursement_app/internal/apperrors"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	portsrepo "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/services"
	"github.com/ledgerworks/voucher_disbursement_app/internal/dto"
	"github.com/ledgerworks/voucher_disbursement_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// bankAccountService provides bank account operations.
type bankAccountService struct {
	accountRepo portsrepo.BankAccountRepositoryFacade
	checkRepo   portsrepo.CheckRepositoryFacade
}

// NewBankAccountService creates a new BankAccountService.
func NewBankAccountService(accountRepo portsrepo.BankAccountRepositoryFacade, checkRepo portsrepo.CheckRepositoryFacade) portssvc.BankAccountSvcFacade {
	return &bankAccountService{
		accountRepo: accountRepo,
		checkRepo:   checkRepo,
	}
}

// Ensure bankAccountService implements the portssvc.BankAccountSvcFacade interface
var _ portssvc.BankAccountSvcFacade = (*bankAccountService)(nil)

// CreateBankAccount registers a bank account with its opening balance. The
// current balance starts equal to the opening balance.
func (s *bankAccountService) CreateBankAccount(ctx context.Context, actor domain.Actor, req dto.CreateBankAccountRequest) (*domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleLiaison {
		return nil, fmt.Errorf("%w: only admins or liaisons can register bank accounts", apperrors.ErrForbidden)
	}
	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	account := domain.BankAccount{
		BankAccountID:  uuid.NewString(),
		CompanyID:      req.CompanyID,
		BankName:       req.BankName,
		AccountNumber:  req.AccountNumber,
		OpeningBalance: req.OpeningBalance,
		CurrentBalance: req.OpeningBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.accountRepo.SaveBankAccount(ctx, account); err != nil {
		logger.Error("Failed to save bank account", slog.String("company_id", req.CompanyID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Bank account created", slog.String("bank_account_id", account.BankAccountID), slog.String("company_id", account.CompanyID))
	return &account, nil
}

// GetBankAccount retrieves a bank account with its derived unclaimed balance.
func (s *bankAccountService) GetBankAccount(ctx context.Context, bankAccountID string) (*domain.BankAccount, decimal.Decimal, error) {
	account, err := s.accountRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	unclaimed, err := s.checkRepo.SumOutstanding(ctx, bankAccountID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return account, unclaimed, nil
}

// ListBankAccounts retrieves all bank accounts of a company with their derived
// unclaimed balances.
func (s *bankAccountService) ListBankAccounts(ctx context.Context, companyID string) ([]dto.BankAccountResponse, error) {
	accounts, err := s.accountRepo.ListBankAccountsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BankAccountResponse, 0, len(accounts))
	for i := range accounts {
		unclaimed, err := s.checkRepo.SumOutstanding(ctx, accounts[i].BankAccountID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, dto.ToBankAccountResponse(&accounts[i], unclaimed))
	}
	return responses, nil
}
