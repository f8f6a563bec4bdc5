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

const (
	defaultTransactionPageSize = 50
	maxTransactionPageSize     = 100
)

// ledgerService provides passbook ledger operations.
type ledgerService struct {
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.BankAccountRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.BankAccountRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// RecordTransaction posts a manual ledger entry. Amounts are stored unsigned;
// the row type carries the direction.
func (s *ledgerService) RecordTransaction(ctx context.Context, actor domain.Actor, bankAccountID string, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can record transactions", apperrors.ErrForbidden)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	txnDate, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid transaction date", apperrors.ErrValidation)
	}

	if _, err := s.accountRepo.FindBankAccountByID(ctx, bankAccountID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		BankAccountID:   bankAccountID,
		Type:            domain.TransactionType(req.Type),
		Amount:          req.Amount,
		Category:        req.Category,
		Description:     req.Description,
		CheckNo:         req.CheckNo,
		TransactionDate: txnDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	saved, err := s.txnRepo.RecordTransaction(ctx, txn)
	if err != nil {
		logger.Error("Failed to record transaction", slog.String("bank_account_id", bankAccountID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Transaction recorded",
		slog.String("transaction_id", saved.TransactionID),
		slog.String("bank_account_id", bankAccountID),
		slog.String("type", string(saved.Type)),
		slog.String("amount", saved.Amount.String()),
	)
	return saved, nil
}

// UpdateTransaction retroactively edits a ledger row's amount or date. Rows
// posted by check clearing are edited through the check, never directly.
func (s *ledgerService) UpdateTransaction(ctx context.Context, actor domain.Actor, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can edit transactions", apperrors.ErrForbidden)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	txnDate, err := dto.ParseDate(req.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid transaction date", apperrors.ErrValidation)
	}

	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if existing.Category == domain.CategoryCheckDisbursement {
		return nil, fmt.Errorf("%w: rows posted by check clearing are edited through the check", apperrors.ErrValidation)
	}

	updated, err := s.txnRepo.UpdateTransactionAmountAndDate(ctx, transactionID, req.Amount, txnDate, actor.UserID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	logger.Info("Transaction updated",
		slog.String("transaction_id", transactionID),
		slog.String("amount", req.Amount.String()),
		slog.String("transaction_date", req.TransactionDate),
	)
	return updated, nil
}

// DeleteTransaction removes a ledger row. Rows posted by check clearing stay;
// a cleared check is undone through its own lifecycle, not the ledger.
func (s *ledgerService) DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: only admins can delete transactions", apperrors.ErrForbidden)
	}

	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if existing.Category == domain.CategoryCheckDisbursement {
		return fmt.Errorf("%w: rows posted by check clearing cannot be deleted directly", apperrors.ErrValidation)
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, actor.UserID, time.Now().UTC()); err != nil {
		return err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID), slog.String("bank_account_id", existing.BankAccountID))
	return nil
}

// ListTransactions retrieves a page of passbook rows in canonical order plus
// the account's current balance.
func (s *ledgerService) ListTransactions(ctx context.Context, bankAccountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	if limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}

	txns, nextToken, currentBalance, err := s.txnRepo.ListTransactionsByBankAccount(ctx, bankAccountID, limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions:   dto.ToTransactionResponses(txns),
		NextToken:      nextToken,
		CurrentBalance: currentBalance,
	}, nil
}
