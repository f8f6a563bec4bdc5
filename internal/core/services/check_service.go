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
)

// checkService drives checks through their lifecycle.
type checkService struct {
	checkRepo portsrepo.CheckRepositoryFacade
}

// NewCheckService creates a new CheckService.
func NewCheckService(checkRepo portsrepo.CheckRepositoryFacade) portssvc.CheckSvcFacade {
	return &checkService{checkRepo: checkRepo}
}

// Ensure checkService implements the portssvc.CheckSvcFacade interface
var _ portssvc.CheckSvcFacade = (*checkService)(nil)

// SetCheckStatus applies one lifecycle transition. Claiming needs a liaison or
// admin; clearing and bouncing need an admin. Clearing posts the withdrawal
// ledger row; bouncing a claimed check posts nothing because no cash moved.
func (s *checkService) SetCheckStatus(ctx context.Context, actor domain.Actor, checkID string, req dto.UpdateCheckStatusRequest) (*domain.Check, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	target := domain.CheckStatus(req.Status)
	switch target {
	case domain.CheckClaimed, domain.CheckCleared, domain.CheckBounced:
	default:
		// VOIDED in particular only happens through the voucher void flow.
		return nil, fmt.Errorf("%w: checks cannot be moved to %s directly", apperrors.ErrValidation, target)
	}

	check, err := s.checkRepo.FindCheckByID(ctx, checkID)
	if err != nil {
		return nil, err
	}

	if !check.Status.CanTransition(target) {
		return nil, fmt.Errorf("%w: check cannot move from %s to %s", apperrors.ErrInvalidTransition, check.Status, target)
	}

	switch target {
	case domain.CheckClaimed:
		if actor.Role != domain.RoleLiaison && actor.Role != domain.RoleAdmin {
			return nil, fmt.Errorf("%w: only liaisons or admins can mark checks claimed", apperrors.ErrForbidden)
		}
	case domain.CheckCleared, domain.CheckBounced:
		if actor.Role != domain.RoleAdmin {
			return nil, fmt.Errorf("%w: only admins can mark checks %s", apperrors.ErrForbidden, target)
		}
	}

	now := time.Now().UTC()
	entry := newAuditEntry(domain.AuditEntityCheck, checkID, actor, string(check.Status), string(target), "", now)

	switch target {
	case domain.CheckClaimed:
		if req.ReceivedBy == nil || *req.ReceivedBy == "" {
			return nil, fmt.Errorf("%w: receivedBy is required when claiming a check", apperrors.ErrValidation)
		}
		if err := s.checkRepo.ClaimCheck(ctx, checkID, *req.ReceivedBy, entry, actor.UserID, now); err != nil {
			return nil, err
		}

	case domain.CheckCleared:
		if req.Date == nil {
			return nil, fmt.Errorf("%w: date is required when clearing a check", apperrors.ErrValidation)
		}
		clearDate, err := dto.ParseDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid clear date", apperrors.ErrValidation)
		}
		checkNo := check.CheckNumber
		ledgerTxn := domain.Transaction{
			TransactionID:   uuid.NewString(),
			BankAccountID:   check.BankAccountID,
			Type:            domain.Withdrawal,
			Amount:          check.Amount,
			Category:        domain.CategoryCheckDisbursement,
			Description:     fmt.Sprintf("Check #%d to %s", check.CheckNumber, check.Payee),
			CheckNo:         &checkNo,
			TransactionDate: clearDate,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actor.UserID,
			},
		}
		if err := s.checkRepo.ClearCheck(ctx, *check, ledgerTxn, entry); err != nil {
			return nil, err
		}

	case domain.CheckBounced:
		if err := s.checkRepo.BounceCheck(ctx, *check, entry, actor.UserID, now); err != nil {
			return nil, err
		}
	}

	logger.Info("Check status updated",
		slog.String("check_id", checkID),
		slog.String("from", string(check.Status)),
		slog.String("to", string(target)),
	)
	return s.checkRepo.FindCheckByID(ctx, checkID)
}

// UpdateIssueDate edits a check's issue date. On a CLEARED check the linked
// ledger row moves with it and balances are recomputed.
func (s *checkService) UpdateIssueDate(ctx context.Context, actor domain.Actor, checkID string, req dto.UpdateCheckRequest) (*domain.Check, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can edit check issue dates", apperrors.ErrForbidden)
	}

	newDate, err := dto.ParseDate(req.DateIssued)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid issue date", apperrors.ErrValidation)
	}

	check, err := s.checkRepo.FindCheckByID(ctx, checkID)
	if err != nil {
		return nil, err
	}

	if err := s.checkRepo.UpdateIssueDate(ctx, *check, newDate, actor.UserID, time.Now().UTC()); err != nil {
		return nil, err
	}

	logger.Info("Check issue date updated", slog.String("check_id", checkID), slog.String("date_issued", req.DateIssued))
	return s.checkRepo.FindCheckByID(ctx, checkID)
}

// GetCheck retrieves a check by its ID.
func (s *checkService) GetCheck(ctx context.Context, checkID string) (*domain.Check, error) {
	return s.checkRepo.FindCheckByID(ctx, checkID)
}

// ListChecksByBankAccount retrieves all checks drawn against a bank account.
func (s *checkService) ListChecksByBankAccount(ctx context.Context, bankAccountID string) ([]domain.Check, error) {
	return s.checkRepo.ListChecksByBankAccount(ctx, bankAccountID)
}
