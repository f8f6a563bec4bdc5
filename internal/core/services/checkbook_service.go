package services

import (
	"context"
	"errors"
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

// checkbookService provides checkbook series operations.
type checkbookService struct {
	checkbookRepo portsrepo.CheckbookRepositoryFacade
	accountRepo   portsrepo.BankAccountRepositoryFacade
}

// NewCheckbookService creates a new CheckbookService.
func NewCheckbookService(checkbookRepo portsrepo.CheckbookRepositoryFacade, accountRepo portsrepo.BankAccountRepositoryFacade) portssvc.CheckbookSvcFacade {
	return &checkbookService{
		checkbookRepo: checkbookRepo,
		accountRepo:   accountRepo,
	}
}

// Ensure checkbookService implements the portssvc.CheckbookSvcFacade interface
var _ portssvc.CheckbookSvcFacade = (*checkbookService)(nil)

// AllocateCheckbook registers a new ACTIVE series against a bank account.
// One ACTIVE book per account; ranges of non-CLOSED books must not overlap.
func (s *checkbookService) AllocateCheckbook(ctx context.Context, actor domain.Actor, bankAccountID string, req dto.AllocateCheckbookRequest) (*domain.Checkbook, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleLiaison && actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only liaisons or admins can allocate checkbooks", apperrors.ErrForbidden)
	}
	if req.SeriesEnd < req.SeriesStart {
		return nil, fmt.Errorf("%w: series end %d is before series start %d", apperrors.ErrValidation, req.SeriesEnd, req.SeriesStart)
	}

	if _, err := s.accountRepo.FindBankAccountByID(ctx, bankAccountID); err != nil {
		return nil, err
	}

	_, err := s.checkbookRepo.FindActiveCheckbook(ctx, bankAccountID)
	if err == nil {
		return nil, fmt.Errorf("%w: bank account %s already has an active checkbook", apperrors.ErrConflict, bankAccountID)
	}
	if !errors.Is(err, apperrors.ErrNoActiveCheckbook) {
		return nil, err
	}

	overlaps, err := s.checkbookRepo.HasOverlappingSeries(ctx, bankAccountID, req.SeriesStart, req.SeriesEnd)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, fmt.Errorf("%w: series %d-%d overlaps an existing checkbook", apperrors.ErrValidation, req.SeriesStart, req.SeriesEnd)
	}

	now := time.Now().UTC()
	checkbook := domain.Checkbook{
		CheckbookID:   uuid.NewString(),
		BankAccountID: bankAccountID,
		SeriesStart:   req.SeriesStart,
		SeriesEnd:     req.SeriesEnd,
		NextCheckNo:   req.SeriesStart,
		Status:        domain.CheckbookActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.checkbookRepo.SaveCheckbook(ctx, checkbook); err != nil {
		logger.Error("Failed to save checkbook", slog.String("bank_account_id", bankAccountID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Checkbook allocated",
		slog.String("checkbook_id", checkbook.CheckbookID),
		slog.String("bank_account_id", bankAccountID),
		slog.Int64("series_start", req.SeriesStart),
		slog.Int64("series_end", req.SeriesEnd),
	)
	return &checkbook, nil
}

// PeekNextCheckNumber reports the number the active checkbook would issue
// next, without consuming it.
func (s *checkbookService) PeekNextCheckNumber(ctx context.Context, bankAccountID string) (int64, error) {
	checkbook, err := s.checkbookRepo.FindActiveCheckbook(ctx, bankAccountID)
	if err != nil {
		return 0, err
	}
	return checkbook.NextCheckNo, nil
}

// CloseCheckbook retires a checkbook early. Unissued numbers in its range are
// abandoned permanently; a new series can then be allocated.
func (s *checkbookService) CloseCheckbook(ctx context.Context, actor domain.Actor, checkbookID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: only admins can close checkbooks", apperrors.ErrForbidden)
	}

	checkbook, err := s.checkbookRepo.FindCheckbookByID(ctx, checkbookID)
	if err != nil {
		return err
	}
	if checkbook.Status == domain.CheckbookClosed {
		return fmt.Errorf("%w: checkbook %s is already closed", apperrors.ErrInvalidTransition, checkbookID)
	}

	if err := s.checkbookRepo.CloseCheckbook(ctx, checkbookID, actor.UserID, time.Now().UTC()); err != nil {
		return err
	}

	logger.Info("Checkbook closed", slog.String("checkbook_id", checkbookID), slog.Int64("abandoned_numbers", checkbook.Remaining()))
	return nil
}

// ListCheckbooks retrieves all checkbooks of a bank account.
func (s *checkbookService) ListCheckbooks(ctx context.Context, bankAccountID string) ([]domain.Checkbook, error) {
	if _, err := s.accountRepo.FindBankAccountByID(ctx, bankAccountID); err != nil {
		return nil, err
	}
	return s.checkbookRepo.ListCheckbooksByBankAccount(ctx, bankAccountID)
}
