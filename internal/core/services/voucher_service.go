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
	defaultVoucherPageSize = 50
	maxVoucherPageSize     = 100
)

// voucherService drives the voucher approval workflow.
type voucherService struct {
	voucherRepo portsrepo.VoucherRepositoryFacade
	checkRepo   portsrepo.CheckRepositoryFacade
	accountRepo portsrepo.BankAccountRepositoryFacade
	auditRepo   portsrepo.AuditRepositoryFacade
}

// NewVoucherService creates a new VoucherService.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryFacade, checkRepo portsrepo.CheckRepositoryFacade, accountRepo portsrepo.BankAccountRepositoryFacade, auditRepo portsrepo.AuditRepositoryFacade) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo: voucherRepo,
		checkRepo:   checkRepo,
		accountRepo: accountRepo,
		auditRepo:   auditRepo,
	}
}

// Ensure voucherService implements the portssvc.VoucherSvcFacade interface
var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// CreateVoucher opens a voucher in PENDING_LIAISON with a fresh company-scoped
// number.
func (s *voucherService) CreateVoucher(ctx context.Context, actor domain.Actor, req dto.CreateVoucherRequest) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	voucher := domain.Voucher{
		VoucherID:   uuid.NewString(),
		CompanyID:   req.CompanyID,
		Status:      domain.VoucherPendingLiaison,
		Amount:      req.Amount,
		Payee:       req.Payee,
		Category:    req.Category,
		PaymentType: domain.PaymentType(req.PaymentType),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	saved, err := s.voucherRepo.SaveVoucher(ctx, voucher)
	if err != nil {
		logger.Error("Failed to save voucher", slog.String("company_id", req.CompanyID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Voucher created", slog.String("voucher_id", saved.VoucherID), slog.String("voucher_no", saved.VoucherNo))
	return saved, nil
}

// SubmitVoucher attaches bank/check details and forwards the voucher for admin
// approval.
func (s *voucherService) SubmitVoucher(ctx context.Context, actor domain.Actor, voucherID string, req dto.SubmitVoucherRequest) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleLiaison && actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only liaisons or admins can submit vouchers", apperrors.ErrForbidden)
	}

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	if voucher.Status != domain.VoucherPendingLiaison {
		return nil, fmt.Errorf("%w: voucher cannot move from %s to %s", apperrors.ErrInvalidTransition, voucher.Status, domain.VoucherPendingAdmin)
	}

	var bankAccountID *string
	if req.BankAccountID != "" {
		if _, err := s.accountRepo.FindBankAccountByID(ctx, req.BankAccountID); err != nil {
			return nil, err
		}
		bankAccountID = &req.BankAccountID
	} else if voucher.PaymentType == domain.PaymentCheck {
		return nil, fmt.Errorf("%w: a bank account is required for check vouchers", apperrors.ErrValidation)
	}

	var checkDate *time.Time
	if req.CheckDate != nil {
		parsed, err := dto.ParseDate(*req.CheckDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid check date", apperrors.ErrValidation)
		}
		checkDate = &parsed
	}

	now := time.Now().UTC()
	entry := newAuditEntry(domain.AuditEntityVoucher, voucherID, actor, string(domain.VoucherPendingLiaison), string(domain.VoucherPendingAdmin), "", now)
	if err := s.voucherRepo.SubmitVoucher(ctx, voucherID, bankAccountID, checkDate, entry, actor.UserID, now); err != nil {
		return nil, err
	}

	logger.Info("Voucher submitted", slog.String("voucher_id", voucherID), slog.String("bank_account_id", req.BankAccountID))
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

// ApproveVoucher issues the voucher. For a check voucher the check number is
// drawn from the account's active checkbook and the ISSUED check is spawned
// in the same transaction; no ledger row is posted until the check clears. A
// cash voucher moves straight to ISSUED without touching a checkbook, and the
// returned check is nil.
func (s *voucherService) ApproveVoucher(ctx context.Context, actor domain.Actor, voucherID string) (*domain.Voucher, *domain.Check, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleAdmin {
		return nil, nil, fmt.Errorf("%w: only admins can approve vouchers", apperrors.ErrForbidden)
	}

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, nil, err
	}
	if voucher.Status != domain.VoucherPendingAdmin {
		return nil, nil, fmt.Errorf("%w: voucher cannot move from %s to %s", apperrors.ErrInvalidTransition, voucher.Status, domain.VoucherIssued)
	}

	now := time.Now().UTC()
	if voucher.PaymentType == domain.PaymentCash {
		entry := newAuditEntry(domain.AuditEntityVoucher, voucherID, actor, string(domain.VoucherPendingAdmin), string(domain.VoucherIssued), "", now)
		if err := s.voucherRepo.UpdateVoucherStatus(ctx, voucherID, domain.VoucherPendingAdmin, domain.VoucherIssued, "", entry, actor.UserID, now); err != nil {
			logger.Error("Failed to approve voucher", slog.String("voucher_id", voucherID), slog.String("error", err.Error()))
			return nil, nil, err
		}
		logger.Info("Voucher approved", slog.String("voucher_id", voucherID), slog.String("payment_type", string(domain.PaymentCash)))
		updated, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
		if err != nil {
			return nil, nil, err
		}
		return updated, nil, nil
	}

	if voucher.BankAccountID == nil {
		return nil, nil, fmt.Errorf("%w: voucher has no bank account attached", apperrors.ErrValidation)
	}
	template := domain.Check{
		CheckID:       uuid.NewString(),
		BankAccountID: *voucher.BankAccountID,
		VoucherID:     voucher.VoucherID,
		Payee:         voucher.Payee,
		Amount:        voucher.Amount,
		DateIssued:    now,
		CheckDate:     voucher.CheckDate,
		Status:        domain.CheckIssued,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	entry := newAuditEntry(domain.AuditEntityVoucher, voucherID, actor, string(domain.VoucherPendingAdmin), string(domain.VoucherIssued), "", now)
	check, err := s.voucherRepo.ApproveVoucher(ctx, *voucher, template, entry)
	if err != nil {
		logger.Error("Failed to approve voucher", slog.String("voucher_id", voucherID), slog.String("error", err.Error()))
		return nil, nil, err
	}

	logger.Info("Voucher approved",
		slog.String("voucher_id", voucherID),
		slog.String("check_id", check.CheckID),
		slog.Int64("check_number", check.CheckNumber),
	)
	updated, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, nil, err
	}
	return updated, check, nil
}

// CancelVoucher abandons a voucher that has not yet been issued. Only the
// creator or an admin can cancel, and only from PENDING_LIAISON.
func (s *voucherService) CancelVoucher(ctx context.Context, actor domain.Actor, voucherID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	if voucher.CreatedBy != actor.UserID && actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only the creator or an admin can cancel a voucher", apperrors.ErrForbidden)
	}
	if voucher.Status != domain.VoucherPendingLiaison {
		return nil, fmt.Errorf("%w: voucher cannot move from %s to %s", apperrors.ErrInvalidTransition, voucher.Status, domain.VoucherCancelled)
	}

	now := time.Now().UTC()
	entry := newAuditEntry(domain.AuditEntityVoucher, voucherID, actor, string(voucher.Status), string(domain.VoucherCancelled), "", now)
	if err := s.voucherRepo.UpdateVoucherStatus(ctx, voucherID, voucher.Status, domain.VoucherCancelled, "", entry, actor.UserID, now); err != nil {
		return nil, err
	}

	logger.Info("Voucher cancelled", slog.String("voucher_id", voucherID))
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

// RequestVoid asks for an issued voucher to be voided. The linked check must
// still be ISSUED; once claimed, the bounce path is the only way out.
func (s *voucherService) RequestVoid(ctx context.Context, actor domain.Actor, voucherID string, req dto.VoidVoucherRequest) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleLiaison && actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only liaisons or admins can request a void", apperrors.ErrForbidden)
	}

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	if voucher.Status != domain.VoucherIssued {
		return nil, fmt.Errorf("%w: voucher cannot move from %s to %s", apperrors.ErrInvalidTransition, voucher.Status, domain.VoucherVoidPendingApproval)
	}

	if voucher.PaymentType == domain.PaymentCheck {
		check, err := s.checkRepo.FindCheckByVoucherID(ctx, voucherID)
		if err != nil {
			return nil, err
		}
		if check.Status != domain.CheckIssued {
			return nil, fmt.Errorf("%w: check %d is already %s and cannot be voided", apperrors.ErrInvalidTransition, check.CheckNumber, check.Status)
		}
	}

	now := time.Now().UTC()
	entry := newAuditEntry(domain.AuditEntityVoucher, voucherID, actor, string(domain.VoucherIssued), string(domain.VoucherVoidPendingApproval), req.Reason, now)
	if err := s.voucherRepo.UpdateVoucherStatus(ctx, voucherID, domain.VoucherIssued, domain.VoucherVoidPendingApproval, req.Reason, entry, actor.UserID, now); err != nil {
		return nil, err
	}

	logger.Info("Voucher void requested", slog.String("voucher_id", voucherID))
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

// ApproveVoid voids the voucher and its linked check atomically. The check
// never cleared, so balances are untouched.
func (s *voucherService) ApproveVoid(ctx context.Context, actor domain.Actor, voucherID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can approve a void", apperrors.ErrForbidden)
	}

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	if voucher.Status != domain.VoucherVoidPendingApproval {
		return nil, fmt.Errorf("%w: voucher cannot move from %s to %s", apperrors.ErrInvalidTransition, voucher.Status, domain.VoucherVoided)
	}

	now := time.Now().UTC()
	voucherEntry := newAuditEntry(domain.AuditEntityVoucher, voucherID, actor, string(domain.VoucherVoidPendingApproval), string(domain.VoucherVoided), voucher.VoidReason, now)

	if voucher.PaymentType == domain.PaymentCash {
		if err := s.voucherRepo.UpdateVoucherStatus(ctx, voucherID, domain.VoucherVoidPendingApproval, domain.VoucherVoided, "", voucherEntry, actor.UserID, now); err != nil {
			return nil, err
		}
		logger.Info("Voucher voided", slog.String("voucher_id", voucherID))
		return s.voucherRepo.FindVoucherByID(ctx, voucherID)
	}

	check, err := s.checkRepo.FindCheckByVoucherID(ctx, voucherID)
	if err != nil {
		return nil, err
	}

	checkEntry := newAuditEntry(domain.AuditEntityCheck, check.CheckID, actor, string(check.Status), string(domain.CheckVoided), voucher.VoidReason, now)
	if err := s.voucherRepo.VoidVoucherAndCheck(ctx, voucherID, check.CheckID, voucherEntry, checkEntry, actor.UserID, now); err != nil {
		return nil, err
	}

	logger.Info("Voucher voided", slog.String("voucher_id", voucherID), slog.String("check_id", check.CheckID))
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

// RejectVoid returns a void-pending voucher to ISSUED. Balances are untouched.
func (s *voucherService) RejectVoid(ctx context.Context, actor domain.Actor, voucherID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can reject a void", apperrors.ErrForbidden)
	}

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	if voucher.Status != domain.VoucherVoidPendingApproval {
		return nil, fmt.Errorf("%w: voucher cannot move from %s to %s", apperrors.ErrInvalidTransition, voucher.Status, domain.VoucherIssued)
	}

	now := time.Now().UTC()
	entry := newAuditEntry(domain.AuditEntityVoucher, voucherID, actor, string(domain.VoucherVoidPendingApproval), string(domain.VoucherIssued), "", now)
	if err := s.voucherRepo.UpdateVoucherStatus(ctx, voucherID, domain.VoucherVoidPendingApproval, domain.VoucherIssued, "", entry, actor.UserID, now); err != nil {
		return nil, err
	}

	logger.Info("Voucher void rejected", slog.String("voucher_id", voucherID))
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

// GetVoucher retrieves a voucher by its ID.
func (s *voucherService) GetVoucher(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

// ListVouchers retrieves a paginated list of a company's vouchers.
func (s *voucherService) ListVouchers(ctx context.Context, params dto.ListVouchersParams) ([]domain.Voucher, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultVoucherPageSize
	}
	if limit > maxVoucherPageSize {
		limit = maxVoucherPageSize
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	return s.voucherRepo.ListVouchersByCompany(ctx, params.CompanyID, limit, offset)
}

// GetVoucherHistory retrieves the append-only transition log of a voucher.
func (s *voucherService) GetVoucherHistory(ctx context.Context, voucherID string) ([]domain.AuditEntry, error) {
	if _, err := s.voucherRepo.FindVoucherByID(ctx, voucherID); err != nil {
		return nil, err
	}
	return s.auditRepo.ListAuditEntries(ctx, domain.AuditEntityVoucher, voucherID)
}
