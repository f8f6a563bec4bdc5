package repositories

import (
	"context"
	"time"

	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
)

// VoucherReader defines read operations for voucher data
type VoucherReader interface {
	// FindVoucherByID retrieves a specific voucher by its unique identifier.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// ListVouchersByCompany retrieves a paginated list of a company's vouchers,
	// newest first.
	ListVouchersByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.Voucher, error)
}

// VoucherWriter defines write operations for voucher data. Status updates are
// conditional on the expected prior status and report a lost race as
// apperrors.ErrConflict; each one appends its audit entry in the same
// transaction.
type VoucherWriter interface {
	// SaveVoucher persists a new voucher, assigning its company-prefixed
	// sequential number from an atomic per-company counter. Returns the
	// voucher with VoucherNo set.
	SaveVoucher(ctx context.Context, voucher domain.Voucher) (*domain.Voucher, error)

	// SubmitVoucher attaches bank/check details and moves
	// PENDING_LIAISON -> PENDING_ADMIN. bankAccountID is nil for a cash
	// voucher submitted without one.
	SubmitVoucher(ctx context.Context, voucherID string, bankAccountID *string, checkDate *time.Time, entry domain.AuditEntry, userID string, now time.Time) error

	// ApproveVoucher moves PENDING_ADMIN -> ISSUED, draws the next check
	// number from the bank account's active checkbook, and inserts the ISSUED
	// check, all in one transaction. checkTemplate carries everything but the
	// check number and checkbook ID, which the allocator fills in. Returns the
	// inserted check. Cash vouchers never reach this path; they are issued
	// through UpdateVoucherStatus.
	ApproveVoucher(ctx context.Context, voucher domain.Voucher, checkTemplate domain.Check, entry domain.AuditEntry) (*domain.Check, error)

	// UpdateVoucherStatus performs a plain conditional status move (cancel,
	// void request, void approve/reject). voidReason is stored when non-empty.
	UpdateVoucherStatus(ctx context.Context, voucherID string, from, to domain.VoucherStatus, voidReason string, entry domain.AuditEntry, userID string, now time.Time) error

	// VoidVoucherAndCheck moves the voucher to VOIDED and its linked check to
	// VOIDED in one transaction, appending one audit entry per entity.
	VoidVoucherAndCheck(ctx context.Context, voucherID string, checkID string, voucherEntry, checkEntry domain.AuditEntry, userID string, now time.Time) error
}

// VoucherRepositoryFacade combines all voucher repository interfaces.
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}
