package services

import (
	"context"

	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/ledgerworks/voucher_disbursement_app/internal/dto"
)

// VoucherSvcFacade defines voucher workflow business operations.
type VoucherSvcFacade interface {
	// CreateVoucher opens a voucher in PENDING_LIAISON with a fresh
	// company-scoped voucher number.
	CreateVoucher(ctx context.Context, actor domain.Actor, req dto.CreateVoucherRequest) (*domain.Voucher, error)

	// SubmitVoucher attaches bank/check details and forwards the voucher for
	// admin approval. Liaison or admin.
	SubmitVoucher(ctx context.Context, actor domain.Actor, voucherID string, req dto.SubmitVoucherRequest) (*domain.Voucher, error)

	// ApproveVoucher issues the voucher: draws the next check number from the
	// bank account's active checkbook and spawns the ISSUED check. Admin only.
	ApproveVoucher(ctx context.Context, actor domain.Actor, voucherID string) (*domain.Voucher, *domain.Check, error)

	// CancelVoucher abandons a voucher that has not yet been issued.
	CancelVoucher(ctx context.Context, actor domain.Actor, voucherID string) (*domain.Voucher, error)

	// RequestVoid asks for an issued voucher to be voided, with a mandatory
	// reason. Liaison or admin.
	RequestVoid(ctx context.Context, actor domain.Actor, voucherID string, req dto.VoidVoucherRequest) (*domain.Voucher, error)

	// ApproveVoid voids the voucher and its linked check. Admin only.
	ApproveVoid(ctx context.Context, actor domain.Actor, voucherID string) (*domain.Voucher, error)

	// RejectVoid returns a void-pending voucher to ISSUED. Admin only.
	RejectVoid(ctx context.Context, actor domain.Actor, voucherID string) (*domain.Voucher, error)

	// GetVoucher retrieves a voucher by its unique identifier.
	GetVoucher(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// ListVouchers retrieves a paginated list of a company's vouchers.
	ListVouchers(ctx context.Context, params dto.ListVouchersParams) ([]domain.Voucher, error)

	// GetVoucherHistory retrieves the append-only transition log of a voucher.
	GetVoucherHistory(ctx context.Context, voucherID string) ([]domain.AuditEntry, error)
}
