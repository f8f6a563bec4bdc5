package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CheckReader defines read operations for check data
type CheckReader interface {
	// FindCheckByID retrieves a specific check by its unique identifier.
	FindCheckByID(ctx context.Context, checkID string) (*domain.Check, error)

	// FindCheckByVoucherID retrieves the check spawned by a voucher, if any.
	FindCheckByVoucherID(ctx context.Context, voucherID string) (*domain.Check, error)

	// ListChecksByBankAccount retrieves all checks drawn against a bank account.
	ListChecksByBankAccount(ctx context.Context, bankAccountID string) ([]domain.Check, error)

	// SumOutstanding computes the unclaimed balance of a bank account: the
	// total face value of its ISSUED and CLAIMED checks. Always computed on
	// read, never cached.
	SumOutstanding(ctx context.Context, bankAccountID string) (decimal.Decimal, error)
}

// CheckWriter defines the status-transition write operations. All status
// updates are conditional on the expected prior status and report a lost race
// as apperrors.ErrConflict.
type CheckWriter interface {
	// SaveCheckInTx inserts a new ISSUED check within an existing transaction.
	SaveCheckInTx(ctx context.Context, tx pgx.Tx, check domain.Check) error

	// ClaimCheck moves an ISSUED check to CLAIMED and records who received it.
	ClaimCheck(ctx context.Context, checkID string, receivedBy string, entry domain.AuditEntry, userID string, now time.Time) error

	// ClearCheck moves a CLAIMED check to CLEARED and posts the withdrawal
	// ledger row (with forward recompute) in the same transaction.
	ClearCheck(ctx context.Context, check domain.Check, ledgerTxn domain.Transaction, entry domain.AuditEntry) error

	// BounceCheck moves a CLAIMED check to BOUNCED and the owning voucher to
	// BOUNCED. No ledger row is touched: no cash moved for an uncleared check.
	BounceCheck(ctx context.Context, check domain.Check, entry domain.AuditEntry, userID string, now time.Time) error

	// VoidCheckInTx moves a check to VOIDED within an existing transaction
	// (driven by the voucher void approval).
	VoidCheckInTx(ctx context.Context, tx pgx.Tx, checkID string, userID string, now time.Time) error

	// UpdateIssueDate edits date_issued. For CLEARED checks the linked ledger
	// row's date follows through the cascading recompute in one transaction.
	UpdateIssueDate(ctx context.Context, check domain.Check, newDate time.Time, userID string, now time.Time) error
}

// CheckRepositoryFacade combines all check repository interfaces.
type CheckRepositoryFacade interface {
	CheckReader
	CheckWriter
}
