package services

import (
	"context"

	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/ledgerworks/voucher_disbursement_app/internal/dto"
)

// CheckSvcFacade defines check lifecycle business operations.
type CheckSvcFacade interface {
	// SetCheckStatus drives a check through its lifecycle: CLAIMED (liaison or
	// admin), CLEARED or BOUNCED (admin only). Clearing posts the withdrawal
	// ledger row; bouncing from CLAIMED posts nothing.
	SetCheckStatus(ctx context.Context, actor domain.Actor, checkID string, req dto.UpdateCheckStatusRequest) (*domain.Check, error)

	// UpdateIssueDate edits a check's issue date. On a CLEARED check the
	// linked ledger row moves with it. Admin only.
	UpdateIssueDate(ctx context.Context, actor domain.Actor, checkID string, req dto.UpdateCheckRequest) (*domain.Check, error)

	// GetCheck retrieves a check by its unique identifier.
	GetCheck(ctx context.Context, checkID string) (*domain.Check, error)

	// ListChecksByBankAccount retrieves all checks drawn against a bank account.
	ListChecksByBankAccount(ctx context.Context, bankAccountID string) ([]domain.Check, error)
}
