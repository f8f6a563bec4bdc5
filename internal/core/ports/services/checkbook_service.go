package services

import (
	"context"

	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/ledgerworks/voucher_disbursement_app/internal/dto"
)

// CheckbookSvcFacade defines checkbook series business operations.
type CheckbookSvcFacade interface {
	// AllocateCheckbook registers a new ACTIVE series against a bank account.
	// Fails if the account already has an ACTIVE checkbook or the range
	// overlaps an existing non-CLOSED series. Admin only.
	AllocateCheckbook(ctx context.Context, actor domain.Actor, bankAccountID string, req dto.AllocateCheckbookRequest) (*domain.Checkbook, error)

	// PeekNextCheckNumber reports the number the active checkbook would issue
	// next, without consuming it.
	PeekNextCheckNumber(ctx context.Context, bankAccountID string) (int64, error)

	// CloseCheckbook retires a checkbook early. Unissued numbers in its range
	// are abandoned permanently. Admin only.
	CloseCheckbook(ctx context.Context, actor domain.Actor, checkbookID string) error

	// ListCheckbooks retrieves all checkbooks of a bank account.
	ListCheckbooks(ctx context.Context, bankAccountID string) ([]domain.Checkbook, error)
}
