package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
)

// AuditRepositoryFacade defines the append-only transition log. Entries are
// written inside the transaction that performs the transition and are never
// updated or deleted.
type AuditRepositoryFacade interface {
	// SaveAuditEntryInTx appends an audit entry within an existing transaction.
	SaveAuditEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditEntry) error

	// ListAuditEntries retrieves the transition history of an entity, oldest first.
	ListAuditEntries(ctx context.Context, entityType domain.AuditEntityType, entityID string) ([]domain.AuditEntry, error)
}
