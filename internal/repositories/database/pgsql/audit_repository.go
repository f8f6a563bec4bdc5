package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	portsrepo "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/repositories"
	"github.com/ledgerworks/voucher_disbursement_app/internal/models"
)

type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for the transition log.
func newPgxAuditRepository(pool *pgxpool.Pool) *PgxAuditRepository {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAuditRepository implements the facade
var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

func toModelAuditEntry(d domain.AuditEntry) models.AuditEntry {
	return models.AuditEntry{
		AuditEntryID: d.AuditEntryID,
		EntityType:   string(d.EntityType),
		EntityID:     d.EntityID,
		ActorID:      d.ActorID,
		ActorRole:    string(d.ActorRole),
		FromStatus:   d.FromStatus,
		ToStatus:     d.ToStatus,
		Reason:       d.Reason,
		CreatedAt:    d.CreatedAt,
	}
}

func toDomainAuditEntry(m models.AuditEntry) domain.AuditEntry {
	return domain.AuditEntry{
		AuditEntryID: m.AuditEntryID,
		EntityType:   domain.AuditEntityType(m.EntityType),
		EntityID:     m.EntityID,
		ActorID:      m.ActorID,
		ActorRole:    domain.Role(m.ActorRole),
		FromStatus:   m.FromStatus,
		ToStatus:     m.ToStatus,
		Reason:       m.Reason,
		CreatedAt:    m.CreatedAt,
	}
}

// SaveAuditEntryInTx appends an audit entry within an existing transaction.
func (r *PgxAuditRepository) SaveAuditEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditEntry) error {
	m := toModelAuditEntry(entry)

	query := `
		INSERT INTO audit_entries (audit_entry_id, entity_type, entity_id, actor_id, actor_role, from_status, to_status, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		m.AuditEntryID,
		m.EntityType,
		m.EntityID,
		m.ActorID,
		m.ActorRole,
		m.FromStatus,
		m.ToStatus,
		m.Reason,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit entry for %s %s: %w", m.EntityType, m.EntityID, err)
	}
	return nil
}

// ListAuditEntries retrieves the transition history of an entity, oldest first.
func (r *PgxAuditRepository) ListAuditEntries(ctx context.Context, entityType domain.AuditEntityType, entityID string) ([]domain.AuditEntry, error) {
	query := `
		SELECT audit_entry_id, entity_type, entity_id, actor_id, actor_role, from_status, to_status, reason, created_at
		FROM audit_entries
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, string(entityType), entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries for %s %s: %w", entityType, entityID, err)
	}
	defer rows.Close()

	entries := make([]domain.AuditEntry, 0)
	for rows.Next() {
		var m models.AuditEntry
		err := rows.Scan(
			&m.AuditEntryID,
			&m.EntityType,
			&m.EntityID,
			&m.ActorID,
			&m.ActorRole,
			&m.FromStatus,
			&m.ToStatus,
			&m.Reason,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry row: %w", err)
		}
		entries = append(entries, toDomainAuditEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit entry rows: %w", err)
	}
	return entries, nil
}
