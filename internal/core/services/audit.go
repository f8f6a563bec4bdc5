package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
)

// newAuditEntry builds the append-only record for one status transition.
func newAuditEntry(entityType domain.AuditEntityType, entityID string, actor domain.Actor, from, to string, reason string, now time.Time) domain.AuditEntry {
	return domain.AuditEntry{
		AuditEntryID: uuid.NewString(),
		EntityType:   entityType,
		EntityID:     entityID,
		ActorID:      actor.UserID,
		ActorRole:    actor.Role,
		FromStatus:   from,
		ToStatus:     to,
		Reason:       reason,
		CreatedAt:    now,
	}
}
