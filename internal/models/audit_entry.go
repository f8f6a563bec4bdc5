package models

import "time"

// AuditEntry is the persistence shape of a status transition record.
// Rows are append-only; there is no update path.
type AuditEntry struct {
	AuditEntryID string    `db:"audit_entry_id"`
	EntityType   string    `db:"entity_type"`
	EntityID     string    `db:"entity_id"`
	ActorID      string    `db:"actor_id"`
	ActorRole    string    `db:"actor_role"`
	FromStatus   string    `db:"from_status"`
	ToStatus     string    `db:"to_status"`
	Reason       string    `db:"reason"`
	CreatedAt    time.Time `db:"created_at"`
}
