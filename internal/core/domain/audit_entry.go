package domain

import "time"

// AuditEntityType names the kind of entity an audit entry refers to.
type AuditEntityType string

const (
	AuditEntityVoucher AuditEntityType = "VOUCHER"
	AuditEntityCheck   AuditEntityType = "CHECK"
)

// AuditEntry records a single status transition. Entries are append-only and
// never mutated.
type AuditEntry struct {
	AuditEntryID string          `json:"auditEntryID"` // Primary Key (UUID)
	EntityType   AuditEntityType `json:"entityType"`
	EntityID     string          `json:"entityID"`
	ActorID      string          `json:"actorID"`
	ActorRole    Role            `json:"actorRole"`
	FromStatus   string          `json:"fromStatus"`
	ToStatus     string          `json:"toStatus"`
	Reason       string          `json:"reason,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}
