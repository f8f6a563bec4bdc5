package domain

// Role identifies the acting user's role for gated transitions.
type Role string

const (
	RoleStaff   Role = "STAFF"
	RoleLiaison Role = "LIAISON"
	RoleAdmin   Role = "ADMIN"
)

// Actor is the authenticated caller of an operation, as extracted from the
// request token. Services enforce role gates against it.
type Actor struct {
	UserID string
	Role   Role
}
