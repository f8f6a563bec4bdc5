package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckStatus indicates where a check is in its lifecycle.
type CheckStatus string

const (
	CheckIssued    CheckStatus = "ISSUED"
	CheckClaimed   CheckStatus = "CLAIMED"
	CheckCleared   CheckStatus = "CLEARED"
	CheckBounced   CheckStatus = "BOUNCED"
	CheckCancelled CheckStatus = "CANCELLED"
	CheckVoided    CheckStatus = "VOIDED"
)

// checkTransitions holds the legal forward edges of the check status machine.
// CLEARED, BOUNCED, CANCELLED and VOIDED are terminal.
var checkTransitions = map[CheckStatus][]CheckStatus{
	CheckIssued:  {CheckClaimed, CheckVoided},
	CheckClaimed: {CheckCleared, CheckBounced},
}

// CanTransition reports whether a check may move from one status to another.
func (s CheckStatus) CanTransition(to CheckStatus) bool {
	for _, next := range checkTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s CheckStatus) IsTerminal() bool {
	return len(checkTransitions[s]) == 0
}

// Check is a physical check drawn from a checkbook series against a bank
// account. Checks are never physically deleted; terminal statuses keep the
// audit trail intact. VoucherID is a non-owning back-reference to the voucher
// that spawned the check.
type Check struct {
	CheckID       string          `json:"checkID"` // Primary Key (UUID)
	BankAccountID string          `json:"bankAccountID"`
	CheckbookID   string          `json:"checkbookID"` // Owning series
	VoucherID     string          `json:"voucherID"`
	CheckNumber   int64           `json:"checkNumber"` // Unique per bank account
	Payee         string          `json:"payee"`
	Amount        decimal.Decimal `json:"amount"`
	DateIssued    time.Time       `json:"dateIssued"`
	CheckDate     *time.Time      `json:"checkDate,omitempty"` // Set only for post-dated checks
	Status        CheckStatus     `json:"status"`
	ReceivedBy    string          `json:"receivedBy,omitempty"` // Set on CLAIMED
	AuditFields
}

// IsPostDated reports whether the check carries a future-dated check date.
func (c Check) IsPostDated() bool {
	return c.CheckDate != nil
}

// Outstanding reports whether the check still counts toward the bank account's
// unclaimed balance.
func (c Check) Outstanding() bool {
	return c.Status == CheckIssued || c.Status == CheckClaimed
}
