package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckStatus is the persisted state of a check.
type CheckStatus string

const (
	CheckIssued    CheckStatus = "ISSUED"
	CheckClaimed   CheckStatus = "CLAIMED"
	CheckCleared   CheckStatus = "CLEARED"
	CheckBounced   CheckStatus = "BOUNCED"
	CheckCancelled CheckStatus = "CANCELLED"
	CheckVoided    CheckStatus = "VOIDED"
)

// Check is the persistence shape of a check row. Rows are never deleted.
type Check struct {
	CheckID       string          `db:"check_id"`
	BankAccountID string          `db:"bank_account_id"`
	CheckbookID   string          `db:"checkbook_id"`
	VoucherID     string          `db:"voucher_id"`
	CheckNumber   int64           `db:"check_number"`
	Payee         string          `db:"payee"`
	Amount        decimal.Decimal `db:"amount"`
	DateIssued    time.Time       `db:"date_issued"`
	CheckDate     *time.Time      `db:"check_date"`
	Status        CheckStatus     `db:"status"`
	ReceivedBy    string          `db:"received_by"`
	AuditFields
}
