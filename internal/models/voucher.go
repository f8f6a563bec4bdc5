package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus is the persisted state of a payment voucher.
type VoucherStatus string

const (
	VoucherPendingLiaison      VoucherStatus = "PENDING_LIAISON"
	VoucherPendingAdmin        VoucherStatus = "PENDING_ADMIN"
	VoucherIssued              VoucherStatus = "ISSUED"
	VoucherVoidPendingApproval VoucherStatus = "VOID_PENDING_APPROVAL"
	VoucherVoided              VoucherStatus = "VOIDED"
	VoucherCancelled           VoucherStatus = "CANCELLED"
	VoucherBounced             VoucherStatus = "BOUNCED"
)

// Voucher is the persistence shape of a payment voucher row.
type Voucher struct {
	VoucherID     string          `db:"voucher_id"`
	VoucherNo     string          `db:"voucher_no"`
	CompanyID     string          `db:"company_id"`
	Status        VoucherStatus   `db:"status"`
	Amount        decimal.Decimal `db:"amount"`
	Payee         string          `db:"payee"`
	Category      string          `db:"category"`
	PaymentType   string          `db:"payment_type"`
	BankAccountID *string         `db:"bank_account_id"`
	CheckNo       *int64          `db:"check_no"`
	CheckDate     *time.Time      `db:"check_date"`
	VoidReason    string          `db:"void_reason"`
	AuditFields
}
