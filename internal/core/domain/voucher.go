package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus indicates where a payment voucher is in the approval chain.
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

// PaymentType is how a voucher is to be paid out.
type PaymentType string

const (
	PaymentCash  PaymentType = "CASH"
	PaymentCheck PaymentType = "CHECK"
)

// Voucher is a staff-created payment request that moves through the
// staff -> liaison -> admin approval chain. VOIDED, CANCELLED and BOUNCED are
// soft-terminal; vouchers are never physically deleted.
type Voucher struct {
	VoucherID     string          `json:"voucherID"` // Primary Key (UUID)
	VoucherNo     string          `json:"voucherNo"` // Company-prefixed sequential, unique
	CompanyID     string          `json:"companyID"`
	Status        VoucherStatus   `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	Payee         string          `json:"payee"`
	Category      string          `json:"category"` // Supplied by the external category CRUD
	PaymentType   PaymentType     `json:"paymentType"`
	BankAccountID *string         `json:"bankAccountID,omitempty"` // Attached by the liaison
	CheckNo       *int64          `json:"checkNo,omitempty"`       // Filled at issuance
	CheckDate     *time.Time      `json:"checkDate,omitempty"`     // Requested post-date, if any
	VoidReason    string          `json:"voidReason,omitempty"`
	AuditFields
}

// Terminal reports whether the voucher can no longer change status.
func (s VoucherStatus) Terminal() bool {
	switch s {
	case VoucherVoided, VoucherCancelled, VoucherBounced:
		return true
	}
	return false
}
