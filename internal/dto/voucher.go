package dto

import (
	"time"

	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVoucherRequest defines the data a staff user supplies when opening a
// payment voucher. Company and category come from the external CRUD surfaces.
type CreateVoucherRequest struct {
	CompanyID   string          `json:"companyID" binding:"required"`
	Payee       string          `json:"payee" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	PaymentType string          `json:"paymentType" binding:"required,oneof=CASH CHECK"`
}

// SubmitVoucherRequest defines the bank/check details a liaison attaches
// before forwarding the voucher for admin approval. A bank account is
// mandatory for CHECK vouchers and optional for CASH ones. CheckDate marks
// the check as post-dated when set; the concrete check number is drawn from
// the active checkbook at approval time.
type SubmitVoucherRequest struct {
	BankAccountID string  `json:"bankAccountID" binding:"omitempty"`
	CheckDate     *string `json:"checkDate" binding:"omitempty,datetime=2006-01-02"`
}

// VoidVoucherRequest defines a liaison's void request. A reason is mandatory.
type VoidVoucherRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID     string          `json:"voucherID"`
	VoucherNo     string          `json:"voucherNo"`
	CompanyID     string          `json:"companyID"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	Payee         string          `json:"payee"`
	Category      string          `json:"category"`
	PaymentType   string          `json:"paymentType"`
	BankAccountID *string         `json:"bankAccountID,omitempty"`
	CheckNo       *int64          `json:"checkNo,omitempty"`
	CheckDate     *string         `json:"checkDate,omitempty"`
	VoidReason    string          `json:"voidReason,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ListVouchersParams holds query parameters for listing vouchers.
type ListVouchersParams struct {
	CompanyID string `form:"companyID" binding:"required"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

// ToVoucherResponse converts a domain.Voucher to a VoucherResponse DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	resp := VoucherResponse{
		VoucherID:     v.VoucherID,
		VoucherNo:     v.VoucherNo,
		CompanyID:     v.CompanyID,
		Status:        string(v.Status),
		Amount:        v.Amount,
		Payee:         v.Payee,
		Category:      v.Category,
		PaymentType:   string(v.PaymentType),
		BankAccountID: v.BankAccountID,
		CheckNo:       v.CheckNo,
		VoidReason:    v.VoidReason,
		CreatedAt:     v.CreatedAt,
		CreatedBy:     v.CreatedBy,
	}
	if v.CheckDate != nil {
		checkDate := FormatDate(*v.CheckDate)
		resp.CheckDate = &checkDate
	}
	return resp
}

// ToVoucherResponses converts a slice of domain.Voucher to DTOs.
func ToVoucherResponses(vouchers []domain.Voucher) []VoucherResponse {
	responses := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		responses[i] = ToVoucherResponse(&vouchers[i])
	}
	return responses
}
