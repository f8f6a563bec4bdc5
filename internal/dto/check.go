package dto

import (
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateCheckStatusRequest defines a check status transition. Date is required
// for CLEARED (the clear date); ReceivedBy is required for CLAIMED.
type UpdateCheckStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=CLAIMED CLEARED BOUNCED"`
	Date       *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ReceivedBy *string `json:"receivedBy"`
}

// UpdateCheckRequest defines the admin-only issue date edit.
type UpdateCheckRequest struct {
	DateIssued string `json:"dateIssued" binding:"required,datetime=2006-01-02"`
}

// CheckResponse defines the data returned for a check.
type CheckResponse struct {
	CheckID       string          `json:"checkID"`
	BankAccountID string          `json:"bankAccountID"`
	CheckbookID   string          `json:"checkbookID"`
	VoucherID     string          `json:"voucherID"`
	CheckNumber   int64           `json:"checkNumber"`
	Payee         string          `json:"payee"`
	Amount        decimal.Decimal `json:"amount"`
	DateIssued    string          `json:"dateIssued"`
	CheckDate     *string         `json:"checkDate,omitempty"`
	PostDated     bool            `json:"postDated"`
	Status        string          `json:"status"`
	ReceivedBy    string          `json:"receivedBy,omitempty"`
}

// ToCheckResponse converts a domain.Check to a CheckResponse DTO.
func ToCheckResponse(c *domain.Check) CheckResponse {
	resp := CheckResponse{
		CheckID:       c.CheckID,
		BankAccountID: c.BankAccountID,
		CheckbookID:   c.CheckbookID,
		VoucherID:     c.VoucherID,
		CheckNumber:   c.CheckNumber,
		Payee:         c.Payee,
		Amount:        c.Amount,
		DateIssued:    FormatDate(c.DateIssued),
		PostDated:     c.IsPostDated(),
		Status:        string(c.Status),
		ReceivedBy:    c.ReceivedBy,
	}
	if c.CheckDate != nil {
		checkDate := FormatDate(*c.CheckDate)
		resp.CheckDate = &checkDate
	}
	return resp
}

// ToCheckResponses converts a slice of domain.Check to DTOs.
func ToCheckResponses(checks []domain.Check) []CheckResponse {
	responses := make([]CheckResponse, len(checks))
	for i := range checks {
		responses[i] = ToCheckResponse(&checks[i])
	}
	return responses
}
