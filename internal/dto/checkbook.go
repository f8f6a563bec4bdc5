package dto

import (
	"time"

	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
)

// AllocateCheckbookRequest defines the data needed to allocate a check-number
// series against a bank account.
type AllocateCheckbookRequest struct {
	SeriesStart int64 `json:"seriesStart" binding:"required,min=1"`
	SeriesEnd   int64 `json:"seriesEnd" binding:"required,min=1"`
}

// CheckbookResponse defines the data returned for a checkbook series.
type CheckbookResponse struct {
	CheckbookID   string    `json:"checkbookID"`
	BankAccountID string    `json:"bankAccountID"`
	SeriesStart   int64     `json:"seriesStart"`
	SeriesEnd     int64     `json:"seriesEnd"`
	NextCheckNo   int64     `json:"nextCheckNo"`
	Remaining     int64     `json:"remaining"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToCheckbookResponse converts a domain.Checkbook to a CheckbookResponse DTO.
func ToCheckbookResponse(cb *domain.Checkbook) CheckbookResponse {
	return CheckbookResponse{
		CheckbookID:   cb.CheckbookID,
		BankAccountID: cb.BankAccountID,
		SeriesStart:   cb.SeriesStart,
		SeriesEnd:     cb.SeriesEnd,
		NextCheckNo:   cb.NextCheckNo,
		Remaining:     cb.Remaining(),
		Status:        string(cb.Status),
		CreatedAt:     cb.CreatedAt,
	}
}

// ToCheckbookResponses converts a slice of domain.Checkbook to DTOs.
func ToCheckbookResponses(cbs []domain.Checkbook) []CheckbookResponse {
	responses := make([]CheckbookResponse, len(cbs))
	for i := range cbs {
		responses[i] = ToCheckbookResponse(&cbs[i])
	}
	return responses
}
