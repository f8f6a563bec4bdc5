package domain_test

import (
	"testing"

	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCheckStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		from domain.CheckStatus
		to   domain.CheckStatus
		want bool
	}{
		{"issued can be claimed", domain.CheckIssued, domain.CheckClaimed, true},
		{"issued can be voided", domain.CheckIssued, domain.CheckVoided, true},
		{"issued cannot clear without claim", domain.CheckIssued, domain.CheckCleared, false},
		{"issued cannot bounce", domain.CheckIssued, domain.CheckBounced, false},
		{"claimed can clear", domain.CheckClaimed, domain.CheckCleared, true},
		{"claimed can bounce", domain.CheckClaimed, domain.CheckBounced, true},
		{"claimed cannot be voided", domain.CheckClaimed, domain.CheckVoided, false},
		{"cleared is terminal", domain.CheckCleared, domain.CheckBounced, false},
		{"bounced is terminal", domain.CheckBounced, domain.CheckClaimed, false},
		{"voided is terminal", domain.CheckVoided, domain.CheckIssued, false},
		{"cancelled is terminal", domain.CheckCancelled, domain.CheckIssued, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestCheckStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.CheckIssued.IsTerminal())
	assert.False(t, domain.CheckClaimed.IsTerminal())
	assert.True(t, domain.CheckCleared.IsTerminal())
	assert.True(t, domain.CheckBounced.IsTerminal())
	assert.True(t, domain.CheckCancelled.IsTerminal())
	assert.True(t, domain.CheckVoided.IsTerminal())
}

func TestCheckbook_Remaining(t *testing.T) {
	cb := domain.Checkbook{SeriesStart: 1001, SeriesEnd: 1003, NextCheckNo: 1001}
	assert.Equal(t, int64(3), cb.Remaining())

	cb.NextCheckNo = 1003
	assert.Equal(t, int64(1), cb.Remaining())

	cb.NextCheckNo = 1004
	assert.Equal(t, int64(0), cb.Remaining())
}

func TestCheck_Outstanding(t *testing.T) {
	assert.True(t, domain.Check{Status: domain.CheckIssued}.Outstanding())
	assert.True(t, domain.Check{Status: domain.CheckClaimed}.Outstanding())
	assert.False(t, domain.Check{Status: domain.CheckCleared}.Outstanding())
	assert.False(t, domain.Check{Status: domain.CheckVoided}.Outstanding())
}
