package accounting

import (
	"fmt"
	"sort"

	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the correct sign to a ledger amount based on
// the transaction type. This is used in both services and repositories to keep
// the balance arithmetic consistent.
// DEPOSIT -> Positive (+)
// WITHDRAWAL -> Negative (-)
// BOUNCED -> Negative (-), a deposited item returned unpaid
func CalculateSignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.Type {
	case domain.Deposit:
		return txn.Amount, nil
	case domain.Withdrawal, domain.Bounced:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type '%s' for transaction ID %s", txn.Type, txn.TransactionID)
	}
}

// SortLedger orders transactions into their canonical passbook order:
// (transaction_date, created_at, transaction_id) ascending. CreatedAt is set
// server-side and provides the insertion-order tiebreak for same-day rows.
func SortLedger(txns []domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].TransactionDate.Equal(txns[j].TransactionDate) {
			return txns[i].TransactionDate.Before(txns[j].TransactionDate)
		}
		if !txns[i].CreatedAt.Equal(txns[j].CreatedAt) {
			return txns[i].CreatedAt.Before(txns[j].CreatedAt)
		}
		return txns[i].TransactionID < txns[j].TransactionID
	})
}

// RecomputeRunningBalances recalculates the RunningBalance snapshot for every
// transaction in the slice, chaining forward from openingBalance. The slice is
// sorted into canonical order first. It returns the balance after the final
// row, which is the account's authoritative current balance when the slice
// covers the whole ledger.
func RecomputeRunningBalances(openingBalance decimal.Decimal, txns []domain.Transaction) (decimal.Decimal, error) {
	SortLedger(txns)
	running := openingBalance
	for i := range txns {
		signed, err := CalculateSignedAmount(txns[i])
		if err != nil {
			return decimal.Zero, err
		}
		running = running.Add(signed)
		txns[i].RunningBalance = running
	}
	return running, nil
}
