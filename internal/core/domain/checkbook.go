package domain

// CheckbookStatus indicates the state of a checkbook series.
type CheckbookStatus string

const (
	CheckbookActive    CheckbookStatus = "ACTIVE"
	CheckbookExhausted CheckbookStatus = "EXHAUSTED"
	CheckbookClosed    CheckbookStatus = "CLOSED"
)

// Checkbook is a contiguous range of check numbers assigned to a bank account,
// consumed sequentially. At most one checkbook per bank account is ACTIVE at a
// time; NextCheckNo only ever increases, and once it passes SeriesEnd the book
// becomes EXHAUSTED.
type Checkbook struct {
	CheckbookID   string          `json:"checkbookID"` // Primary Key (UUID)
	BankAccountID string          `json:"bankAccountID"`
	SeriesStart   int64           `json:"seriesStart"` // Inclusive
	SeriesEnd     int64           `json:"seriesEnd"`   // Inclusive; >= SeriesStart
	NextCheckNo   int64           `json:"nextCheckNo"` // Monotonic cursor within the range
	Status        CheckbookStatus `json:"status"`
	AuditFields
}

// Remaining returns how many numbers are left in the series.
func (cb Checkbook) Remaining() int64 {
	if cb.NextCheckNo > cb.SeriesEnd {
		return 0
	}
	return cb.SeriesEnd - cb.NextCheckNo + 1
}
