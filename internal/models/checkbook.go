package models

// CheckbookStatus is the persisted state of a checkbook series.
type CheckbookStatus string

const (
	CheckbookActive    CheckbookStatus = "ACTIVE"
	CheckbookExhausted CheckbookStatus = "EXHAUSTED"
	CheckbookClosed    CheckbookStatus = "CLOSED"
)

// Checkbook is the persistence shape of a checkbook series row.
type Checkbook struct {
	CheckbookID   string          `db:"checkbook_id"`
	BankAccountID string          `db:"bank_account_id"`
	SeriesStart   int64           `db:"series_start"`
	SeriesEnd     int64           `db:"series_end"`
	NextCheckNo   int64           `db:"next_check_no"`
	Status        CheckbookStatus `db:"status"`
	AuditFields
}
