package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
)

// CheckbookReader defines read operations for checkbook series data
type CheckbookReader interface {
	// FindCheckbookByID retrieves a specific checkbook by its unique identifier.
	FindCheckbookByID(ctx context.Context, checkbookID string) (*domain.Checkbook, error)

	// FindActiveCheckbook retrieves the single ACTIVE checkbook of a bank
	// account, or apperrors.ErrNoActiveCheckbook when none is active.
	FindActiveCheckbook(ctx context.Context, bankAccountID string) (*domain.Checkbook, error)

	// ListCheckbooksByBankAccount retrieves all checkbooks of a bank account.
	ListCheckbooksByBankAccount(ctx context.Context, bankAccountID string) ([]domain.Checkbook, error)

	// HasOverlappingSeries reports whether the given number range overlaps any
	// non-CLOSED checkbook of the bank account.
	HasOverlappingSeries(ctx context.Context, bankAccountID string, seriesStart, seriesEnd int64) (bool, error)
}

// CheckbookWriter defines write operations for checkbook series data
type CheckbookWriter interface {
	// SaveCheckbook persists a new checkbook series.
	SaveCheckbook(ctx context.Context, checkbook domain.Checkbook) error

	// CloseCheckbook marks a checkbook CLOSED so it can never issue again.
	CloseCheckbook(ctx context.Context, checkbookID string, userID string, now time.Time) error
}

// CheckbookAllocator defines the atomic cursor operations. The increment and
// read are a single conditional UPDATE, never read-then-write, so two
// concurrent issuances can never receive the same number.
type CheckbookAllocator interface {
	// NextCheckNumber atomically consumes and returns the next number of the
	// bank account's active checkbook. Returns apperrors.ErrNoActiveCheckbook
	// or apperrors.ErrSeriesExhausted.
	NextCheckNumber(ctx context.Context, bankAccountID string, userID string, now time.Time) (int64, error)

	// NextCheckNumberInTx is NextCheckNumber inside an existing transaction;
	// it also returns the owning checkbook's ID.
	NextCheckNumberInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, userID string, now time.Time) (string, int64, error)
}

// CheckbookRepositoryFacade combines all checkbook repository interfaces.
type CheckbookRepositoryFacade interface {
	CheckbookReader
	CheckbookWriter
	CheckbookAllocator
}
