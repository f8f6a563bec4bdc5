package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerworks/voucher_disbursement_app/internal/apperrors"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	portsrepo "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/repositories"
	"github.com/ledgerworks/voucher_disbursement_app/internal/models"
	"github.com/ledgerworks/voucher_disbursement_app/internal/utils/mapping"
)

type PgxCheckbookRepository struct {
	BaseRepository
}

// newPgxCheckbookRepository creates a new repository for checkbook data.
func newPgxCheckbookRepository(pool *pgxpool.Pool) *PgxCheckbookRepository {
	return &PgxCheckbookRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCheckbookRepository implements the facade
var _ portsrepo.CheckbookRepositoryFacade = (*PgxCheckbookRepository)(nil)

const checkbookColumns = `checkbook_id, bank_account_id, series_start, series_end, next_check_no, status, created_at, created_by, last_updated_at, last_updated_by`

func scanCheckbook(row pgx.Row) (*models.Checkbook, error) {
	var m models.Checkbook
	err := row.Scan(
		&m.CheckbookID,
		&m.BankAccountID,
		&m.SeriesStart,
		&m.SeriesEnd,
		&m.NextCheckNo,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveCheckbook persists a new checkbook series.
func (r *PgxCheckbookRepository) SaveCheckbook(ctx context.Context, checkbook domain.Checkbook) error {
	m := mapping.ToModelCheckbook(checkbook)

	query := `
		INSERT INTO checkbooks (` + checkbookColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CheckbookID,
		m.BankAccountID,
		m.SeriesStart,
		m.SeriesEnd,
		m.NextCheckNo,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Partial unique index on (bank_account_id) WHERE status = 'ACTIVE'
			return fmt.Errorf("%w: bank account %s already has an active checkbook", apperrors.ErrConflict, m.BankAccountID)
		}
		return fmt.Errorf("failed to save checkbook %s: %w", m.CheckbookID, err)
	}
	return nil
}

// FindCheckbookByID retrieves a checkbook by its ID.
func (r *PgxCheckbookRepository) FindCheckbookByID(ctx context.Context, checkbookID string) (*domain.Checkbook, error) {
	query := `SELECT ` + checkbookColumns + ` FROM checkbooks WHERE checkbook_id = $1;`

	m, err := scanCheckbook(r.Pool.QueryRow(ctx, query, checkbookID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("checkbook with ID %s not found", checkbookID))
		}
		return nil, fmt.Errorf("failed to find checkbook %s: %w", checkbookID, err)
	}
	cb := mapping.ToDomainCheckbook(*m)
	return &cb, nil
}

// FindActiveCheckbook retrieves the single ACTIVE checkbook of a bank account.
func (r *PgxCheckbookRepository) FindActiveCheckbook(ctx context.Context, bankAccountID string) (*domain.Checkbook, error) {
	query := `SELECT ` + checkbookColumns + ` FROM checkbooks WHERE bank_account_id = $1 AND status = $2;`

	m, err := scanCheckbook(r.Pool.QueryRow(ctx, query, bankAccountID, models.CheckbookActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: bank account %s has no active checkbook", apperrors.ErrNoActiveCheckbook, bankAccountID)
		}
		return nil, fmt.Errorf("failed to find active checkbook for bank account %s: %w", bankAccountID, err)
	}
	cb := mapping.ToDomainCheckbook(*m)
	return &cb, nil
}

// ListCheckbooksByBankAccount retrieves all checkbooks of a bank account.
func (r *PgxCheckbookRepository) ListCheckbooksByBankAccount(ctx context.Context, bankAccountID string) ([]domain.Checkbook, error) {
	query := `SELECT ` + checkbookColumns + ` FROM checkbooks WHERE bank_account_id = $1 ORDER BY series_start;`

	rows, err := r.Pool.Query(ctx, query, bankAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkbooks for bank account %s: %w", bankAccountID, err)
	}
	defer rows.Close()

	modelBooks := make([]models.Checkbook, 0)
	for rows.Next() {
		m, err := scanCheckbook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checkbook row: %w", err)
		}
		modelBooks = append(modelBooks, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checkbook rows: %w", err)
	}
	return mapping.ToDomainCheckbookSlice(modelBooks), nil
}

// HasOverlappingSeries reports whether the number range overlaps any non-CLOSED
// checkbook of the bank account.
func (r *PgxCheckbookRepository) HasOverlappingSeries(ctx context.Context, bankAccountID string, seriesStart, seriesEnd int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM checkbooks
			WHERE bank_account_id = $1 AND status != $2
			  AND series_start <= $4 AND series_end >= $3
		);
	`
	var overlaps bool
	err := r.Pool.QueryRow(ctx, query, bankAccountID, models.CheckbookClosed, seriesStart, seriesEnd).Scan(&overlaps)
	if err != nil {
		return false, fmt.Errorf("failed to check series overlap for bank account %s: %w", bankAccountID, err)
	}
	return overlaps, nil
}

// CloseCheckbook marks a checkbook CLOSED. Only ACTIVE or EXHAUSTED books can
// be closed; a raced or repeated close reports a conflict.
func (r *PgxCheckbookRepository) CloseCheckbook(ctx context.Context, checkbookID string, userID string, now time.Time) error {
	query := `
		UPDATE checkbooks
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE checkbook_id = $1 AND status != $2;
	`
	tag, err := r.Pool.Exec(ctx, query, checkbookID, models.CheckbookClosed, now, userID)
	if err != nil {
		return fmt.Errorf("failed to close checkbook %s: %w", checkbookID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: checkbook %s is already closed or does not exist", apperrors.ErrConflict, checkbookID)
	}
	return nil
}

// NextCheckNumber atomically consumes and returns the next number of the bank
// account's active checkbook.
func (r *PgxCheckbookRepository) NextCheckNumber(ctx context.Context, bankAccountID string, userID string, now time.Time) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	_, number, err := r.NextCheckNumberInTx(ctx, tx, bankAccountID, userID, now)
	if err != nil {
		return 0, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return number, nil
}

// NextCheckNumberInTx consumes the next check number inside an existing
// transaction. The increment-and-read is a single conditional UPDATE so two
// concurrent issuances can never draw the same number; the book flips to
// EXHAUSTED in the same statement when its last number is consumed.
func (r *PgxCheckbookRepository) NextCheckNumberInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, userID string, now time.Time) (string, int64, error) {
	query := `
		UPDATE checkbooks
		SET next_check_no = next_check_no + 1,
		    status = CASE WHEN next_check_no = series_end THEN $5::text ELSE status END,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE bank_account_id = $1 AND status = $2 AND next_check_no <= series_end
		RETURNING checkbook_id, next_check_no - 1;
	`
	var checkbookID string
	var number int64
	err := tx.QueryRow(ctx, query, bankAccountID, models.CheckbookActive, now, userID, models.CheckbookExhausted).Scan(&checkbookID, &number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish "never had / closed out its books" from "the latest
			// series ran out", so callers can prompt for a fresh series.
			var exhausted bool
			checkErr := tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM checkbooks WHERE bank_account_id = $1 AND status IN ($2, $3));`,
				bankAccountID, models.CheckbookActive, models.CheckbookExhausted).Scan(&exhausted)
			if checkErr != nil {
				return "", 0, fmt.Errorf("failed to inspect checkbooks for bank account %s: %w", bankAccountID, checkErr)
			}
			if exhausted {
				return "", 0, fmt.Errorf("%w: checkbook of bank account %s has no numbers left", apperrors.ErrSeriesExhausted, bankAccountID)
			}
			return "", 0, fmt.Errorf("%w: bank account %s has no active checkbook", apperrors.ErrNoActiveCheckbook, bankAccountID)
		}
		return "", 0, fmt.Errorf("failed to draw next check number for bank account %s: %w", bankAccountID, err)
	}
	return checkbookID, number, nil
}
