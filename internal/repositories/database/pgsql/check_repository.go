package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerworks/voucher_disbursement_app/internal/apperrors"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	portsrepo "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/repositories"
	"github.com/ledgerworks/voucher_disbursement_app/internal/models"
	"github.com/ledgerworks/voucher_disbursement_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxCheckRepository struct {
	BaseRepository
	accountRepo *PgxBankAccountRepository
	txnRepo     *PgxTransactionRepository
	auditRepo   *PgxAuditRepository
}

// newPgxCheckRepository creates a new repository for check lifecycle data.
func newPgxCheckRepository(pool *pgxpool.Pool, accountRepo *PgxBankAccountRepository, txnRepo *PgxTransactionRepository, auditRepo *PgxAuditRepository) *PgxCheckRepository {
	return &PgxCheckRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
		txnRepo:        txnRepo,
		auditRepo:      auditRepo,
	}
}

// Ensure PgxCheckRepository implements the facade
var _ portsrepo.CheckRepositoryFacade = (*PgxCheckRepository)(nil)

const checkColumns = `check_id, bank_account_id, checkbook_id, voucher_id, check_number, payee, amount, date_issued, check_date, status, received_by, created_at, created_by, last_updated_at, last_updated_by`

func scanCheck(row pgx.Row) (*models.Check, error) {
	var m models.Check
	err := row.Scan(
		&m.CheckID,
		&m.BankAccountID,
		&m.CheckbookID,
		&m.VoucherID,
		&m.CheckNumber,
		&m.Payee,
		&m.Amount,
		&m.DateIssued,
		&m.CheckDate,
		&m.Status,
		&m.ReceivedBy,
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

// FindCheckByID retrieves a check by its ID.
func (r *PgxCheckRepository) FindCheckByID(ctx context.Context, checkID string) (*domain.Check, error) {
	query := `SELECT ` + checkColumns + ` FROM checks WHERE check_id = $1;`

	m, err := scanCheck(r.Pool.QueryRow(ctx, query, checkID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("check with ID %s not found", checkID))
		}
		return nil, fmt.Errorf("failed to find check %s: %w", checkID, err)
	}
	c := mapping.ToDomainCheck(*m)
	return &c, nil
}

// FindCheckByVoucherID retrieves the check spawned by a voucher.
func (r *PgxCheckRepository) FindCheckByVoucherID(ctx context.Context, voucherID string) (*domain.Check, error) {
	query := `SELECT ` + checkColumns + ` FROM checks WHERE voucher_id = $1;`

	m, err := scanCheck(r.Pool.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no check found for voucher %s", voucherID))
		}
		return nil, fmt.Errorf("failed to find check for voucher %s: %w", voucherID, err)
	}
	c := mapping.ToDomainCheck(*m)
	return &c, nil
}

// ListChecksByBankAccount retrieves all checks drawn against a bank account.
func (r *PgxCheckRepository) ListChecksByBankAccount(ctx context.Context, bankAccountID string) ([]domain.Check, error) {
	query := `SELECT ` + checkColumns + ` FROM checks WHERE bank_account_id = $1 ORDER BY check_number;`

	rows, err := r.Pool.Query(ctx, query, bankAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checks for bank account %s: %w", bankAccountID, err)
	}
	defer rows.Close()

	modelChecks := make([]models.Check, 0)
	for rows.Next() {
		m, err := scanCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check row: %w", err)
		}
		modelChecks = append(modelChecks, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating check rows: %w", err)
	}
	return mapping.ToDomainCheckSlice(modelChecks), nil
}

// SumOutstanding computes the total face value of ISSUED and CLAIMED checks of
// a bank account.
func (r *PgxCheckRepository) SumOutstanding(ctx context.Context, bankAccountID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0) FROM checks
		WHERE bank_account_id = $1 AND status IN ($2, $3);
	`
	var sum decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, bankAccountID, models.CheckIssued, models.CheckClaimed).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum outstanding checks for bank account %s: %w", bankAccountID, err)
	}
	return sum, nil
}

// SaveCheckInTx inserts a new check within an existing transaction.
func (r *PgxCheckRepository) SaveCheckInTx(ctx context.Context, tx pgx.Tx, check domain.Check) error {
	m := mapping.ToModelCheck(check)

	query := `
		INSERT INTO checks (` + checkColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		m.CheckID,
		m.BankAccountID,
		m.CheckbookID,
		m.VoucherID,
		m.CheckNumber,
		m.Payee,
		m.Amount,
		m.DateIssued,
		m.CheckDate,
		m.Status,
		m.ReceivedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert check %s: %w", m.CheckID, err)
	}
	return nil
}

// setStatusInTx performs a conditional status move. A raced row reports
// apperrors.ErrConflict.
func (r *PgxCheckRepository) setStatusInTx(ctx context.Context, tx pgx.Tx, checkID string, from, to models.CheckStatus, userID string, now time.Time) error {
	query := `
		UPDATE checks
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE check_id = $1 AND status = $2;
	`
	tag, err := tx.Exec(ctx, query, checkID, from, to, now, userID)
	if err != nil {
		return fmt.Errorf("failed to move check %s to %s: %w", checkID, to, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: check %s is no longer %s", apperrors.ErrConflict, checkID, from)
	}
	return nil
}

// ClaimCheck moves an ISSUED check to CLAIMED and records who received it.
func (r *PgxCheckRepository) ClaimCheck(ctx context.Context, checkID string, receivedBy string, entry domain.AuditEntry, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `
		UPDATE checks
		SET status = $3, received_by = $4, last_updated_at = $5, last_updated_by = $6
		WHERE check_id = $1 AND status = $2;
	`
	tag, err := tx.Exec(ctx, query, checkID, models.CheckIssued, models.CheckClaimed, receivedBy, now, userID)
	if err != nil {
		return fmt.Errorf("failed to claim check %s: %w", checkID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: check %s is no longer %s", apperrors.ErrConflict, checkID, models.CheckIssued)
	}
	if err := r.auditRepo.SaveAuditEntryInTx(ctx, tx, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ClearCheck moves a CLAIMED check to CLEARED and posts its withdrawal ledger
// row with a forward recompute, all under the account row lock.
func (r *PgxCheckRepository) ClearCheck(ctx context.Context, check domain.Check, ledgerTxn domain.Transaction, entry domain.AuditEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	account, err := r.accountRepo.FindBankAccountForUpdate(ctx, tx, check.BankAccountID)
	if err != nil {
		return err
	}
	if err := r.setStatusInTx(ctx, tx, check.CheckID, models.CheckClaimed, models.CheckCleared, ledgerTxn.CreatedBy, ledgerTxn.CreatedAt); err != nil {
		return err
	}
	if err := r.txnRepo.insertInTx(ctx, tx, ledgerTxn); err != nil {
		return err
	}
	if _, err := r.txnRepo.recomputeFrom(ctx, tx, account, ledgerTxn.TransactionDate, ledgerTxn.CreatedBy, ledgerTxn.CreatedAt); err != nil {
		return err
	}
	if err := r.auditRepo.SaveAuditEntryInTx(ctx, tx, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// BounceCheck moves a CLAIMED check to BOUNCED and the owning voucher to
// BOUNCED. The ledger is untouched: the check never cleared, so no cash moved.
func (r *PgxCheckRepository) BounceCheck(ctx context.Context, check domain.Check, entry domain.AuditEntry, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if err := r.setStatusInTx(ctx, tx, check.CheckID, models.CheckClaimed, models.CheckBounced, userID, now); err != nil {
		return err
	}

	voucherQuery := `
		UPDATE vouchers
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE voucher_id = $1;
	`
	if _, err := tx.Exec(ctx, voucherQuery, check.VoucherID, models.VoucherBounced, now, userID); err != nil {
		return fmt.Errorf("failed to bounce voucher %s: %w", check.VoucherID, err)
	}
	if err := r.auditRepo.SaveAuditEntryInTx(ctx, tx, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// VoidCheckInTx moves an ISSUED check to VOIDED within an existing transaction.
func (r *PgxCheckRepository) VoidCheckInTx(ctx context.Context, tx pgx.Tx, checkID string, userID string, now time.Time) error {
	return r.setStatusInTx(ctx, tx, checkID, models.CheckIssued, models.CheckVoided, userID, now)
}

// UpdateIssueDate edits date_issued. For a CLEARED check the linked ledger row
// moves to the new date and the chain is recomputed from the earlier of the
// two dates.
func (r *PgxCheckRepository) UpdateIssueDate(ctx context.Context, check domain.Check, newDate time.Time, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	account, err := r.accountRepo.FindBankAccountForUpdate(ctx, tx, check.BankAccountID)
	if err != nil {
		return err
	}

	query := `
		UPDATE checks
		SET date_issued = $2, last_updated_at = $3, last_updated_by = $4
		WHERE check_id = $1;
	`
	tag, err := tx.Exec(ctx, query, check.CheckID, newDate, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update issue date of check %s: %w", check.CheckID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("check with ID %s not found", check.CheckID))
	}

	if check.Status == domain.CheckCleared {
		// The category filter keeps a manual withdrawal that reuses the same
		// check number from aliasing the clearing row.
		linkQuery := `
			SELECT transaction_id, transaction_date FROM transactions
			WHERE bank_account_id = $1 AND check_no = $2 AND type = $3 AND category = $4;
		`
		var txnID string
		var oldDate time.Time
		err := tx.QueryRow(ctx, linkQuery, check.BankAccountID, check.CheckNumber, models.Withdrawal, domain.CategoryCheckDisbursement).Scan(&txnID, &oldDate)
		if err != nil {
			return fmt.Errorf("failed to find ledger row of cleared check %s: %w", check.CheckID, err)
		}

		moveQuery := `
			UPDATE transactions
			SET transaction_date = $2, last_updated_at = $3, last_updated_by = $4
			WHERE transaction_id = $1;
		`
		if _, err := tx.Exec(ctx, moveQuery, txnID, newDate, now, userID); err != nil {
			return fmt.Errorf("failed to move ledger row of cleared check %s: %w", check.CheckID, err)
		}

		fromDate := oldDate
		if newDate.Before(fromDate) {
			fromDate = newDate
		}
		if _, err := r.txnRepo.recomputeFrom(ctx, tx, account, fromDate, userID, now); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}
