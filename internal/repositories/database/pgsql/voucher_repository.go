package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

type PgxVoucherRepository struct {
	BaseRepository
	checkbookRepo *PgxCheckbookRepository
	checkRepo     *PgxCheckRepository
	auditRepo     *PgxAuditRepository
}

// newPgxVoucherRepository creates a new repository for voucher workflow data.
func newPgxVoucherRepository(pool *pgxpool.Pool, checkbookRepo *PgxCheckbookRepository, checkRepo *PgxCheckRepository, auditRepo *PgxAuditRepository) *PgxVoucherRepository {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
		checkbookRepo:  checkbookRepo,
		checkRepo:      checkRepo,
		auditRepo:      auditRepo,
	}
}

// Ensure PgxVoucherRepository implements the facade
var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

const voucherColumns = `voucher_id, voucher_no, company_id, status, amount, payee, category, payment_type, bank_account_id, check_no, check_date, void_reason, created_at, created_by, last_updated_at, last_updated_by`

func scanVoucher(row pgx.Row) (*models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID,
		&m.VoucherNo,
		&m.CompanyID,
		&m.Status,
		&m.Amount,
		&m.Payee,
		&m.Category,
		&m.PaymentType,
		&m.BankAccountID,
		&m.CheckNo,
		&m.CheckDate,
		&m.VoidReason,
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

// formatVoucherNo builds the human-facing voucher number from the company ID
// prefix and the per-company sequence value.
func formatVoucherNo(companyID string, seq int64) string {
	prefix := companyID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("%s-%06d", strings.ToUpper(prefix), seq)
}

// SaveVoucher persists a new voucher with a freshly drawn company-scoped
// number. The counter increment and the insert commit together, so numbers
// are gapless per company even under concurrent creates.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) (*domain.Voucher, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	seqQuery := `
		INSERT INTO voucher_sequences (company_id, last_value)
		VALUES ($1, 1)
		ON CONFLICT (company_id) DO UPDATE SET last_value = voucher_sequences.last_value + 1
		RETURNING last_value;
	`
	var seq int64
	if err := tx.QueryRow(ctx, seqQuery, voucher.CompanyID).Scan(&seq); err != nil {
		return nil, fmt.Errorf("failed to draw voucher number for company %s: %w", voucher.CompanyID, err)
	}
	voucher.VoucherNo = formatVoucherNo(voucher.CompanyID, seq)

	m := mapping.ToModelVoucher(voucher)
	insertQuery := `
		INSERT INTO vouchers (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.VoucherID,
		m.VoucherNo,
		m.CompanyID,
		m.Status,
		m.Amount,
		m.Payee,
		m.Category,
		m.PaymentType,
		m.BankAccountID,
		m.CheckNo,
		m.CheckDate,
		m.VoidReason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save voucher %s: %w", m.VoucherID, err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &voucher, nil
}

// setStatusInTx performs a conditional voucher status move. A raced row
// reports apperrors.ErrConflict.
func (r *PgxVoucherRepository) setStatusInTx(ctx context.Context, tx pgx.Tx, voucherID string, from, to models.VoucherStatus, voidReason string, userID string, now time.Time) error {
	var tag pgconn.CommandTag
	var err error
	if voidReason != "" {
		query := `
			UPDATE vouchers
			SET status = $3, void_reason = $4, last_updated_at = $5, last_updated_by = $6
			WHERE voucher_id = $1 AND status = $2;
		`
		tag, err = tx.Exec(ctx, query, voucherID, from, to, voidReason, now, userID)
	} else {
		query := `
			UPDATE vouchers
			SET status = $3, last_updated_at = $4, last_updated_by = $5
			WHERE voucher_id = $1 AND status = $2;
		`
		tag, err = tx.Exec(ctx, query, voucherID, from, to, now, userID)
	}
	if err != nil {
		return fmt.Errorf("failed to move voucher %s to %s: %w", voucherID, to, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: voucher %s is no longer %s", apperrors.ErrConflict, voucherID, from)
	}
	return nil
}

// SubmitVoucher attaches bank/check details and moves the voucher to
// PENDING_ADMIN. bankAccountID stays NULL for a cash voucher submitted
// without one.
func (r *PgxVoucherRepository) SubmitVoucher(ctx context.Context, voucherID string, bankAccountID *string, checkDate *time.Time, entry domain.AuditEntry, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `
		UPDATE vouchers
		SET status = $3, bank_account_id = $4, check_date = $5, last_updated_at = $6, last_updated_by = $7
		WHERE voucher_id = $1 AND status = $2;
	`
	tag, err := tx.Exec(ctx, query, voucherID, models.VoucherPendingLiaison, models.VoucherPendingAdmin, bankAccountID, checkDate, now, userID)
	if err != nil {
		return fmt.Errorf("failed to submit voucher %s: %w", voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: voucher %s is no longer %s", apperrors.ErrConflict, voucherID, models.VoucherPendingLiaison)
	}
	if err := r.auditRepo.SaveAuditEntryInTx(ctx, tx, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ApproveVoucher issues the voucher: draws the next check number from the
// account's active checkbook, inserts the ISSUED check, and moves the voucher
// to ISSUED, all in one transaction.
func (r *PgxVoucherRepository) ApproveVoucher(ctx context.Context, voucher domain.Voucher, checkTemplate domain.Check, entry domain.AuditEntry) (*domain.Check, error) {
	if voucher.BankAccountID == nil {
		return nil, fmt.Errorf("%w: voucher %s has no bank account attached", apperrors.ErrValidation, voucher.VoucherID)
	}
	userID := checkTemplate.CreatedBy
	now := checkTemplate.CreatedAt

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	checkbookID, number, err := r.checkbookRepo.NextCheckNumberInTx(ctx, tx, *voucher.BankAccountID, userID, now)
	if err != nil {
		return nil, err
	}

	check := checkTemplate
	check.CheckbookID = checkbookID
	check.CheckNumber = number
	if err := r.checkRepo.SaveCheckInTx(ctx, tx, check); err != nil {
		return nil, err
	}

	query := `
		UPDATE vouchers
		SET status = $3, check_no = $4, last_updated_at = $5, last_updated_by = $6
		WHERE voucher_id = $1 AND status = $2;
	`
	tag, err := tx.Exec(ctx, query, voucher.VoucherID, models.VoucherPendingAdmin, models.VoucherIssued, number, now, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to approve voucher %s: %w", voucher.VoucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: voucher %s is no longer %s", apperrors.ErrConflict, voucher.VoucherID, models.VoucherPendingAdmin)
	}
	if err := r.auditRepo.SaveAuditEntryInTx(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &check, nil
}

// UpdateVoucherStatus performs a plain conditional status move with its audit
// entry.
func (r *PgxVoucherRepository) UpdateVoucherStatus(ctx context.Context, voucherID string, from, to domain.VoucherStatus, voidReason string, entry domain.AuditEntry, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if err := r.setStatusInTx(ctx, tx, voucherID, models.VoucherStatus(from), models.VoucherStatus(to), voidReason, userID, now); err != nil {
		return err
	}
	if err := r.auditRepo.SaveAuditEntryInTx(ctx, tx, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// VoidVoucherAndCheck moves the voucher and its linked check to VOIDED in one
// transaction, with an audit entry for each entity.
func (r *PgxVoucherRepository) VoidVoucherAndCheck(ctx context.Context, voucherID string, checkID string, voucherEntry, checkEntry domain.AuditEntry, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if err := r.setStatusInTx(ctx, tx, voucherID, models.VoucherVoidPendingApproval, models.VoucherVoided, "", userID, now); err != nil {
		return err
	}
	if err := r.checkRepo.VoidCheckInTx(ctx, tx, checkID, userID, now); err != nil {
		return err
	}
	if err := r.auditRepo.SaveAuditEntryInTx(ctx, tx, voucherEntry); err != nil {
		return err
	}
	if err := r.auditRepo.SaveAuditEntryInTx(ctx, tx, checkEntry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindVoucherByID retrieves a voucher by its ID.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE voucher_id = $1;`

	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("voucher with ID %s not found", voucherID))
		}
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}
	v := mapping.ToDomainVoucher(*m)
	return &v, nil
}

// ListVouchersByCompany retrieves a page of a company's vouchers, newest first.
func (r *PgxVoucherRepository) ListVouchersByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.Voucher, error) {
	query := `
		SELECT ` + voucherColumns + ` FROM vouchers
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers for company %s: %w", companyID, err)
	}
	defer rows.Close()

	modelVouchers := make([]models.Voucher, 0, limit)
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voucher row: %w", err)
		}
		modelVouchers = append(modelVouchers, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating voucher rows: %w", err)
	}
	return mapping.ToDomainVoucherSlice(modelVouchers), nil
}
