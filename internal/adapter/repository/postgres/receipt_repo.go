package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/usecase"
)

const receiptColumns = `id, patient_id, branch_id, date, subtotal, discount, total, paid, due, status, created_at, updated_at`

// ReceiptRepository implements usecase.ReceiptRepository.
type ReceiptRepository struct {
	pool *pgxpool.Pool
}

// NewReceiptRepository creates a new ReceiptRepository.
func NewReceiptRepository(pool *pgxpool.Pool) *ReceiptRepository {
	return &ReceiptRepository{pool: pool}
}

// Create inserts a new receipt.
func (r *ReceiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO receipts (`+receiptColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		receipt.ID,
		receipt.PatientID,
		receipt.BranchID,
		receipt.Date,
		decimalToNumeric(receipt.Subtotal),
		decimalToNumeric(receipt.Discount),
		decimalToNumeric(receipt.Total),
		decimalToNumeric(receipt.Paid),
		decimalToNumeric(receipt.Due),
		string(receipt.Status),
		receipt.CreatedAt,
		receipt.UpdatedAt,
	)

	return err
}

// GetByID retrieves a receipt by ID.
func (r *ReceiptRepository) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+receiptColumns+` FROM receipts WHERE id = $1`, id)
	return scanReceipt(row)
}

// GetByIDForUpdate retrieves a receipt by ID with a FOR UPDATE lock.
func (r *ReceiptRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Receipt, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx, `SELECT `+receiptColumns+` FROM receipts WHERE id = $1 FOR UPDATE`, id)
	return scanReceipt(row)
}

// UpdatePayment updates the payment figures of a receipt.
func (r *ReceiptRepository) UpdatePayment(ctx context.Context, tx usecase.Transaction, id string, paid, due decimal.Decimal, status domain.ReceiptStatus, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE receipts SET paid = $2, due = $3, status = $4, updated_at = $5 WHERE id = $1`,
		id, decimalToNumeric(paid), decimalToNumeric(due), string(status), updatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReceiptNotFound
	}

	return nil
}

// UpdateStatus updates the lifecycle status of a receipt.
func (r *ReceiptRepository) UpdateStatus(ctx context.Context, id string, status domain.ReceiptStatus, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE receipts SET status = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), updatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReceiptNotFound
	}

	return nil
}

// List lists receipts matching the filter, newest first.
func (r *ReceiptRepository) List(ctx context.Context, filter usecase.ReceiptFilter) ([]*domain.Receipt, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.BranchID != "" {
		args = append(args, filter.BranchID)
		conditions = append(conditions, fmt.Sprintf("branch_id = $%d", len(args)))
	}
	if filter.Day != nil {
		args = append(args, *filter.Day)
		conditions = append(conditions, fmt.Sprintf("date::date = $%d::date", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + receiptColumns + ` FROM receipts`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC, id DESC"

	limit, offset := domain.ValidatePagination(filter.Limit, filter.Offset)
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []*domain.Receipt
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}

	return receipts, rows.Err()
}

// SumPaidByDay sums the paid amounts over the day's receipts.
func (r *ReceiptRepository) SumPaidByDay(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	var sum pgtype.Numeric
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(paid), 0) FROM receipts WHERE date::date = $1::date`,
		day,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

// SumTotalByDayAndStatus sums the totals over the day's receipts in the
// given status.
func (r *ReceiptRepository) SumTotalByDayAndStatus(ctx context.Context, day time.Time, status domain.ReceiptStatus) (decimal.Decimal, error) {
	var sum pgtype.Numeric
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0) FROM receipts WHERE date::date = $1::date AND status = $2`,
		day, string(status),
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

// CountByStatusForDay counts the day's receipts grouped by operational
// status. Cancelled and converted receipts are excluded.
func (r *ReceiptRepository) CountByStatusForDay(ctx context.Context, day time.Time) (map[domain.ReceiptStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, COUNT(*) FROM receipts
		WHERE date::date = $1::date AND status IN ($2, $3, $4)
		GROUP BY status`,
		day,
		string(domain.ReceiptStatusPending),
		string(domain.ReceiptStatusInProcess),
		string(domain.ReceiptStatusCompleted),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.ReceiptStatus]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[domain.ReceiptStatus(status)] = count
	}

	return counts, rows.Err()
}

func scanReceipt(row pgx.Row) (*domain.Receipt, error) {
	var (
		receipt  domain.Receipt
		subtotal pgtype.Numeric
		discount pgtype.Numeric
		total    pgtype.Numeric
		paid     pgtype.Numeric
		due      pgtype.Numeric
		status   string
	)

	err := row.Scan(
		&receipt.ID,
		&receipt.PatientID,
		&receipt.BranchID,
		&receipt.Date,
		&subtotal,
		&discount,
		&total,
		&paid,
		&due,
		&status,
		&receipt.CreatedAt,
		&receipt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReceiptNotFound
		}

		return nil, err
	}

	receipt.Subtotal = numericToDecimal(subtotal)
	receipt.Discount = numericToDecimal(discount)
	receipt.Total = numericToDecimal(total)
	receipt.Paid = numericToDecimal(paid)
	receipt.Due = numericToDecimal(due)
	receipt.Status = domain.ReceiptStatus(status)

	return &receipt, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}
