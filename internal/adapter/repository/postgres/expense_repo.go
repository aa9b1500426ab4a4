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

const expenseColumns = `id, branch_id, category_id, date, amount, description, created_at, updated_at`

// ExpenseRepository implements usecase.ExpenseRepository.
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// Create inserts a new expense.
func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		expense.ID,
		expense.BranchID,
		expense.CategoryID,
		expense.Date,
		decimalToNumeric(expense.Amount),
		expense.Description,
		expense.CreatedAt,
		expense.UpdatedAt,
	)

	return err
}

// GetByID retrieves an expense by ID.
func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)
	return scanExpense(row)
}

// Update rewrites the editable fields of an expense.
func (r *ExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE expenses SET category_id = $2, amount = $3, description = $4, updated_at = $5 WHERE id = $1`,
		expense.ID,
		expense.CategoryID,
		decimalToNumeric(expense.Amount),
		expense.Description,
		expense.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}

	return nil
}

// List lists expenses matching the filter, newest first.
func (r *ExpenseRepository) List(ctx context.Context, filter usecase.DayFilter) ([]*domain.Expense, error) {
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

	query := `SELECT ` + expenseColumns + ` FROM expenses`
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

	var expenses []*domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}

// SumByDay sums the day's expenses.
func (r *ExpenseRepository) SumByDay(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	var sum pgtype.Numeric
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date::date = $1::date`,
		day,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

// SumByDayAndCategory sums the day's expenses in one category.
func (r *ExpenseRepository) SumByDayAndCategory(ctx context.Context, day time.Time, categoryID string) (decimal.Decimal, error) {
	var sum pgtype.Numeric
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date::date = $1::date AND category_id = $2`,
		day, categoryID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var (
		expense domain.Expense
		amount  pgtype.Numeric
	)

	err := row.Scan(
		&expense.ID,
		&expense.BranchID,
		&expense.CategoryID,
		&expense.Date,
		&amount,
		&expense.Description,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}

		return nil, err
	}

	expense.Amount = numericToDecimal(amount)

	return &expense, nil
}
