package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/usecase"
)

const operationColumns = `id, branch_id, employee_id, date, concept, amount, type, payment_method, created_at`

// OperationRepository implements usecase.OperationRepository.
type OperationRepository struct {
	pool *pgxpool.Pool
}

// NewOperationRepository creates a new OperationRepository.
func NewOperationRepository(pool *pgxpool.Pool) *OperationRepository {
	return &OperationRepository{pool: pool}
}

// Create inserts a new manual operation.
func (r *OperationRepository) Create(ctx context.Context, operation *domain.Operation) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO operations (`+operationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		operation.ID,
		operation.BranchID,
		operation.EmployeeID,
		operation.Date,
		operation.Concept,
		decimalToNumeric(operation.Amount),
		string(operation.Type),
		operation.PaymentMethod,
		operation.CreatedAt,
	)

	return err
}

// GetByID retrieves an operation by ID.
func (r *OperationRepository) GetByID(ctx context.Context, id string) (*domain.Operation, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+operationColumns+` FROM operations WHERE id = $1`, id)
	return scanOperation(row)
}

// Delete removes an operation. Operations are the only hard-deleted rows.
func (r *OperationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM operations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOperationNotFound
	}

	return nil
}

// List lists operations matching the filter, newest first.
func (r *OperationRepository) List(ctx context.Context, filter usecase.DayFilter) ([]*domain.Operation, error) {
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

	query := `SELECT ` + operationColumns + ` FROM operations`
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

	var operations []*domain.Operation
	for rows.Next() {
		operation, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		operations = append(operations, operation)
	}

	return operations, rows.Err()
}

func scanOperation(row pgx.Row) (*domain.Operation, error) {
	var (
		operation domain.Operation
		amount    pgtype.Numeric
		opType    string
	)

	err := row.Scan(
		&operation.ID,
		&operation.BranchID,
		&operation.EmployeeID,
		&operation.Date,
		&operation.Concept,
		&amount,
		&opType,
		&operation.PaymentMethod,
		&operation.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOperationNotFound
		}

		return nil, err
	}

	operation.Amount = numericToDecimal(amount)
	operation.Type = domain.OperationType(opType)

	return &operation, nil
}
