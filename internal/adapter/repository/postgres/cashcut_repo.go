package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinilab/clinilab/internal/domain"
)

const cashCutColumns = `id, branch_id, user_id, cut_at, initial_balance, final_balance, calculated_balance, difference, notes, created_at`

// CashCutRepository implements usecase.CashCutRepository.
type CashCutRepository struct {
	pool *pgxpool.Pool
}

// NewCashCutRepository creates a new CashCutRepository.
func NewCashCutRepository(pool *pgxpool.Pool) *CashCutRepository {
	return &CashCutRepository{pool: pool}
}

// Create inserts a reconciliation snapshot. Snapshots are append-only.
func (r *CashCutRepository) Create(ctx context.Context, cut *domain.CashCut) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cash_cuts (`+cashCutColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		cut.ID,
		cut.BranchID,
		cut.UserID,
		cut.CutAt,
		decimalToNumeric(cut.InitialBalance),
		decimalToNumeric(cut.FinalBalance),
		decimalToNumeric(cut.CalculatedBalance),
		decimalToNumeric(cut.Difference),
		cut.Notes,
		cut.CreatedAt,
	)

	return err
}

// ListByBranch lists a branch's snapshots, newest first.
func (r *CashCutRepository) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*domain.CashCut, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+cashCutColumns+` FROM cash_cuts
		WHERE branch_id = $1
		ORDER BY cut_at DESC, id DESC
		LIMIT $2 OFFSET $3`,
		branchID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cuts []*domain.CashCut
	for rows.Next() {
		var (
			cut        domain.CashCut
			initial    pgtype.Numeric
			final      pgtype.Numeric
			calculated pgtype.Numeric
			difference pgtype.Numeric
		)
		err := rows.Scan(
			&cut.ID,
			&cut.BranchID,
			&cut.UserID,
			&cut.CutAt,
			&initial,
			&final,
			&calculated,
			&difference,
			&cut.Notes,
			&cut.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		cut.InitialBalance = numericToDecimal(initial)
		cut.FinalBalance = numericToDecimal(final)
		cut.CalculatedBalance = numericToDecimal(calculated)
		cut.Difference = numericToDecimal(difference)

		cuts = append(cuts, &cut)
	}

	return cuts, rows.Err()
}
