package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/infrastructure/metrics"
)

// ExpenseUseCase handles expense business logic.
type ExpenseUseCase struct {
	expenseRepo ExpenseRepository
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewExpenseUseCase creates a new ExpenseUseCase. metrics may be nil.
func NewExpenseUseCase(expenseRepo ExpenseRepository, idGen IDGenerator, metrics *metrics.Metrics) *ExpenseUseCase {
	return &ExpenseUseCase{
		expenseRepo: expenseRepo,
		idGen:       idGen,
		metrics:     metrics,
	}
}

// CreateExpenseInput represents input for recording an expense.
type CreateExpenseInput struct {
	BranchID    string
	CategoryID  string
	Date        time.Time
	Amount      decimal.Decimal
	Description string
}

// CreateExpense records a new expense.
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error) {
	if input.BranchID == "" {
		return nil, domain.ErrBranchRequired
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	now := time.Now().UTC()
	expense := &domain.Expense{
		ID:          uc.idGen.Generate(),
		BranchID:    input.BranchID,
		CategoryID:  input.CategoryID,
		Date:        date,
		Amount:      input.Amount,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ExpensesCreated.Inc()
	}

	return expense, nil
}

// GetExpense retrieves an expense by ID.
func (uc *ExpenseUseCase) GetExpense(ctx context.Context, id string) (*domain.Expense, error) {
	return uc.expenseRepo.GetByID(ctx, id)
}

// UpdateExpenseInput represents the editable fields of an expense.
type UpdateExpenseInput struct {
	CategoryID  string
	Amount      decimal.Decimal
	Description string
}

// UpdateExpense mutates an expense through the edit flow, the only
// mutation expenses allow.
func (uc *ExpenseUseCase) UpdateExpense(ctx context.Context, id string, input UpdateExpenseInput) (*domain.Expense, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	expense.CategoryID = input.CategoryID
	expense.Amount = input.Amount
	expense.Description = input.Description
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// ListExpenses lists expenses matching the filter.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context, filter DayFilter) ([]*domain.Expense, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)
	return uc.expenseRepo.List(ctx, filter)
}
