package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/infrastructure/metrics"
)

// CashCutUseCase computes and persists cash-cut reconciliations.
type CashCutUseCase struct {
	receiptRepo   ReceiptRepository
	expenseRepo   ExpenseRepository
	operationRepo OperationRepository
	cashCutRepo   CashCutRepository
	idGen         IDGenerator
	metrics       *metrics.Metrics

	// userID is the placeholder user recorded on every snapshot until
	// cuts are attributed to real operators.
	userID string
}

// NewCashCutUseCase creates a new CashCutUseCase. metrics may be nil.
func NewCashCutUseCase(
	receiptRepo ReceiptRepository,
	expenseRepo ExpenseRepository,
	operationRepo OperationRepository,
	cashCutRepo CashCutRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
	userID string,
) *CashCutUseCase {
	return &CashCutUseCase{
		receiptRepo:   receiptRepo,
		expenseRepo:   expenseRepo,
		operationRepo: operationRepo,
		cashCutRepo:   cashCutRepo,
		idGen:         idGen,
		metrics:       metrics,
		userID:        userID,
	}
}

// CashCutInput carries the reconciliation parameters entered by the user.
type CashCutInput struct {
	BranchID    string
	Day         time.Time
	InitialCash decimal.Decimal
	Notes       string
}

func (in *CashCutInput) validate() error {
	if in.BranchID == "" {
		return domain.ErrBranchRequired
	}
	if in.InitialCash.IsNegative() {
		return domain.ErrNegativeInitialCash
	}
	return nil
}

// Preview loads the branch's collections for the day and reduces them into
// the reconciliation summary without persisting anything. Each collection is
// paged until the repository returns a short page; a day with more rows than
// one page must not lose money from the figures.
func (uc *CashCutUseCase) Preview(ctx context.Context, input CashCutInput) (domain.CashCutSummary, error) {
	if err := input.validate(); err != nil {
		return domain.CashCutSummary{}, err
	}
	day := input.Day
	if day.IsZero() {
		day = time.Now()
	}

	receipts, err := uc.loadReceipts(ctx, input.BranchID, day)
	if err != nil {
		return domain.CashCutSummary{}, fmt.Errorf("load receipts: %w", err)
	}
	expenses, err := uc.loadExpenses(ctx, input.BranchID, day)
	if err != nil {
		return domain.CashCutSummary{}, fmt.Errorf("load expenses: %w", err)
	}
	operations, err := uc.loadOperations(ctx, input.BranchID, day)
	if err != nil {
		return domain.CashCutSummary{}, fmt.Errorf("load operations: %w", err)
	}

	return domain.BuildCashCutSummary(input.BranchID, day, input.InitialCash, receipts, expenses, operations), nil
}

func (uc *CashCutUseCase) loadReceipts(ctx context.Context, branchID string, day time.Time) ([]*domain.Receipt, error) {
	filter := ReceiptFilter{BranchID: branchID, Day: &day, Limit: domain.MaxPageSize}
	var all []*domain.Receipt
	for {
		page, err := uc.receiptRepo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < domain.MaxPageSize {
			return all, nil
		}
		filter.Offset += len(page)
	}
}

func (uc *CashCutUseCase) loadExpenses(ctx context.Context, branchID string, day time.Time) ([]*domain.Expense, error) {
	filter := DayFilter{BranchID: branchID, Day: &day, Limit: domain.MaxPageSize}
	var all []*domain.Expense
	for {
		page, err := uc.expenseRepo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < domain.MaxPageSize {
			return all, nil
		}
		filter.Offset += len(page)
	}
}

func (uc *CashCutUseCase) loadOperations(ctx context.Context, branchID string, day time.Time) ([]*domain.Operation, error) {
	filter := DayFilter{BranchID: branchID, Day: &day, Limit: domain.MaxPageSize}
	var all []*domain.Operation
	for {
		page, err := uc.operationRepo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < domain.MaxPageSize {
			return all, nil
		}
		filter.Offset += len(page)
	}
}

// Create computes the summary and persists a snapshot of it. There is no
// physical-count input yet, so the calculated balance is stored as both
// final and calculated and the difference is zero. The write is a single
// insert with no retry; a failure surfaces to the caller so the user can
// retry manually.
func (uc *CashCutUseCase) Create(ctx context.Context, input CashCutInput) (*domain.CashCut, error) {
	start := time.Now()

	summary, err := uc.Preview(ctx, input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cut := &domain.CashCut{
		ID:                uc.idGen.Generate(),
		BranchID:          input.BranchID,
		UserID:            uc.userID,
		CutAt:             now,
		InitialBalance:    input.InitialCash,
		FinalBalance:      summary.CalculatedBalance,
		CalculatedBalance: summary.CalculatedBalance,
		Difference:        decimal.Zero,
		Notes:             input.Notes,
		CreatedAt:         now,
	}

	if err := uc.cashCutRepo.Create(ctx, cut); err != nil {
		return nil, fmt.Errorf("persist cash cut: %w", err)
	}

	if uc.metrics != nil {
		uc.metrics.CashCutsCreated.Inc()
		uc.metrics.CashCutDuration.Observe(time.Since(start).Seconds())
	}

	return cut, nil
}

// List returns the snapshot history for a branch, newest first.
func (uc *CashCutUseCase) List(ctx context.Context, branchID string, limit, offset int) ([]*domain.CashCut, error) {
	if branchID == "" {
		return nil, domain.ErrBranchRequired
	}
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.cashCutRepo.ListByBranch(ctx, branchID, limit, offset)
}
