package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/usecase"
	"github.com/clinilab/clinilab/internal/usecase/mocks"
)

const extraCategoryID = "cat-extra"

func newDashboardUseCase(
	catalogRepo *mocks.MockCatalogRepository,
	receiptRepo *mocks.MockReceiptRepository,
	expenseRepo *mocks.MockExpenseRepository,
) *usecase.DashboardUseCase {
	return usecase.NewDashboardUseCase(catalogRepo, receiptRepo, expenseRepo, nil, &mocks.MockRetrier{}, 0, extraCategoryID)
}

func TestDashboardStats(t *testing.T) {
	t.Parallel()

	catalogRepo := mocks.NewMockCatalogRepository()
	catalogRepo.PatientsCount = 12
	catalogRepo.ServicesCount = 7
	catalogRepo.ProvidersCount = 3
	catalogRepo.DoctorsCount = 5

	uc := newDashboardUseCase(catalogRepo, mocks.NewMockReceiptRepository(), mocks.NewMockExpenseRepository())

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.DashboardStats{PatientsCount: 12, ServicesCount: 7, ProvidersCount: 3, DoctorsCount: 5}
	if stats != want {
		t.Errorf("expected %+v, got %+v", want, stats)
	}
}

func TestDashboardStats_EmptyTables(t *testing.T) {
	t.Parallel()

	uc := newDashboardUseCase(mocks.NewMockCatalogRepository(), mocks.NewMockReceiptRepository(), mocks.NewMockExpenseRepository())

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats != (domain.DashboardStats{}) {
		t.Errorf("expected zero counts, got %+v", stats)
	}
}

func TestDashboardStats_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), "dashboard:stats").
		Return([]byte(`{"PatientsCount":9,"ServicesCount":2,"ProvidersCount":1,"DoctorsCount":4}`), nil)

	catalogRepo := mocks.NewMockCatalogRepository()
	catalogRepo.CountPatientsFunc = func(context.Context) (int64, error) {
		t.Error("counts should not be queried on a cache hit")
		return 0, nil
	}

	uc := usecase.NewDashboardUseCase(catalogRepo, mocks.NewMockReceiptRepository(), mocks.NewMockExpenseRepository(), cache, nil, 0, extraCategoryID)

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.PatientsCount != 9 || stats.DoctorsCount != 4 {
		t.Errorf("expected cached counts, got %+v", stats)
	}
}

func TestDashboardStats_CacheMissPopulates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), "dashboard:stats").Return(nil, errors.New("miss"))
	cache.EXPECT().Set(gomock.Any(), "dashboard:stats", gomock.Any(), usecase.DashboardCacheTTL).Return(nil)

	catalogRepo := mocks.NewMockCatalogRepository()
	catalogRepo.PatientsCount = 1

	uc := usecase.NewDashboardUseCase(catalogRepo, mocks.NewMockReceiptRepository(), mocks.NewMockExpenseRepository(), cache, nil, 0, extraCategoryID)

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.PatientsCount != 1 {
		t.Errorf("expected 1 patient, got %d", stats.PatientsCount)
	}
}

func TestDashboardStats_CountError(t *testing.T) {
	t.Parallel()

	catalogRepo := mocks.NewMockCatalogRepository()
	catalogRepo.CountDoctorsFunc = func(context.Context) (int64, error) {
		return 0, errors.New("connection refused")
	}

	uc := newDashboardUseCase(catalogRepo, mocks.NewMockReceiptRepository(), mocks.NewMockExpenseRepository())

	if _, err := uc.Stats(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestFinancialSummary(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	receiptRepo := mocks.NewMockReceiptRepository()
	seedReceipt(t, receiptRepo, &domain.Receipt{
		ID: "r1", BranchID: "b1", Date: day,
		Total: decimal.NewFromInt(300), Paid: decimal.NewFromInt(100),
		Status: domain.ReceiptStatusPending,
	})
	seedReceipt(t, receiptRepo, &domain.Receipt{
		ID: "r2", BranchID: "b1", Date: day,
		Total: decimal.NewFromInt(200), Paid: decimal.NewFromInt(50),
		Status: domain.ReceiptStatusCompleted,
	})

	expenseRepo := mocks.NewMockExpenseRepository()
	seedExpense(t, expenseRepo, &domain.Expense{
		ID: "e1", BranchID: "b1", CategoryID: "cat-other",
		Date: day, Amount: decimal.NewFromInt(30),
	})
	seedExpense(t, expenseRepo, &domain.Expense{
		ID: "e2", BranchID: "b1", CategoryID: extraCategoryID,
		Date: day, Amount: decimal.NewFromInt(20),
	})

	uc := newDashboardUseCase(mocks.NewMockCatalogRepository(), receiptRepo, expenseRepo)

	summary, err := uc.FinancialSummary(context.Background(), day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// paid 100+50 plus the completed receipt's total 200 counted again.
	if !summary.TotalIncome.Equal(decimal.NewFromInt(350)) {
		t.Errorf("expected income 350, got %s", summary.TotalIncome)
	}
	// all expenses 50 plus the extra category's 20 counted again.
	if !summary.TotalExpenses.Equal(decimal.NewFromInt(70)) {
		t.Errorf("expected expenses 70, got %s", summary.TotalExpenses)
	}
	if !summary.Balance.Equal(summary.TotalIncome.Sub(summary.TotalExpenses)) {
		t.Errorf("balance %s does not equal income minus expenses", summary.Balance)
	}
}

func TestFinancialSummary_EmptyDay(t *testing.T) {
	t.Parallel()

	uc := newDashboardUseCase(mocks.NewMockCatalogRepository(), mocks.NewMockReceiptRepository(), mocks.NewMockExpenseRepository())

	summary, err := uc.FinancialSummary(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !summary.TotalIncome.IsZero() || !summary.TotalExpenses.IsZero() || !summary.Balance.IsZero() {
		t.Errorf("expected all-zero summary, got %+v", summary)
	}
}

func TestFinancialSummary_QueryError(t *testing.T) {
	t.Parallel()

	receiptRepo := mocks.NewMockReceiptRepository()
	receiptRepo.SumPaidByDayFunc = func(context.Context, time.Time) (decimal.Decimal, error) {
		return decimal.Zero, errors.New("timeout")
	}

	uc := newDashboardUseCase(mocks.NewMockCatalogRepository(), receiptRepo, mocks.NewMockExpenseRepository())

	summary, err := uc.FinancialSummary(context.Background(), time.Now())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !summary.TotalIncome.IsZero() || !summary.TotalExpenses.IsZero() || !summary.Balance.IsZero() {
		t.Errorf("expected zero summary alongside the error, got %+v", summary)
	}
}

func TestStatusCounts(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	receiptRepo := mocks.NewMockReceiptRepository()
	for i, status := range []domain.ReceiptStatus{
		domain.ReceiptStatusPending,
		domain.ReceiptStatusPending,
		domain.ReceiptStatusInProcess,
		domain.ReceiptStatusCompleted,
		domain.ReceiptStatusCancelled,
		domain.ReceiptStatusConverted,
	} {
		seedReceipt(t, receiptRepo, &domain.Receipt{
			ID: "r" + string(rune('a'+i)), BranchID: "b1", Date: day, Status: status,
			Total: decimal.Zero, Paid: decimal.Zero,
		})
	}

	uc := newDashboardUseCase(mocks.NewMockCatalogRepository(), receiptRepo, mocks.NewMockExpenseRepository())

	counts, err := uc.StatusCounts(context.Background(), day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.ReceiptStatusCounts{Pending: 2, InProcess: 1, Completed: 1}
	if counts != want {
		t.Errorf("expected %+v, got %+v", want, counts)
	}
}

func TestStatusCounts_Error(t *testing.T) {
	t.Parallel()

	receiptRepo := mocks.NewMockReceiptRepository()
	receiptRepo.CountByStatusForDayFunc = func(context.Context, time.Time) (map[domain.ReceiptStatus]int64, error) {
		return nil, errors.New("timeout")
	}

	uc := newDashboardUseCase(mocks.NewMockCatalogRepository(), receiptRepo, mocks.NewMockExpenseRepository())

	counts, err := uc.StatusCounts(context.Background(), time.Now())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if counts != (domain.ReceiptStatusCounts{}) {
		t.Errorf("expected zero counts alongside the error, got %+v", counts)
	}
}

func seedReceipt(t *testing.T, repo *mocks.MockReceiptRepository, r *domain.Receipt) {
	t.Helper()
	if r.Subtotal.IsZero() {
		r.Subtotal = r.Total
	}
	if err := repo.Create(context.Background(), r); err != nil {
		t.Fatalf("seed receipt: %v", err)
	}
}

func seedExpense(t *testing.T, repo *mocks.MockExpenseRepository, e *domain.Expense) {
	t.Helper()
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("seed expense: %v", err)
	}
}
