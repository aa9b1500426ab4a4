package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/clinilab/clinilab/internal/domain"
)

// DashboardUseCase computes the aggregates behind the dashboard tiles.
// Every method returns the aggregate together with an error; the degrade-
// to-zero policy lives at the HTTP composition layer, not here, so callers
// that need the failure still see it.
type DashboardUseCase struct {
	catalogRepo CatalogRepository
	receiptRepo ReceiptRepository
	expenseRepo ExpenseRepository
	cache       Cache
	retrier     Retrier
	cacheTTL    time.Duration

	// extraExpenseCategoryID is the category that is summed a second time
	// on top of the all-expenses total. Downstream reports are built on
	// the doubled figure.
	extraExpenseCategoryID string
}

// NewDashboardUseCase creates a new DashboardUseCase. cache and retrier may
// be nil, in which case aggregates are always computed directly and queries
// run without retry. A non-positive cacheTTL falls back to
// DashboardCacheTTL.
func NewDashboardUseCase(
	catalogRepo CatalogRepository,
	receiptRepo ReceiptRepository,
	expenseRepo ExpenseRepository,
	cache Cache,
	retrier Retrier,
	cacheTTL time.Duration,
	extraExpenseCategoryID string,
) *DashboardUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DashboardCacheTTL
	}
	return &DashboardUseCase{
		catalogRepo:            catalogRepo,
		receiptRepo:            receiptRepo,
		expenseRepo:            expenseRepo,
		cache:                  cache,
		retrier:                retrier,
		cacheTTL:               cacheTTL,
		extraExpenseCategoryID: extraExpenseCategoryID,
	}
}

// Stats returns the catalog row counts. The four counts are independent
// queries fanned out concurrently; they are not a consistent snapshot,
// which is acceptable for dashboard tiles.
func (uc *DashboardUseCase) Stats(ctx context.Context) (domain.DashboardStats, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, cacheKeyStats); err == nil {
			var cached domain.DashboardStats
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	var stats domain.DashboardStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.PatientsCount, err = uc.count(gctx, uc.catalogRepo.CountPatients)
		return err
	})
	g.Go(func() (err error) {
		stats.ServicesCount, err = uc.count(gctx, uc.catalogRepo.CountServices)
		return err
	})
	g.Go(func() (err error) {
		stats.ProvidersCount, err = uc.count(gctx, uc.catalogRepo.CountProviders)
		return err
	})
	g.Go(func() (err error) {
		stats.DoctorsCount, err = uc.count(gctx, uc.catalogRepo.CountDoctors)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.DashboardStats{}, err
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			_ = uc.cache.Set(ctx, cacheKeyStats, raw, uc.cacheTTL)
		}
	}

	return stats, nil
}

// FinancialSummary computes the income/expense figure for the given day.
// A zero day means "now" in server-local time.
//
// Income is the sum of paid amounts over the day's receipts plus the sum of
// totals over the day's completed receipts. The second term double-counts
// whenever a completed receipt is fully paid; the reconciliation reports
// are built on the doubled figure, so it must not be corrected here.
// Expenses follow the same pattern: all expenses plus the configured extra
// category a second time.
func (uc *DashboardUseCase) FinancialSummary(ctx context.Context, day time.Time) (domain.FinancialSummary, error) {
	if day.IsZero() {
		day = time.Now()
	}

	paid := decimal.Zero
	completedTotal := decimal.Zero
	allExpenses := decimal.Zero
	extraExpenses := decimal.Zero

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return uc.retry(gctx, func() (err error) {
			paid, err = uc.receiptRepo.SumPaidByDay(gctx, day)
			return err
		})
	})
	g.Go(func() error {
		return uc.retry(gctx, func() (err error) {
			completedTotal, err = uc.receiptRepo.SumTotalByDayAndStatus(gctx, day, domain.ReceiptStatusCompleted)
			return err
		})
	})
	g.Go(func() error {
		return uc.retry(gctx, func() (err error) {
			allExpenses, err = uc.expenseRepo.SumByDay(gctx, day)
			return err
		})
	})
	g.Go(func() error {
		return uc.retry(gctx, func() (err error) {
			extraExpenses, err = uc.expenseRepo.SumByDayAndCategory(gctx, day, uc.extraExpenseCategoryID)
			return err
		})
	})
	if err := g.Wait(); err != nil {
		return domain.ZeroFinancialSummary(), err
	}

	income := paid.Add(completedTotal)
	expenses := allExpenses.Add(extraExpenses)

	return domain.FinancialSummary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}, nil
}

// StatusCounts groups the day's receipts into the three operational
// buckets. Missing buckets report zero; cancelled and converted receipts
// appear in none of them.
func (uc *DashboardUseCase) StatusCounts(ctx context.Context, day time.Time) (domain.ReceiptStatusCounts, error) {
	if day.IsZero() {
		day = time.Now()
	}

	var byStatus map[domain.ReceiptStatus]int64
	err := uc.retry(ctx, func() (err error) {
		byStatus, err = uc.receiptRepo.CountByStatusForDay(ctx, day)
		return err
	})
	if err != nil {
		return domain.ReceiptStatusCounts{}, err
	}

	return domain.ReceiptStatusCounts{
		Pending:   byStatus[domain.ReceiptStatusPending],
		InProcess: byStatus[domain.ReceiptStatusInProcess],
		Completed: byStatus[domain.ReceiptStatusCompleted],
	}, nil
}

func (uc *DashboardUseCase) count(ctx context.Context, fn func(context.Context) (int64, error)) (int64, error) {
	var n int64
	err := uc.retry(ctx, func() (err error) {
		n, err = fn(ctx)
		return err
	})
	return n, err
}

func (uc *DashboardUseCase) retry(ctx context.Context, op func() error) error {
	if uc.retrier == nil {
		return op()
	}
	return uc.retrier.Retry(ctx, op)
}
