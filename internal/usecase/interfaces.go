package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/domain"
)

// ReceiptFilter narrows receipt listings.
type ReceiptFilter struct {
	BranchID string
	Day      *time.Time
	Status   domain.ReceiptStatus
	Limit    int
	Offset   int
}

// DayFilter narrows expense and operation listings.
type DayFilter struct {
	BranchID string
	Day      *time.Time
	Limit    int
	Offset   int
}

// ReceiptRepository defines data access for receipts.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.Receipt) error
	GetByID(ctx context.Context, id string) (*domain.Receipt, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Receipt, error)
	UpdatePayment(ctx context.Context, tx Transaction, id string, paid, due decimal.Decimal, status domain.ReceiptStatus, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, id string, status domain.ReceiptStatus, updatedAt time.Time) error
	List(ctx context.Context, filter ReceiptFilter) ([]*domain.Receipt, error)
	SumPaidByDay(ctx context.Context, day time.Time) (decimal.Decimal, error)
	SumTotalByDayAndStatus(ctx context.Context, day time.Time, status domain.ReceiptStatus) (decimal.Decimal, error)
	CountByStatusForDay(ctx context.Context, day time.Time) (map[domain.ReceiptStatus]int64, error)
}

// ExpenseRepository defines data access for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	List(ctx context.Context, filter DayFilter) ([]*domain.Expense, error)
	SumByDay(ctx context.Context, day time.Time) (decimal.Decimal, error)
	SumByDayAndCategory(ctx context.Context, day time.Time, categoryID string) (decimal.Decimal, error)
}

// OperationRepository defines data access for manual cash operations.
type OperationRepository interface {
	Create(ctx context.Context, operation *domain.Operation) error
	GetByID(ctx context.Context, id string) (*domain.Operation, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter DayFilter) ([]*domain.Operation, error)
}

// CashCutRepository defines data access for reconciliation snapshots.
type CashCutRepository interface {
	Create(ctx context.Context, cut *domain.CashCut) error
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*domain.CashCut, error)
}

// CatalogRepository defines data access for lookup entities and their counts.
type CatalogRepository interface {
	CountPatients(ctx context.Context) (int64, error)
	CountServices(ctx context.Context) (int64, error)
	CountProviders(ctx context.Context) (int64, error)
	CountDoctors(ctx context.Context) (int64, error)
	ListBranches(ctx context.Context, limit, offset int) ([]*domain.Branch, error)
	ListPatients(ctx context.Context, limit, offset int) ([]*domain.Patient, error)
	ListDoctors(ctx context.Context, limit, offset int) ([]*domain.Doctor, error)
	ListProviders(ctx context.Context, limit, offset int) ([]*domain.Provider, error)
	ListServices(ctx context.Context, limit, offset int) ([]*domain.Service, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// Retrier retries an operation on transient data-layer failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}
