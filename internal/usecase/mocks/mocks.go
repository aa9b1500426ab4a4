package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/usecase"
)

// MockReceiptRepository is a mock implementation of ReceiptRepository.
type MockReceiptRepository struct {
	mu       sync.RWMutex
	receipts map[string]*domain.Receipt

	CreateFunc                 func(ctx context.Context, receipt *domain.Receipt) error
	GetByIDFunc                func(ctx context.Context, id string) (*domain.Receipt, error)
	GetByIDForUpdateFunc       func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Receipt, error)
	UpdatePaymentFunc          func(ctx context.Context, tx usecase.Transaction, id string, paid, due decimal.Decimal, status domain.ReceiptStatus, updatedAt time.Time) error
	UpdateStatusFunc           func(ctx context.Context, id string, status domain.ReceiptStatus, updatedAt time.Time) error
	ListFunc                   func(ctx context.Context, filter usecase.ReceiptFilter) ([]*domain.Receipt, error)
	SumPaidByDayFunc           func(ctx context.Context, day time.Time) (decimal.Decimal, error)
	SumTotalByDayAndStatusFunc func(ctx context.Context, day time.Time, status domain.ReceiptStatus) (decimal.Decimal, error)
	CountByStatusForDayFunc    func(ctx context.Context, day time.Time) (map[domain.ReceiptStatus]int64, error)
}

func NewMockReceiptRepository() *MockReceiptRepository {
	return &MockReceiptRepository{
		receipts: make(map[string]*domain.Receipt),
	}
}

func (m *MockReceiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, receipt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receipts[receipt.ID] = receipt
	return nil
}

func (m *MockReceiptRepository) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.receipts[id]; ok {
		return r, nil
	}
	return nil, domain.ErrReceiptNotFound
}

func (m *MockReceiptRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Receipt, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockReceiptRepository) UpdatePayment(ctx context.Context, tx usecase.Transaction, id string, paid, due decimal.Decimal, status domain.ReceiptStatus, updatedAt time.Time) error {
	if m.UpdatePaymentFunc != nil {
		return m.UpdatePaymentFunc(ctx, tx, id, paid, due, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.receipts[id]; ok {
		r.Paid = paid
		r.Due = due
		r.Status = status
		r.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockReceiptRepository) UpdateStatus(ctx context.Context, id string, status domain.ReceiptStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.receipts[id]; ok {
		r.Status = status
		r.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockReceiptRepository) List(ctx context.Context, filter usecase.ReceiptFilter) ([]*domain.Receipt, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var receipts []*domain.Receipt
	for _, r := range m.receipts {
		if filter.BranchID != "" && r.BranchID != filter.BranchID {
			continue
		}
		if filter.Day != nil && !domain.SameDay(r.Date, *filter.Day) {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		receipts = append(receipts, r)
	}
	sort.Slice(receipts, func(i, j int) bool { return receipts[i].ID < receipts[j].ID })
	return receipts, nil
}

func (m *MockReceiptRepository) SumPaidByDay(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	if m.SumPaidByDayFunc != nil {
		return m.SumPaidByDayFunc(ctx, day)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, r := range m.receipts {
		if domain.SameDay(r.Date, day) {
			sum = sum.Add(r.Paid)
		}
	}
	return sum, nil
}

func (m *MockReceiptRepository) SumTotalByDayAndStatus(ctx context.Context, day time.Time, status domain.ReceiptStatus) (decimal.Decimal, error) {
	if m.SumTotalByDayAndStatusFunc != nil {
		return m.SumTotalByDayAndStatusFunc(ctx, day, status)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, r := range m.receipts {
		if domain.SameDay(r.Date, day) && r.Status == status {
			sum = sum.Add(r.Total)
		}
	}
	return sum, nil
}

func (m *MockReceiptRepository) CountByStatusForDay(ctx context.Context, day time.Time) (map[domain.ReceiptStatus]int64, error) {
	if m.CountByStatusForDayFunc != nil {
		return m.CountByStatusForDayFunc(ctx, day)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[domain.ReceiptStatus]int64)
	for _, r := range m.receipts {
		if domain.SameDay(r.Date, day) && r.Status.Operational() {
			counts[r.Status]++
		}
	}
	return counts, nil
}

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[string]*domain.Expense

	CreateFunc              func(ctx context.Context, expense *domain.Expense) error
	GetByIDFunc             func(ctx context.Context, id string) (*domain.Expense, error)
	UpdateFunc              func(ctx context.Context, expense *domain.Expense) error
	ListFunc                func(ctx context.Context, filter usecase.DayFilter) ([]*domain.Expense, error)
	SumByDayFunc            func(ctx context.Context, day time.Time) (decimal.Decimal, error)
	SumByDayAndCategoryFunc func(ctx context.Context, day time.Time, categoryID string) (decimal.Decimal, error)
}

func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		expenses: make(map[string]*domain.Expense),
	}
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses[expense.ID] = expense
	return nil
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.expenses[id]; ok {
		return e, nil
	}
	return nil, domain.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses[expense.ID] = expense
	return nil
}

func (m *MockExpenseRepository) List(ctx context.Context, filter usecase.DayFilter) ([]*domain.Expense, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var expenses []*domain.Expense
	for _, e := range m.expenses {
		if filter.BranchID != "" && e.BranchID != filter.BranchID {
			continue
		}
		if filter.Day != nil && !domain.SameDay(e.Date, *filter.Day) {
			continue
		}
		expenses = append(expenses, e)
	}
	sort.Slice(expenses, func(i, j int) bool { return expenses[i].ID < expenses[j].ID })
	return expenses, nil
}

func (m *MockExpenseRepository) SumByDay(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	if m.SumByDayFunc != nil {
		return m.SumByDayFunc(ctx, day)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, e := range m.expenses {
		if domain.SameDay(e.Date, day) {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (m *MockExpenseRepository) SumByDayAndCategory(ctx context.Context, day time.Time, categoryID string) (decimal.Decimal, error) {
	if m.SumByDayAndCategoryFunc != nil {
		return m.SumByDayAndCategoryFunc(ctx, day, categoryID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, e := range m.expenses {
		if domain.SameDay(e.Date, day) && e.CategoryID == categoryID {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

// MockOperationRepository is a mock implementation of OperationRepository.
type MockOperationRepository struct {
	mu         sync.RWMutex
	operations map[string]*domain.Operation

	CreateFunc  func(ctx context.Context, operation *domain.Operation) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Operation, error)
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context, filter usecase.DayFilter) ([]*domain.Operation, error)
}

func NewMockOperationRepository() *MockOperationRepository {
	return &MockOperationRepository{
		operations: make(map[string]*domain.Operation),
	}
}

func (m *MockOperationRepository) Create(ctx context.Context, operation *domain.Operation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, operation)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operations[operation.ID] = operation
	return nil
}

func (m *MockOperationRepository) GetByID(ctx context.Context, id string) (*domain.Operation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if op, ok := m.operations[id]; ok {
		return op, nil
	}
	return nil, domain.ErrOperationNotFound
}

func (m *MockOperationRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.operations, id)
	return nil
}

func (m *MockOperationRepository) List(ctx context.Context, filter usecase.DayFilter) ([]*domain.Operation, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var operations []*domain.Operation
	for _, op := range m.operations {
		if filter.BranchID != "" && op.BranchID != filter.BranchID {
			continue
		}
		if filter.Day != nil && !domain.SameDay(op.Date, *filter.Day) {
			continue
		}
		operations = append(operations, op)
	}
	sort.Slice(operations, func(i, j int) bool { return operations[i].ID < operations[j].ID })
	return operations, nil
}

// MockCashCutRepository is a mock implementation of CashCutRepository.
type MockCashCutRepository struct {
	mu   sync.RWMutex
	cuts []*domain.CashCut

	CreateFunc       func(ctx context.Context, cut *domain.CashCut) error
	ListByBranchFunc func(ctx context.Context, branchID string, limit, offset int) ([]*domain.CashCut, error)
}

func NewMockCashCutRepository() *MockCashCutRepository {
	return &MockCashCutRepository{}
}

func (m *MockCashCutRepository) Create(ctx context.Context, cut *domain.CashCut) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cut)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cuts = append(m.cuts, cut)
	return nil
}

func (m *MockCashCutRepository) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*domain.CashCut, error) {
	if m.ListByBranchFunc != nil {
		return m.ListByBranchFunc(ctx, branchID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var cuts []*domain.CashCut
	for _, c := range m.cuts {
		if c.BranchID == branchID {
			cuts = append(cuts, c)
		}
	}
	return cuts, nil
}

// Cuts returns the recorded snapshots for assertions.
func (m *MockCashCutRepository) Cuts() []*domain.CashCut {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.CashCut(nil), m.cuts...)
}

// MockCatalogRepository is a mock implementation of CatalogRepository.
type MockCatalogRepository struct {
	PatientsCount  int64
	ServicesCount  int64
	ProvidersCount int64
	DoctorsCount   int64

	CountPatientsFunc  func(ctx context.Context) (int64, error)
	CountServicesFunc  func(ctx context.Context) (int64, error)
	CountProvidersFunc func(ctx context.Context) (int64, error)
	CountDoctorsFunc   func(ctx context.Context) (int64, error)
	ListBranchesFunc   func(ctx context.Context, limit, offset int) ([]*domain.Branch, error)
	ListPatientsFunc   func(ctx context.Context, limit, offset int) ([]*domain.Patient, error)
	ListDoctorsFunc    func(ctx context.Context, limit, offset int) ([]*domain.Doctor, error)
	ListProvidersFunc  func(ctx context.Context, limit, offset int) ([]*domain.Provider, error)
	ListServicesFunc   func(ctx context.Context, limit, offset int) ([]*domain.Service, error)
}

func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{}
}

func (m *MockCatalogRepository) CountPatients(ctx context.Context) (int64, error) {
	if m.CountPatientsFunc != nil {
		return m.CountPatientsFunc(ctx)
	}
	return m.PatientsCount, nil
}

func (m *MockCatalogRepository) CountServices(ctx context.Context) (int64, error) {
	if m.CountServicesFunc != nil {
		return m.CountServicesFunc(ctx)
	}
	return m.ServicesCount, nil
}

func (m *MockCatalogRepository) CountProviders(ctx context.Context) (int64, error) {
	if m.CountProvidersFunc != nil {
		return m.CountProvidersFunc(ctx)
	}
	return m.ProvidersCount, nil
}

func (m *MockCatalogRepository) CountDoctors(ctx context.Context) (int64, error) {
	if m.CountDoctorsFunc != nil {
		return m.CountDoctorsFunc(ctx)
	}
	return m.DoctorsCount, nil
}

func (m *MockCatalogRepository) ListBranches(ctx context.Context, limit, offset int) ([]*domain.Branch, error) {
	if m.ListBranchesFunc != nil {
		return m.ListBranchesFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockCatalogRepository) ListPatients(ctx context.Context, limit, offset int) ([]*domain.Patient, error) {
	if m.ListPatientsFunc != nil {
		return m.ListPatientsFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockCatalogRepository) ListDoctors(ctx context.Context, limit, offset int) ([]*domain.Doctor, error) {
	if m.ListDoctorsFunc != nil {
		return m.ListDoctorsFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockCatalogRepository) ListProviders(ctx context.Context, limit, offset int) ([]*domain.Provider, error) {
	if m.ListProvidersFunc != nil {
		return m.ListProvidersFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockCatalogRepository) ListServices(ctx context.Context, limit, offset int) ([]*domain.Service, error) {
	if m.ListServicesFunc != nil {
		return m.ListServicesFunc(ctx, limit, offset)
	}
	return nil, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string

	mu   sync.Mutex
	next int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("mock-id-%04d", m.next)
}

// MockTransaction is a no-op transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockRetrier executes the operation once, without backoff.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}
