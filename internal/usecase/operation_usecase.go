package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/infrastructure/metrics"
)

// OperationUseCase handles manual ingress/egress ledger entries.
type OperationUseCase struct {
	operationRepo OperationRepository
	idGen         IDGenerator
	metrics       *metrics.Metrics
}

// NewOperationUseCase creates a new OperationUseCase. metrics may be nil.
func NewOperationUseCase(operationRepo OperationRepository, idGen IDGenerator, metrics *metrics.Metrics) *OperationUseCase {
	return &OperationUseCase{
		operationRepo: operationRepo,
		idGen:         idGen,
		metrics:       metrics,
	}
}

// CreateOperationInput represents input for a manual ledger entry.
type CreateOperationInput struct {
	BranchID      string
	EmployeeID    string
	Date          time.Time
	Concept       string
	Amount        decimal.Decimal
	Type          domain.OperationType
	PaymentMethod string
}

// CreateOperation records a manual ingress or egress.
func (uc *OperationUseCase) CreateOperation(ctx context.Context, input CreateOperationInput) (*domain.Operation, error) {
	if input.BranchID == "" {
		return nil, domain.ErrBranchRequired
	}
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidOperationType
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := domain.ValidateConcept(input.Concept); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	operation := &domain.Operation{
		ID:            uc.idGen.Generate(),
		BranchID:      input.BranchID,
		EmployeeID:    input.EmployeeID,
		Date:          date,
		Concept:       input.Concept,
		Amount:        input.Amount,
		Type:          input.Type,
		PaymentMethod: input.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}

	if err := uc.operationRepo.Create(ctx, operation); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.OperationsCreated.WithLabelValues(string(operation.Type)).Inc()
	}

	return operation, nil
}

// DeleteOperation removes a manual entry. Unlike receipts, operations are
// hard-deleted.
func (uc *OperationUseCase) DeleteOperation(ctx context.Context, id string) error {
	if _, err := uc.operationRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := uc.operationRepo.Delete(ctx, id); err != nil {
		return err
	}
	if uc.metrics != nil {
		uc.metrics.OperationsDeleted.Inc()
	}
	return nil
}

// ListOperations lists operations matching the filter.
func (uc *OperationUseCase) ListOperations(ctx context.Context, filter DayFilter) ([]*domain.Operation, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)
	return uc.operationRepo.List(ctx, filter)
}
