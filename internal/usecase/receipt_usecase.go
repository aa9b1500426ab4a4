package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/infrastructure/metrics"
)

// ReceiptUseCase handles receipt business logic.
type ReceiptUseCase struct {
	txManager   TransactionManager
	receiptRepo ReceiptRepository
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewReceiptUseCase creates a new ReceiptUseCase. metrics may be nil.
func NewReceiptUseCase(txManager TransactionManager, receiptRepo ReceiptRepository, idGen IDGenerator, metrics *metrics.Metrics) *ReceiptUseCase {
	return &ReceiptUseCase{
		txManager:   txManager,
		receiptRepo: receiptRepo,
		idGen:       idGen,
		metrics:     metrics,
	}
}

// CreateReceiptInput represents input for creating a receipt.
type CreateReceiptInput struct {
	PatientID string
	BranchID  string
	Date      time.Time
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
}

// CreateReceipt creates a new pending receipt with nothing paid.
func (uc *ReceiptUseCase) CreateReceipt(ctx context.Context, input CreateReceiptInput) (*domain.Receipt, error) {
	if input.BranchID == "" {
		return nil, domain.ErrBranchRequired
	}

	total := input.Subtotal.Sub(input.Discount)
	if err := domain.ValidateReceiptAmounts(input.Subtotal, input.Discount, total); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	now := time.Now().UTC()
	receipt := &domain.Receipt{
		ID:        uc.idGen.Generate(),
		PatientID: input.PatientID,
		BranchID:  input.BranchID,
		Date:      date,
		Subtotal:  input.Subtotal,
		Discount:  input.Discount,
		Total:     total,
		Paid:      decimal.Zero,
		Due:       total,
		Status:    domain.ReceiptStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ReceiptsCreated.Inc()
	}

	return receipt, nil
}

// GetReceipt retrieves a receipt by ID.
func (uc *ReceiptUseCase) GetReceipt(ctx context.Context, id string) (*domain.Receipt, error) {
	return uc.receiptRepo.GetByID(ctx, id)
}

// ListReceipts lists receipts matching the filter.
func (uc *ReceiptUseCase) ListReceipts(ctx context.Context, filter ReceiptFilter) ([]*domain.Receipt, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)
	return uc.receiptRepo.List(ctx, filter)
}

// RecordPayment applies a payment to a receipt inside a transaction with a
// row lock, so concurrent payments cannot overshoot the total. A receipt
// whose due amount reaches zero moves to completed.
func (uc *ReceiptUseCase) RecordPayment(ctx context.Context, id string, amount decimal.Decimal) (*domain.Receipt, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	receipt, err := uc.receiptRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := receipt.ValidatePayment(amount); err != nil {
		return nil, err
	}

	paid, due := receipt.ApplyPayment(amount)
	status := receipt.Status
	if due.IsZero() {
		status = domain.ReceiptStatusCompleted
	}

	now := time.Now().UTC()
	if err := uc.receiptRepo.UpdatePayment(ctx, tx, id, paid, due, status, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	receipt.Paid = paid
	receipt.Due = due
	receipt.Status = status
	receipt.UpdatedAt = now

	if uc.metrics != nil {
		uc.metrics.PaymentsRecorded.Inc()
		uc.metrics.PaymentAmount.Observe(amount.InexactFloat64())
	}

	return receipt, nil
}

// UpdateStatus moves a receipt through its lifecycle. Receipts are never
// deleted; cancellation and conversion are terminal soft states.
func (uc *ReceiptUseCase) UpdateStatus(ctx context.Context, id string, to domain.ReceiptStatus) (*domain.Receipt, error) {
	if !to.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	receipt, err := uc.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !receipt.CanTransition(to) {
		return nil, domain.ErrInvalidStatusTransition
	}

	now := time.Now().UTC()
	if err := uc.receiptRepo.UpdateStatus(ctx, id, to, now); err != nil {
		return nil, err
	}

	receipt.Status = to
	receipt.UpdatedAt = now

	if uc.metrics != nil {
		uc.metrics.ReceiptStatusChanges.WithLabelValues(string(to)).Inc()
	}

	return receipt, nil
}
