package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/adapter/repository/postgres"
	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/usecase"
	"github.com/clinilab/clinilab/tests/testutil"
)

func newReceiptUseCase(db *testutil.TestDB) *usecase.ReceiptUseCase {
	receiptRepo := postgres.NewReceiptRepository(db.Pool)
	txManager := postgres.NewTxManager(db.Pool)
	idGen := postgres.NewULIDGenerator()
	return usecase.NewReceiptUseCase(txManager, receiptRepo, idGen, nil)
}

func TestReceiptLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	branchID := testDB.CreateTestBranch(ctx, "central")
	uc := newReceiptUseCase(testDB)

	receipt, err := uc.CreateReceipt(ctx, usecase.CreateReceiptInput{
		BranchID: branchID,
		Subtotal: decimal.NewFromInt(250),
		Discount: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("failed to create receipt: %v", err)
	}
	if !receipt.Total.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected total 200, got %s", receipt.Total)
	}
	if receipt.Status != domain.ReceiptStatusPending {
		t.Fatalf("expected pending, got %s", receipt.Status)
	}

	// Partial payment keeps the receipt pending
	paid, err := uc.RecordPayment(ctx, receipt.ID, decimal.NewFromInt(80))
	if err != nil {
		t.Fatalf("failed to record payment: %v", err)
	}
	if paid.Status != domain.ReceiptStatusPending {
		t.Fatalf("expected pending after partial payment, got %s", paid.Status)
	}
	if !paid.Due.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("expected due 120, got %s", paid.Due)
	}

	// Settling the remainder completes the receipt
	settled, err := uc.RecordPayment(ctx, receipt.ID, decimal.NewFromInt(120))
	if err != nil {
		t.Fatalf("failed to settle receipt: %v", err)
	}
	if settled.Status != domain.ReceiptStatusCompleted {
		t.Fatalf("expected completed, got %s", settled.Status)
	}
	if !settled.Due.IsZero() {
		t.Fatalf("expected zero due, got %s", settled.Due)
	}

	// Completed receipts accept no further payments
	if _, err := uc.RecordPayment(ctx, receipt.ID, decimal.NewFromInt(1)); !errors.Is(err, domain.ErrReceiptNotPayable) {
		t.Fatalf("expected ErrReceiptNotPayable, got %v", err)
	}
}

func TestReceiptOverpaymentRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	branchID := testDB.CreateTestBranch(ctx, "central")
	uc := newReceiptUseCase(testDB)

	receipt, err := uc.CreateReceipt(ctx, usecase.CreateReceiptInput{
		BranchID: branchID,
		Subtotal: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("failed to create receipt: %v", err)
	}

	if _, err := uc.RecordPayment(ctx, receipt.ID, decimal.NewFromInt(150)); !errors.Is(err, domain.ErrPaymentExceedsDue) {
		t.Fatalf("expected ErrPaymentExceedsDue, got %v", err)
	}

	// The failed payment must not have touched the stored amounts
	stored, err := uc.GetReceipt(ctx, receipt.ID)
	if err != nil {
		t.Fatalf("failed to reload receipt: %v", err)
	}
	if !stored.Paid.IsZero() {
		t.Fatalf("expected paid to stay zero, got %s", stored.Paid)
	}
}

func TestReceiptStatusTransitions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	branchID := testDB.CreateTestBranch(ctx, "central")
	uc := newReceiptUseCase(testDB)

	receipt, err := uc.CreateReceipt(ctx, usecase.CreateReceiptInput{
		BranchID: branchID,
		Subtotal: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("failed to create receipt: %v", err)
	}

	// pending -> in_process -> cancelled is a valid path
	if _, err := uc.UpdateStatus(ctx, receipt.ID, domain.ReceiptStatusInProcess); err != nil {
		t.Fatalf("failed to move to in_process: %v", err)
	}
	if _, err := uc.UpdateStatus(ctx, receipt.ID, domain.ReceiptStatusCancelled); err != nil {
		t.Fatalf("failed to cancel: %v", err)
	}

	// cancelled is terminal
	if _, err := uc.UpdateStatus(ctx, receipt.ID, domain.ReceiptStatusCompleted); !errors.Is(err, domain.ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
}
