package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/domain"
)

func TestReceipt_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		from domain.ReceiptStatus
		to   domain.ReceiptStatus
		want bool
	}{
		{"pending to in_process", domain.ReceiptStatusPending, domain.ReceiptStatusInProcess, true},
		{"pending to cancelled", domain.ReceiptStatusPending, domain.ReceiptStatusCancelled, true},
		{"pending to converted", domain.ReceiptStatusPending, domain.ReceiptStatusConverted, true},
		{"pending to completed", domain.ReceiptStatusPending, domain.ReceiptStatusCompleted, false},
		{"in_process to completed", domain.ReceiptStatusInProcess, domain.ReceiptStatusCompleted, true},
		{"in_process to cancelled", domain.ReceiptStatusInProcess, domain.ReceiptStatusCancelled, true},
		{"in_process to converted", domain.ReceiptStatusInProcess, domain.ReceiptStatusConverted, false},
		{"completed is terminal", domain.ReceiptStatusCompleted, domain.ReceiptStatusPending, false},
		{"cancelled is terminal", domain.ReceiptStatusCancelled, domain.ReceiptStatusInProcess, false},
		{"converted is terminal", domain.ReceiptStatusConverted, domain.ReceiptStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &domain.Receipt{Status: tt.from}
			if got := r.CanTransition(tt.to); got != tt.want {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestReceiptStatus_Operational(t *testing.T) {
	operational := []domain.ReceiptStatus{
		domain.ReceiptStatusPending,
		domain.ReceiptStatusInProcess,
		domain.ReceiptStatusCompleted,
	}
	for _, s := range operational {
		if !s.Operational() {
			t.Errorf("expected %s to be operational", s)
		}
	}

	excluded := []domain.ReceiptStatus{
		domain.ReceiptStatusCancelled,
		domain.ReceiptStatusConverted,
	}
	for _, s := range excluded {
		if s.Operational() {
			t.Errorf("expected %s to be excluded from operational buckets", s)
		}
	}
}

func TestReceipt_ValidatePayment(t *testing.T) {
	receipt := &domain.Receipt{
		Status: domain.ReceiptStatusPending,
		Total:  decimal.NewFromInt(200),
		Paid:   decimal.NewFromInt(150),
	}

	if err := receipt.ValidatePayment(decimal.NewFromInt(50)); err != nil {
		t.Errorf("expected exact payoff to be valid, got %v", err)
	}
	if err := receipt.ValidatePayment(decimal.NewFromInt(51)); err != domain.ErrPaymentExceedsDue {
		t.Errorf("expected ErrPaymentExceedsDue, got %v", err)
	}
	if err := receipt.ValidatePayment(decimal.Zero); err != domain.ErrInvalidAmount {
		t.Errorf("expected ErrInvalidAmount for zero payment, got %v", err)
	}

	receipt.Status = domain.ReceiptStatusCancelled
	if err := receipt.ValidatePayment(decimal.NewFromInt(10)); err != domain.ErrReceiptNotPayable {
		t.Errorf("expected ErrReceiptNotPayable, got %v", err)
	}
}

func TestReceipt_ApplyPayment(t *testing.T) {
	receipt := &domain.Receipt{
		Total: decimal.NewFromInt(300),
		Paid:  decimal.NewFromInt(100),
	}

	paid, due := receipt.ApplyPayment(decimal.NewFromInt(150))
	if !paid.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected paid 250, got %s", paid)
	}
	if !due.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected due 50, got %s", due)
	}
}

func TestValidateReceiptAmounts(t *testing.T) {
	tests := []struct {
		name               string
		subtotal, discount string
		total              string
		wantErr            error
	}{
		{"valid", "100", "10", "90", nil},
		{"zero discount", "100", "0", "100", nil},
		{"mismatched total", "100", "10", "100", domain.ErrTotalMismatch},
		{"discount over subtotal", "100", "150", "-50", domain.ErrDiscountExceedsSubtotal},
		{"negative subtotal", "-1", "0", "-1", domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateReceiptAmounts(dec(tt.subtotal), dec(tt.discount), dec(tt.total))
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && err != tt.wantErr {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
