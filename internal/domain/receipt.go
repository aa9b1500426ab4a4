package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptStatus is the lifecycle state of a receipt.
type ReceiptStatus string

const (
	ReceiptStatusPending   ReceiptStatus = "pending"
	ReceiptStatusInProcess ReceiptStatus = "in_process"
	ReceiptStatusCompleted ReceiptStatus = "completed"
	ReceiptStatusCancelled ReceiptStatus = "cancelled"
	ReceiptStatusConverted ReceiptStatus = "converted"
)

// Valid reports whether s is a known receipt status.
func (s ReceiptStatus) Valid() bool {
	switch s {
	case ReceiptStatusPending, ReceiptStatusInProcess, ReceiptStatusCompleted,
		ReceiptStatusCancelled, ReceiptStatusConverted:
		return true
	}
	return false
}

// Operational reports whether the status counts toward the operational
// dashboard buckets. Cancelled and converted receipts are excluded.
func (s ReceiptStatus) Operational() bool {
	switch s {
	case ReceiptStatusPending, ReceiptStatusInProcess, ReceiptStatusCompleted:
		return true
	}
	return false
}

// Receipt represents a billable patient service order tied to a branch.
// Receipts are never physically deleted; cancellation and quote conversion
// are soft states.
type Receipt struct {
	ID        string
	PatientID string
	BranchID  string
	Date      time.Time
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	Paid      decimal.Decimal
	Due       decimal.Decimal
	Status    ReceiptStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// receiptTransitions holds the allowed status transitions.
var receiptTransitions = map[ReceiptStatus][]ReceiptStatus{
	ReceiptStatusPending:   {ReceiptStatusInProcess, ReceiptStatusCancelled, ReceiptStatusConverted},
	ReceiptStatusInProcess: {ReceiptStatusCompleted, ReceiptStatusCancelled},
}

// CanTransition reports whether the receipt may move to the given status.
func (r *Receipt) CanTransition(to ReceiptStatus) bool {
	for _, allowed := range receiptTransitions[r.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Payable reports whether payments may still be recorded on the receipt.
func (r *Receipt) Payable() bool {
	return r.Status == ReceiptStatusPending || r.Status == ReceiptStatusInProcess
}

// ValidatePayment checks whether amount can be applied to the receipt.
func (r *Receipt) ValidatePayment(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if !r.Payable() {
		return ErrReceiptNotPayable
	}
	if r.Paid.Add(amount).GreaterThan(r.Total) {
		return ErrPaymentExceedsDue
	}
	return nil
}

// ApplyPayment returns the paid and due figures after applying amount.
func (r *Receipt) ApplyPayment(amount decimal.Decimal) (paid, due decimal.Decimal) {
	paid = r.Paid.Add(amount)
	due = r.Total.Sub(paid)
	return paid, due
}
