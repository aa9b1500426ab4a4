package domain

import "errors"

var (
	// Receipt errors
	ErrReceiptNotFound         = errors.New("receipt not found")
	ErrReceiptNotPayable       = errors.New("receipt does not accept payments in its current status")
	ErrPaymentExceedsDue       = errors.New("payment exceeds the receipt due amount")
	ErrInvalidStatusTransition = errors.New("invalid receipt status transition")
	ErrInvalidStatus           = errors.New("unknown receipt status")
	ErrTotalMismatch           = errors.New("total must equal subtotal minus discount")
	ErrDiscountExceedsSubtotal = errors.New("discount cannot exceed subtotal")

	// Expense / operation errors
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrOperationNotFound    = errors.New("operation not found")
	ErrInvalidOperationType = errors.New("operation type must be ingress or egress")
	ErrInvalidConcept       = errors.New("invalid concept")

	// Cash-cut errors
	ErrCashCutNotFound     = errors.New("cash cut not found")
	ErrNegativeInitialCash = errors.New("initial cash must not be negative")

	// Shared
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrBranchRequired = errors.New("branch is required")
)
