package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxConceptLength = 255
	MaxNotesLength   = 2048
	MaxReceiptAmount = "100000000" // 100 million, well above any single order
	DefaultPageSize  = 50
	MaxPageSize      = 1000
)

// ValidateReceiptAmounts verifies the arithmetic invariants of a receipt:
// non-negative subtotal and discount, discount not exceeding subtotal, and
// total = subtotal - discount.
func ValidateReceiptAmounts(subtotal, discount, total decimal.Decimal) error {
	if subtotal.IsNegative() || discount.IsNegative() {
		return ErrInvalidAmount
	}
	if discount.GreaterThan(subtotal) {
		return ErrDiscountExceedsSubtotal
	}
	maxAmount, _ := decimal.NewFromString(MaxReceiptAmount)
	if subtotal.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: subtotal exceeds %s", ErrInvalidAmount, MaxReceiptAmount)
	}
	if !total.Equal(subtotal.Sub(discount)) {
		return ErrTotalMismatch
	}
	return nil
}

// ValidateAmount checks a payment, expense or operation amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateConcept checks a manual operation concept line.
func ValidateConcept(concept string) error {
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return fmt.Errorf("%w: concept cannot be empty", ErrInvalidConcept)
	}
	if len(concept) > MaxConceptLength {
		return fmt.Errorf("%w: concept exceeds %d characters", ErrInvalidConcept, MaxConceptLength)
	}
	return nil
}

// ValidatePagination clamps pagination parameters to sane bounds.
func ValidatePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
