package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType distinguishes manual cash inflows from outflows.
type OperationType string

const (
	OperationIngress OperationType = "ingress"
	OperationEgress  OperationType = "egress"
)

// Valid reports whether t is a known operation type.
func (t OperationType) Valid() bool {
	return t == OperationIngress || t == OperationEgress
}

// Operation is a manual ledger entry recorded by staff, outside the
// receipt and expense flows. Deletable, unlike receipts.
type Operation struct {
	ID            string
	BranchID      string
	EmployeeID    string
	Date          time.Time
	Concept       string
	Amount        decimal.Decimal
	Type          OperationType
	PaymentMethod string
	CreatedAt     time.Time
}
