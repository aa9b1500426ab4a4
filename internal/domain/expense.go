package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a branch-dated outgoing payment with a category reference.
// Created manually; mutable only through the edit flow.
type Expense struct {
	ID          string
	BranchID    string
	CategoryID  string
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
