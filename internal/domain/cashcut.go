package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashCut is a reconciliation snapshot for a branch. Append-only: a cut is
// never mutated after creation, and nothing prevents two cuts for the same
// branch and day.
type CashCut struct {
	ID                string
	BranchID          string
	UserID            string
	CutAt             time.Time
	InitialBalance    decimal.Decimal
	FinalBalance      decimal.Decimal
	CalculatedBalance decimal.Decimal
	Difference        decimal.Decimal
	Notes             string
	CreatedAt         time.Time
}

// CashCutSummary is the computed reconciliation figure for a branch and day.
type CashCutSummary struct {
	BranchID          string
	Day               time.Time
	InitialCash       decimal.Decimal
	TotalIngress      decimal.Decimal
	TotalEgress       decimal.Decimal
	CalculatedBalance decimal.Decimal
	ReceiptCount      int
	ExpenseCount      int
	OperationCount    int
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BuildCashCutSummary filters the loaded collections down to the given
// branch and calendar day and reduces them into the reconciliation figures:
//
//	ingress = sum(receipt.paid) + sum(ingress operation amounts)
//	egress  = sum(expense.amount) + sum(egress operation amounts)
//	calculated = initialCash + ingress - egress
//
// The collections are the raw rows a reconciliation screen loads once; the
// function itself performs no I/O.
func BuildCashCutSummary(
	branchID string,
	day time.Time,
	initialCash decimal.Decimal,
	receipts []*Receipt,
	expenses []*Expense,
	operations []*Operation,
) CashCutSummary {
	summary := CashCutSummary{
		BranchID:     branchID,
		Day:          day,
		InitialCash:  initialCash,
		TotalIngress: decimal.Zero,
		TotalEgress:  decimal.Zero,
	}

	for _, r := range receipts {
		if r.BranchID != branchID || !SameDay(r.Date, day) {
			continue
		}
		summary.TotalIngress = summary.TotalIngress.Add(r.Paid)
		summary.ReceiptCount++
	}

	for _, e := range expenses {
		if e.BranchID != branchID || !SameDay(e.Date, day) {
			continue
		}
		summary.TotalEgress = summary.TotalEgress.Add(e.Amount)
		summary.ExpenseCount++
	}

	for _, op := range operations {
		if op.BranchID != branchID || !SameDay(op.Date, day) {
			continue
		}
		switch op.Type {
		case OperationIngress:
			summary.TotalIngress = summary.TotalIngress.Add(op.Amount)
		case OperationEgress:
			summary.TotalEgress = summary.TotalEgress.Add(op.Amount)
		}
		summary.OperationCount++
	}

	summary.CalculatedBalance = initialCash.Add(summary.TotalIngress).Sub(summary.TotalEgress)

	return summary
}
