package domain

import "github.com/shopspring/decimal"

// DashboardStats holds the catalog row counts shown on the dashboard tiles.
type DashboardStats struct {
	PatientsCount  int64
	ServicesCount  int64
	ProvidersCount int64
	DoctorsCount   int64
}

// FinancialSummary is the same-day income/expense figure for the dashboard.
// Balance is always TotalIncome minus TotalExpenses.
type FinancialSummary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
}

// ZeroFinancialSummary returns an all-zero summary, the degraded value the
// dashboard falls back to when the data layer is unavailable.
func ZeroFinancialSummary() FinancialSummary {
	return FinancialSummary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Balance:       decimal.Zero,
	}
}

// ReceiptStatusCounts groups same-day receipts into the three operational
// buckets. Cancelled and converted receipts belong to none of them.
type ReceiptStatusCounts struct {
	Pending   int64
	InProcess int64
	Completed int64
}
