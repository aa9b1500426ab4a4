package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinilab/clinilab/internal/domain"
)

func TestReceiptFromDomain(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	receipt := &domain.Receipt{
		ID:        "r1",
		PatientID: "p1",
		BranchID:  "b1",
		Date:      now,
		Subtotal:  decimal.NewFromInt(200),
		Discount:  decimal.NewFromInt(50),
		Total:     decimal.NewFromInt(150),
		Paid:      decimal.NewFromInt(100),
		Due:       decimal.NewFromInt(50),
		Status:    domain.ReceiptStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	got := ReceiptFromDomain(receipt)

	assert.Equal(t, "r1", got.ID)
	assert.Equal(t, "pending", got.Status)
	assert.True(t, got.Due.Equal(decimal.NewFromInt(50)))
}

func TestDashboardStatsResponseJSON(t *testing.T) {
	resp := DashboardStatsFromDomain(domain.DashboardStats{
		PatientsCount:  12,
		ServicesCount:  7,
		ProvidersCount: 3,
		DoctorsCount:   5,
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var fields map[string]int64
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Equal(t, int64(12), fields["patients_count"])
	assert.Equal(t, int64(7), fields["services_count"])
	assert.Equal(t, int64(3), fields["providers_count"])
	assert.Equal(t, int64(5), fields["doctors_count"])
}

func TestZeroFinancialSummaryResponse(t *testing.T) {
	resp := ZeroFinancialSummaryResponse()

	assert.True(t, resp.TotalIncome.IsZero())
	assert.True(t, resp.TotalExpenses.IsZero())
	assert.True(t, resp.Balance.IsZero())

	// Zero decimals must serialize as "0", not null.
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_income":"0","total_expenses":"0","balance":"0"}`, string(raw))
}

func TestCashCutSummaryFromDomain(t *testing.T) {
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	summary := domain.CashCutSummary{
		BranchID:          "b1",
		Day:               day,
		InitialCash:       decimal.NewFromInt(100),
		TotalIngress:      decimal.NewFromInt(470),
		TotalEgress:       decimal.NewFromInt(115),
		CalculatedBalance: decimal.NewFromInt(455),
		ReceiptCount:      2,
		ExpenseCount:      1,
		OperationCount:    2,
	}

	got := CashCutSummaryFromDomain(summary)

	assert.Equal(t, "b1", got.BranchID)
	assert.True(t, got.CalculatedBalance.Equal(decimal.NewFromInt(455)))
	assert.Equal(t, 2, got.ReceiptCount)
}

func TestReceiptsFromDomainEmpty(t *testing.T) {
	got := ReceiptsFromDomain(nil)

	require.NotNil(t, got)
	assert.Len(t, got, 0)
}
