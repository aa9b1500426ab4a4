package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/domain"
)

// ReceiptResponse represents a receipt in API responses.
type ReceiptResponse struct {
	ID        string          `json:"id"`
	PatientID string          `json:"patient_id"`
	BranchID  string          `json:"branch_id"`
	Date      time.Time       `json:"date"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	Paid      decimal.Decimal `json:"paid"`
	Due       decimal.Decimal `json:"due"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ReceiptFromDomain converts a domain receipt to a response.
func ReceiptFromDomain(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:        r.ID,
		PatientID: r.PatientID,
		BranchID:  r.BranchID,
		Date:      r.Date,
		Subtotal:  r.Subtotal,
		Discount:  r.Discount,
		Total:     r.Total,
		Paid:      r.Paid,
		Due:       r.Due,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ReceiptsFromDomain converts a slice of domain receipts.
func ReceiptsFromDomain(receipts []*domain.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, len(receipts))
	for i, r := range receipts {
		out[i] = ReceiptFromDomain(r)
	}
	return out
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	BranchID    string          `json:"branch_id"`
	CategoryID  string          `json:"category_id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ExpenseFromDomain converts a domain expense to a response.
func ExpenseFromDomain(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		BranchID:    e.BranchID,
		CategoryID:  e.CategoryID,
		Date:        e.Date,
		Amount:      e.Amount,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ExpensesFromDomain converts a slice of domain expenses.
func ExpensesFromDomain(expenses []*domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ExpenseFromDomain(e)
	}
	return out
}

// OperationResponse represents a manual operation in API responses.
type OperationResponse struct {
	ID            string          `json:"id"`
	BranchID      string          `json:"branch_id"`
	EmployeeID    string          `json:"employee_id"`
	Date          time.Time       `json:"date"`
	Concept       string          `json:"concept"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OperationFromDomain converts a domain operation to a response.
func OperationFromDomain(o *domain.Operation) OperationResponse {
	return OperationResponse{
		ID:            o.ID,
		BranchID:      o.BranchID,
		EmployeeID:    o.EmployeeID,
		Date:          o.Date,
		Concept:       o.Concept,
		Amount:        o.Amount,
		Type:          string(o.Type),
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
	}
}

// OperationsFromDomain converts a slice of domain operations.
func OperationsFromDomain(operations []*domain.Operation) []OperationResponse {
	out := make([]OperationResponse, len(operations))
	for i, o := range operations {
		out[i] = OperationFromDomain(o)
	}
	return out
}

// CashCutResponse represents a persisted cash cut in API responses.
type CashCutResponse struct {
	ID                string          `json:"id"`
	BranchID          string          `json:"branch_id"`
	UserID            string          `json:"user_id"`
	CutAt             time.Time       `json:"cut_at"`
	InitialBalance    decimal.Decimal `json:"initial_balance"`
	FinalBalance      decimal.Decimal `json:"final_balance"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	Difference        decimal.Decimal `json:"difference"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
}

// CashCutFromDomain converts a domain cash cut to a response.
func CashCutFromDomain(c *domain.CashCut) CashCutResponse {
	return CashCutResponse{
		ID:                c.ID,
		BranchID:          c.BranchID,
		UserID:            c.UserID,
		CutAt:             c.CutAt,
		InitialBalance:    c.InitialBalance,
		FinalBalance:      c.FinalBalance,
		CalculatedBalance: c.CalculatedBalance,
		Difference:        c.Difference,
		Notes:             c.Notes,
		CreatedAt:         c.CreatedAt,
	}
}

// CashCutsFromDomain converts a slice of domain cash cuts.
func CashCutsFromDomain(cuts []*domain.CashCut) []CashCutResponse {
	out := make([]CashCutResponse, len(cuts))
	for i, c := range cuts {
		out[i] = CashCutFromDomain(c)
	}
	return out
}

// CashCutSummaryResponse is the reconciliation preview for a branch and day.
type CashCutSummaryResponse struct {
	BranchID          string          `json:"branch_id"`
	Day               time.Time       `json:"day"`
	InitialCash       decimal.Decimal `json:"initial_cash"`
	TotalIngress      decimal.Decimal `json:"total_ingress"`
	TotalEgress       decimal.Decimal `json:"total_egress"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	ReceiptCount      int             `json:"receipt_count"`
	ExpenseCount      int             `json:"expense_count"`
	OperationCount    int             `json:"operation_count"`
}

// CashCutSummaryFromDomain converts a domain summary to a response.
func CashCutSummaryFromDomain(s domain.CashCutSummary) CashCutSummaryResponse {
	return CashCutSummaryResponse{
		BranchID:          s.BranchID,
		Day:               s.Day,
		InitialCash:       s.InitialCash,
		TotalIngress:      s.TotalIngress,
		TotalEgress:       s.TotalEgress,
		CalculatedBalance: s.CalculatedBalance,
		ReceiptCount:      s.ReceiptCount,
		ExpenseCount:      s.ExpenseCount,
		OperationCount:    s.OperationCount,
	}
}

// DashboardStatsResponse carries the four catalog counts.
type DashboardStatsResponse struct {
	PatientsCount  int64 `json:"patients_count"`
	ServicesCount  int64 `json:"services_count"`
	ProvidersCount int64 `json:"providers_count"`
	DoctorsCount   int64 `json:"doctors_count"`
}

// DashboardStatsFromDomain converts domain stats to a response.
func DashboardStatsFromDomain(s domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		PatientsCount:  s.PatientsCount,
		ServicesCount:  s.ServicesCount,
		ProvidersCount: s.ProvidersCount,
		DoctorsCount:   s.DoctorsCount,
	}
}

// FinancialSummaryResponse carries the day's income and expense totals.
type FinancialSummaryResponse struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// FinancialSummaryFromDomain converts a domain summary to a response.
func FinancialSummaryFromDomain(s domain.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
		Balance:       s.Balance,
	}
}

// ZeroFinancialSummaryResponse is the degraded all-zero summary.
func ZeroFinancialSummaryResponse() FinancialSummaryResponse {
	return FinancialSummaryFromDomain(domain.ZeroFinancialSummary())
}

// StatusCountsResponse carries the day's receipt counts per operational
// status.
type StatusCountsResponse struct {
	Pending   int64 `json:"pending"`
	InProcess int64 `json:"in_process"`
	Completed int64 `json:"completed"`
}

// StatusCountsFromDomain converts domain status counts to a response.
func StatusCountsFromDomain(c domain.ReceiptStatusCounts) StatusCountsResponse {
	return StatusCountsResponse{
		Pending:   c.Pending,
		InProcess: c.InProcess,
		Completed: c.Completed,
	}
}

// BranchResponse represents a branch in API responses.
type BranchResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// BranchesFromDomain converts a slice of domain branches.
func BranchesFromDomain(branches []*domain.Branch) []BranchResponse {
	out := make([]BranchResponse, len(branches))
	for i, b := range branches {
		out[i] = BranchResponse{ID: b.ID, Name: b.Name, Address: b.Address}
	}
	return out
}

// PatientResponse represents a patient in API responses.
type PatientResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// PatientsFromDomain converts a slice of domain patients.
func PatientsFromDomain(patients []*domain.Patient) []PatientResponse {
	out := make([]PatientResponse, len(patients))
	for i, p := range patients {
		out[i] = PatientResponse{ID: p.ID, Name: p.Name, Phone: p.Phone, Email: p.Email}
	}
	return out
}

// DoctorResponse represents a doctor in API responses.
type DoctorResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// DoctorsFromDomain converts a slice of domain doctors.
func DoctorsFromDomain(doctors []*domain.Doctor) []DoctorResponse {
	out := make([]DoctorResponse, len(doctors))
	for i, d := range doctors {
		out[i] = DoctorResponse{ID: d.ID, Name: d.Name, Specialty: d.Specialty}
	}
	return out
}

// ProviderResponse represents a provider in API responses.
type ProviderResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ProvidersFromDomain converts a slice of domain providers.
func ProvidersFromDomain(providers []*domain.Provider) []ProviderResponse {
	out := make([]ProviderResponse, len(providers))
	for i, p := range providers {
		out[i] = ProviderResponse{ID: p.ID, Name: p.Name, Phone: p.Phone}
	}
	return out
}

// ServiceResponse represents a laboratory service in API responses.
type ServiceResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ServicesFromDomain converts a slice of domain services.
func ServicesFromDomain(services []*domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i, s := range services {
		out[i] = ServiceResponse{ID: s.ID, Name: s.Name, Price: s.Price}
	}
	return out
}

// ListReceiptsResponse wraps a receipt listing.
type ListReceiptsResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
	Total    int64             `json:"total"`
}

// ListExpensesResponse wraps an expense listing.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int64             `json:"total"`
}

// ListOperationsResponse wraps an operation listing.
type ListOperationsResponse struct {
	Operations []OperationResponse `json:"operations"`
	Total      int64               `json:"total"`
}

// ListCashCutsResponse wraps a cash cut listing.
type ListCashCutsResponse struct {
	CashCuts []CashCutResponse `json:"cash_cuts"`
	Total    int64             `json:"total"`
}

// ListBranchesResponse wraps a branch listing.
type ListBranchesResponse struct {
	Branches []BranchResponse `json:"branches"`
	Total    int64            `json:"total"`
}

// ListPatientsResponse wraps a patient listing.
type ListPatientsResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
}

// ListDoctorsResponse wraps a doctor listing.
type ListDoctorsResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int64            `json:"total"`
}

// ListProvidersResponse wraps a provider listing.
type ListProvidersResponse struct {
	Providers []ProviderResponse `json:"providers"`
	Total     int64              `json:"total"`
}

// ListServicesResponse wraps a service listing.
type ListServicesResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int64             `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
