package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/usecase"
)

// CreateReceiptRequest represents a request to create a receipt.
type CreateReceiptRequest struct {
	PatientID string          `json:"patient_id"`
	BranchID  string          `json:"branch_id"`
	Date      *time.Time      `json:"date,omitempty"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateReceiptRequest) ToUseCaseInput() usecase.CreateReceiptInput {
	input := usecase.CreateReceiptInput{
		PatientID: r.PatientID,
		BranchID:  r.BranchID,
		Subtotal:  r.Subtotal,
		Discount:  r.Discount,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

// RecordPaymentRequest represents a payment on a receipt.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// UpdateReceiptStatusRequest represents a receipt lifecycle move.
type UpdateReceiptStatusRequest struct {
	Status string `json:"status"`
}

// CreateExpenseRequest represents a request to record an expense.
type CreateExpenseRequest struct {
	BranchID    string          `json:"branch_id"`
	CategoryID  string          `json:"category_id"`
	Date        *time.Time      `json:"date,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateExpenseRequest) ToUseCaseInput() usecase.CreateExpenseInput {
	input := usecase.CreateExpenseInput{
		BranchID:    r.BranchID,
		CategoryID:  r.CategoryID,
		Amount:      r.Amount,
		Description: r.Description,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

// UpdateExpenseRequest represents the editable fields of an expense.
type UpdateExpenseRequest struct {
	CategoryID  string          `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateExpenseRequest) ToUseCaseInput() usecase.UpdateExpenseInput {
	return usecase.UpdateExpenseInput{
		CategoryID:  r.CategoryID,
		Amount:      r.Amount,
		Description: r.Description,
	}
}

// CreateOperationRequest represents a manual ledger entry.
type CreateOperationRequest struct {
	BranchID      string          `json:"branch_id"`
	EmployeeID    string          `json:"employee_id"`
	Date          *time.Time      `json:"date,omitempty"`
	Concept       string          `json:"concept"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	PaymentMethod string          `json:"payment_method"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateOperationRequest) ToUseCaseInput() usecase.CreateOperationInput {
	input := usecase.CreateOperationInput{
		BranchID:      r.BranchID,
		EmployeeID:    r.EmployeeID,
		Concept:       r.Concept,
		Amount:        r.Amount,
		Type:          domain.OperationType(r.Type),
		PaymentMethod: r.PaymentMethod,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

// CreateCashCutRequest represents a reconciliation request.
type CreateCashCutRequest struct {
	BranchID    string          `json:"branch_id"`
	Date        *time.Time      `json:"date,omitempty"`
	InitialCash decimal.Decimal `json:"initial_cash"`
	Notes       string          `json:"notes"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCashCutRequest) ToUseCaseInput() usecase.CashCutInput {
	input := usecase.CashCutInput{
		BranchID:    r.BranchID,
		InitialCash: r.InitialCash,
		Notes:       r.Notes,
	}
	if r.Date != nil {
		input.Day = *r.Date
	}
	return input
}
