package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clinilab/clinilab/internal/adapter/http/dto"
	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/usecase"
)

// ExpenseService defines the behavior needed by ExpenseHandler.
type ExpenseService interface {
	CreateExpense(ctx context.Context, input usecase.CreateExpenseInput) (*domain.Expense, error)
	GetExpense(ctx context.Context, id string) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, id string, input usecase.UpdateExpenseInput) (*domain.Expense, error)
	ListExpenses(ctx context.Context, filter usecase.DayFilter) ([]*domain.Expense, error)
}

// ExpenseHandler handles expense-related HTTP requests.
type ExpenseHandler struct {
	expenseUC ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseUC ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseUC: expenseUC}
}

// Create records a new expense.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	expense, err := h.expenseUC.CreateExpense(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create expense", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ExpenseFromDomain(expense))
}

// Get retrieves an expense by ID.
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense ID", "")
		return
	}

	expense, err := h.expenseUC.GetExpense(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get expense", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExpenseFromDomain(expense))
}

// Update edits an expense's category, amount and description.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense ID", "")
		return
	}

	var req dto.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	expense, err := h.expenseUC.UpdateExpense(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update expense", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExpenseFromDomain(expense))
}

// List lists expenses, optionally filtered by branch and day.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.DayFilter{
		BranchID: r.URL.Query().Get("branch_id"),
		Limit:    parseIntQuery(r, "limit", 20),
		Offset:   parseIntQuery(r, "offset", 0),
	}
	if day := parseDateQuery(r, "date"); !day.IsZero() {
		filter.Day = &day
	}

	expenses, err := h.expenseUC.ListExpenses(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list expenses", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListExpensesResponse{
		Expenses: dto.ExpensesFromDomain(expenses),
		Total:    int64(len(expenses)),
	})
}
