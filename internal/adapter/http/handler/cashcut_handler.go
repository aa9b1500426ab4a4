package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/clinilab/clinilab/internal/adapter/http/dto"
	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/usecase"
)

// CashCutService defines the behavior needed by CashCutHandler.
type CashCutService interface {
	Preview(ctx context.Context, input usecase.CashCutInput) (domain.CashCutSummary, error)
	Create(ctx context.Context, input usecase.CashCutInput) (*domain.CashCut, error)
	List(ctx context.Context, branchID string, limit, offset int) ([]*domain.CashCut, error)
}

// CashCutHandler handles cash reconciliation HTTP requests.
type CashCutHandler struct {
	cashCutUC CashCutService
}

// NewCashCutHandler creates a new CashCutHandler.
func NewCashCutHandler(cashCutUC CashCutService) *CashCutHandler {
	return &CashCutHandler{cashCutUC: cashCutUC}
}

// Preview computes the reconciliation summary for a branch and day without
// persisting anything.
func (h *CashCutHandler) Preview(w http.ResponseWriter, r *http.Request) {
	input := usecase.CashCutInput{
		BranchID:    r.URL.Query().Get("branch_id"),
		Day:         parseDateQuery(r, "date"),
		InitialCash: parseDecimalQuery(r, "initial_cash"),
	}

	summary, err := h.cashCutUC.Preview(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to compute cash cut", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashCutSummaryFromDomain(summary))
}

// Create computes and persists a cash cut.
func (h *CashCutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCashCutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	cut, err := h.cashCutUC.Create(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create cash cut", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CashCutFromDomain(cut))
}

// List lists cash cuts for a branch, newest first.
func (h *CashCutHandler) List(w http.ResponseWriter, r *http.Request) {
	branchID := r.URL.Query().Get("branch_id")
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	cuts, err := h.cashCutUC.List(r.Context(), branchID, limit, offset)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list cash cuts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListCashCutsResponse{
		CashCuts: dto.CashCutsFromDomain(cuts),
		Total:    int64(len(cuts)),
	})
}
