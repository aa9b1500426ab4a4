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

// OperationService defines the behavior needed by OperationHandler.
type OperationService interface {
	CreateOperation(ctx context.Context, input usecase.CreateOperationInput) (*domain.Operation, error)
	DeleteOperation(ctx context.Context, id string) error
	ListOperations(ctx context.Context, filter usecase.DayFilter) ([]*domain.Operation, error)
}

// OperationHandler handles manual operation HTTP requests.
type OperationHandler struct {
	operationUC OperationService
}

// NewOperationHandler creates a new OperationHandler.
func NewOperationHandler(operationUC OperationService) *OperationHandler {
	return &OperationHandler{operationUC: operationUC}
}

// Create records a manual ingress or egress.
func (h *OperationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	operation, err := h.operationUC.CreateOperation(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create operation", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.OperationFromDomain(operation))
}

// Delete removes a manual operation.
func (h *OperationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing operation ID", "")
		return
	}

	if err := h.operationUC.DeleteOperation(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete operation", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists operations, optionally filtered by branch and day.
func (h *OperationHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.DayFilter{
		BranchID: r.URL.Query().Get("branch_id"),
		Limit:    parseIntQuery(r, "limit", 20),
		Offset:   parseIntQuery(r, "offset", 0),
	}
	if day := parseDateQuery(r, "date"); !day.IsZero() {
		filter.Day = &day
	}

	operations, err := h.operationUC.ListOperations(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list operations", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListOperationsResponse{
		Operations: dto.OperationsFromDomain(operations),
		Total:      int64(len(operations)),
	})
}
