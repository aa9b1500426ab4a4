package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/adapter/http/dto"
	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/usecase"
)

// ReceiptService defines the behavior needed by ReceiptHandler.
type ReceiptService interface {
	CreateReceipt(ctx context.Context, input usecase.CreateReceiptInput) (*domain.Receipt, error)
	GetReceipt(ctx context.Context, id string) (*domain.Receipt, error)
	ListReceipts(ctx context.Context, filter usecase.ReceiptFilter) ([]*domain.Receipt, error)
	RecordPayment(ctx context.Context, id string, amount decimal.Decimal) (*domain.Receipt, error)
	UpdateStatus(ctx context.Context, id string, to domain.ReceiptStatus) (*domain.Receipt, error)
}

// ReceiptHandler handles receipt-related HTTP requests.
type ReceiptHandler struct {
	receiptUC ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(receiptUC ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptUC: receiptUC}
}

// Create creates a new receipt.
func (h *ReceiptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receipt, err := h.receiptUC.CreateReceipt(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create receipt", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ReceiptFromDomain(receipt))
}

// Get retrieves a receipt by ID.
func (h *ReceiptHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing receipt ID", "")
		return
	}

	receipt, err := h.receiptUC.GetReceipt(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get receipt", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReceiptFromDomain(receipt))
}

// List lists receipts, optionally filtered by branch, day and status.
func (h *ReceiptHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.ReceiptFilter{
		BranchID: r.URL.Query().Get("branch_id"),
		Status:   domain.ReceiptStatus(r.URL.Query().Get("status")),
		Limit:    parseIntQuery(r, "limit", 20),
		Offset:   parseIntQuery(r, "offset", 0),
	}
	if day := parseDateQuery(r, "date"); !day.IsZero() {
		filter.Day = &day
	}

	receipts, err := h.receiptUC.ListReceipts(r.Context(), filter)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list receipts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListReceiptsResponse{
		Receipts: dto.ReceiptsFromDomain(receipts),
		Total:    int64(len(receipts)),
	})
}

// RecordPayment applies a partial or full payment to a receipt.
func (h *ReceiptHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing receipt ID", "")
		return
	}

	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receipt, err := h.receiptUC.RecordPayment(r.Context(), id, req.Amount)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to record payment", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReceiptFromDomain(receipt))
}

// UpdateStatus moves a receipt through its lifecycle.
func (h *ReceiptHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing receipt ID", "")
		return
	}

	var req dto.UpdateReceiptStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receipt, err := h.receiptUC.UpdateStatus(r.Context(), id, domain.ReceiptStatus(req.Status))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update receipt status", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReceiptFromDomain(receipt))
}
