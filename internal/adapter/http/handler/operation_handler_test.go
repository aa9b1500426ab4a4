package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/adapter/http/dto"
	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/usecase"
)

type operationServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateOperationInput) (*domain.Operation, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context, filter usecase.DayFilter) ([]*domain.Operation, error)
}

func (s *operationServiceStub) CreateOperation(ctx context.Context, input usecase.CreateOperationInput) (*domain.Operation, error) {
	return s.createFn(ctx, input)
}

func (s *operationServiceStub) DeleteOperation(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *operationServiceStub) ListOperations(ctx context.Context, filter usecase.DayFilter) ([]*domain.Operation, error) {
	return s.listFn(ctx, filter)
}

func TestOperationHandler_Create_Success(t *testing.T) {
	operation := &domain.Operation{
		ID:       "op-1",
		BranchID: "b1",
		Concept:  "cash deposit",
		Amount:   decimal.NewFromInt(100),
		Type:     domain.OperationIngress,
	}

	handler := NewOperationHandler(&operationServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateOperationInput) (*domain.Operation, error) {
			if input.Type != domain.OperationIngress {
				t.Fatalf("expected ingress, got %s", input.Type)
			}
			return operation, nil
		},
	})

	body, _ := json.Marshal(dto.CreateOperationRequest{
		BranchID: "b1",
		Concept:  "cash deposit",
		Amount:   decimal.NewFromInt(100),
		Type:     "ingress",
	})
	req := httptest.NewRequest(http.MethodPost, "/operations", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.OperationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Type != "ingress" {
		t.Fatalf("expected ingress, got %s", resp.Type)
	}
}

func TestOperationHandler_Create_InvalidType(t *testing.T) {
	handler := NewOperationHandler(&operationServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateOperationInput) (*domain.Operation, error) {
			return nil, domain.ErrInvalidOperationType
		},
	})

	body, _ := json.Marshal(dto.CreateOperationRequest{
		BranchID: "b1",
		Concept:  "transfer out",
		Amount:   decimal.NewFromInt(100),
		Type:     "transfer",
	})
	req := httptest.NewRequest(http.MethodPost, "/operations", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOperationHandler_Delete(t *testing.T) {
	handler := NewOperationHandler(&operationServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "op-1" {
				t.Fatalf("expected id op-1, got %s", id)
			}
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/operations/op-1", nil)
	req = setChiURLParam(req, "id", "op-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestOperationHandler_Delete_NotFound(t *testing.T) {
	handler := NewOperationHandler(&operationServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrOperationNotFound
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/operations/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestOperationHandler_List(t *testing.T) {
	handler := NewOperationHandler(&operationServiceStub{
		listFn: func(ctx context.Context, filter usecase.DayFilter) ([]*domain.Operation, error) {
			return []*domain.Operation{{ID: "op-1"}, {ID: "op-2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/operations?branch_id=b1", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListOperationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Operations) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(resp.Operations))
	}
}
