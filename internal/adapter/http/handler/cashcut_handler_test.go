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

type cashCutServiceStub struct {
	previewFn func(ctx context.Context, input usecase.CashCutInput) (domain.CashCutSummary, error)
	createFn  func(ctx context.Context, input usecase.CashCutInput) (*domain.CashCut, error)
	listFn    func(ctx context.Context, branchID string, limit, offset int) ([]*domain.CashCut, error)
}

func (s *cashCutServiceStub) Preview(ctx context.Context, input usecase.CashCutInput) (domain.CashCutSummary, error) {
	return s.previewFn(ctx, input)
}

func (s *cashCutServiceStub) Create(ctx context.Context, input usecase.CashCutInput) (*domain.CashCut, error) {
	return s.createFn(ctx, input)
}

func (s *cashCutServiceStub) List(ctx context.Context, branchID string, limit, offset int) ([]*domain.CashCut, error) {
	return s.listFn(ctx, branchID, limit, offset)
}

func TestCashCutHandler_Preview(t *testing.T) {
	handler := NewCashCutHandler(&cashCutServiceStub{
		previewFn: func(ctx context.Context, input usecase.CashCutInput) (domain.CashCutSummary, error) {
			if input.BranchID != "b1" {
				t.Fatalf("expected branch b1, got %s", input.BranchID)
			}
			if !input.InitialCash.Equal(decimal.NewFromInt(500)) {
				t.Fatalf("expected initial cash 500, got %s", input.InitialCash)
			}
			return domain.CashCutSummary{
				BranchID:          "b1",
				InitialCash:       input.InitialCash,
				TotalIngress:      decimal.NewFromInt(220),
				TotalEgress:       decimal.NewFromInt(65),
				CalculatedBalance: decimal.NewFromInt(655),
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/cash-cuts/preview?branch_id=b1&date=2026-08-29&initial_cash=500", nil)
	rec := httptest.NewRecorder()

	handler.Preview(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.CashCutSummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.CalculatedBalance.Equal(decimal.NewFromInt(655)) {
		t.Fatalf("expected calculated balance 655, got %s", resp.CalculatedBalance)
	}
}

func TestCashCutHandler_Preview_MissingBranch(t *testing.T) {
	handler := NewCashCutHandler(&cashCutServiceStub{
		previewFn: func(ctx context.Context, input usecase.CashCutInput) (domain.CashCutSummary, error) {
			return domain.CashCutSummary{}, domain.ErrBranchRequired
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/cash-cuts/preview", nil)
	rec := httptest.NewRecorder()

	handler.Preview(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCashCutHandler_Create(t *testing.T) {
	cut := &domain.CashCut{
		ID:                "cut-1",
		BranchID:          "b1",
		UserID:            "user-cashcut",
		InitialBalance:    decimal.NewFromInt(500),
		FinalBalance:      decimal.NewFromInt(655),
		CalculatedBalance: decimal.NewFromInt(655),
		Difference:        decimal.Zero,
	}
	handler := NewCashCutHandler(&cashCutServiceStub{
		createFn: func(ctx context.Context, input usecase.CashCutInput) (*domain.CashCut, error) {
			if input.BranchID != "b1" || input.Notes != "evening close" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return cut, nil
		},
	})

	body, _ := json.Marshal(dto.CreateCashCutRequest{
		BranchID:    "b1",
		InitialCash: decimal.NewFromInt(500),
		Notes:       "evening close",
	})
	req := httptest.NewRequest(http.MethodPost, "/cash-cuts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.CashCutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.FinalBalance.Equal(resp.CalculatedBalance) {
		t.Fatalf("expected final balance to equal calculated, got %s vs %s", resp.FinalBalance, resp.CalculatedBalance)
	}
	if !resp.Difference.IsZero() {
		t.Fatalf("expected zero difference, got %s", resp.Difference)
	}
}

func TestCashCutHandler_Create_NegativeInitialCash(t *testing.T) {
	handler := NewCashCutHandler(&cashCutServiceStub{
		createFn: func(ctx context.Context, input usecase.CashCutInput) (*domain.CashCut, error) {
			return nil, domain.ErrNegativeInitialCash
		},
	})

	body, _ := json.Marshal(dto.CreateCashCutRequest{
		BranchID:    "b1",
		InitialCash: decimal.NewFromInt(-10),
	})
	req := httptest.NewRequest(http.MethodPost, "/cash-cuts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCashCutHandler_List(t *testing.T) {
	handler := NewCashCutHandler(&cashCutServiceStub{
		listFn: func(ctx context.Context, branchID string, limit, offset int) ([]*domain.CashCut, error) {
			if branchID != "b1" || limit != 10 || offset != 0 {
				t.Fatalf("unexpected args: branch=%s limit=%d offset=%d", branchID, limit, offset)
			}
			return []*domain.CashCut{{ID: "cut-2"}, {ID: "cut-1"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/cash-cuts?branch_id=b1&limit=10", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListCashCutsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.CashCuts) != 2 {
		t.Fatalf("expected 2 cash cuts, got %d", len(resp.CashCuts))
	}
}
