package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/usecase"
	"github.com/clinilab/clinilab/internal/usecase/mocks"
)

func TestCreateExpense(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockExpenseRepository()
	uc := usecase.NewExpenseUseCase(repo, mocks.NewMockIDGenerator(), nil)

	expense, err := uc.CreateExpense(context.Background(), usecase.CreateExpenseInput{
		BranchID:    "b1",
		CategoryID:  "cat-1",
		Amount:      decimal.NewFromInt(75),
		Description: "reagent restock",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expense.ID == "" {
		t.Error("expected a generated id")
	}
	if expense.Date.IsZero() {
		t.Error("expected the date to default to now")
	}

	stored, err := repo.GetByID(context.Background(), expense.ID)
	if err != nil {
		t.Fatalf("expense not persisted: %v", err)
	}
	if !stored.Amount.Equal(decimal.NewFromInt(75)) {
		t.Errorf("expected amount 75, got %s", stored.Amount)
	}
}

func TestCreateExpense_Validation(t *testing.T) {
	t.Parallel()

	uc := usecase.NewExpenseUseCase(mocks.NewMockExpenseRepository(), mocks.NewMockIDGenerator(), nil)

	_, err := uc.CreateExpense(context.Background(), usecase.CreateExpenseInput{
		CategoryID: "cat-1",
		Amount:     decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrBranchRequired) {
		t.Errorf("expected ErrBranchRequired, got %v", err)
	}

	_, err = uc.CreateExpense(context.Background(), usecase.CreateExpenseInput{
		BranchID: "b1",
		Amount:   decimal.Zero,
	})
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestUpdateExpense(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockExpenseRepository()
	seedExpense(t, repo, &domain.Expense{
		ID: "e1", BranchID: "b1", CategoryID: "cat-1",
		Date: time.Now(), Amount: decimal.NewFromInt(30),
	})

	uc := usecase.NewExpenseUseCase(repo, mocks.NewMockIDGenerator(), nil)

	expense, err := uc.UpdateExpense(context.Background(), "e1", usecase.UpdateExpenseInput{
		CategoryID:  "cat-2",
		Amount:      decimal.NewFromInt(45),
		Description: "corrected invoice",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expense.CategoryID != "cat-2" || !expense.Amount.Equal(decimal.NewFromInt(45)) {
		t.Errorf("expense not updated: %+v", expense)
	}

	_, err = uc.UpdateExpense(context.Background(), "missing", usecase.UpdateExpenseInput{
		Amount: decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrExpenseNotFound) {
		t.Errorf("expected ErrExpenseNotFound, got %v", err)
	}
}

func TestListExpenses(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	repo := mocks.NewMockExpenseRepository()
	seedExpense(t, repo, &domain.Expense{ID: "e1", BranchID: "b1", Date: day, Amount: decimal.NewFromInt(1)})
	seedExpense(t, repo, &domain.Expense{ID: "e2", BranchID: "b2", Date: day, Amount: decimal.NewFromInt(2)})
	seedExpense(t, repo, &domain.Expense{ID: "e3", BranchID: "b1", Date: day.AddDate(0, 0, 1), Amount: decimal.NewFromInt(3)})

	uc := usecase.NewExpenseUseCase(repo, mocks.NewMockIDGenerator(), nil)

	expenses, err := uc.ListExpenses(context.Background(), usecase.DayFilter{BranchID: "b1", Day: &day})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expenses) != 1 || expenses[0].ID != "e1" {
		t.Errorf("expected only e1, got %+v", expenses)
	}
}
