package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"lifeboard-service/internal/habits/core/domain"
	"lifeboard-service/internal/habits/core/usecase"
	"lifeboard-service/internal/period"
)

func TestGetCompletionRate_ComputesOverWindow(t *testing.T) {
	habitID := uuid.New()
	repo := &fakeHabitRepo{
		CountFn: func(ctx context.Context, userID string) (int, error) {
			return 2, nil
		},
		CompletionsFn: func(ctx context.Context, userID string, w period.Window) ([]domain.Completion, error) {
			return []domain.Completion{
				{HabitID: habitID, UserID: userID, Day: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
				{HabitID: habitID, UserID: userID, Day: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	uc := usecase.NewGetCompletionRateUseCase(repo, nowFn)

	s, err := uc.Execute(context.Background(), "user_1", "2024-03-01", "2024-03-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2 completions over 2 habits x 2 days.
	if s.Rate != 50 {
		t.Fatalf("expected rate 50, got %v", s.Rate)
	}
	if s.Completions != 2 || s.HabitCount != 2 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestGetCompletionRate_ZeroHabits(t *testing.T) {
	uc := usecase.NewGetCompletionRateUseCase(&fakeHabitRepo{}, nowFn)

	s, err := uc.Execute(context.Background(), "user_1", "2024-03-01", "2024-03-07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Rate != 0 {
		t.Fatalf("zero habits must yield rate 0, got %v", s.Rate)
	}
}

func TestGetCompletionRate_BadRange(t *testing.T) {
	uc := usecase.NewGetCompletionRateUseCase(&fakeHabitRepo{}, nowFn)

	if _, err := uc.Execute(context.Background(), "user_1", "2024-03-07", "2024-03-01"); !errors.Is(err, period.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestGetCompletionRate_Unauthenticated(t *testing.T) {
	uc := usecase.NewGetCompletionRateUseCase(&fakeHabitRepo{}, nowFn)

	if _, err := uc.Execute(context.Background(), "", "", ""); !errors.Is(err, usecase.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
