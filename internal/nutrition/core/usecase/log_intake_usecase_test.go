package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifeboard-service/internal/nutrition/core/domain"
	"lifeboard-service/internal/nutrition/core/usecase"
	"lifeboard-service/internal/period"
)

// fakeIntakeRepo implements ports.IntakeRepositoryPort for tests.
type fakeIntakeRepo struct {
	InsertFn func(ctx context.Context, event *domain.IntakeEvent, items []domain.IntakeItem) error
	ListFn   func(ctx context.Context, userID string, w period.Window) ([]domain.IntakeItem, error)

	lastEvent *domain.IntakeEvent
	lastItems []domain.IntakeItem
	listCalls int
}

func (f *fakeIntakeRepo) InsertIntake(ctx context.Context, event *domain.IntakeEvent, items []domain.IntakeItem) error {
	f.lastEvent = event
	f.lastItems = items
	if f.InsertFn != nil {
		return f.InsertFn(ctx, event, items)
	}
	return nil
}

func (f *fakeIntakeRepo) ListItemsForWindow(ctx context.Context, userID string, w period.Window) ([]domain.IntakeItem, error) {
	f.listCalls++
	if f.ListFn != nil {
		return f.ListFn(ctx, userID, w)
	}
	return nil, nil
}

var fixedNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func nowFn() time.Time { return fixedNow }

func TestLogIntake_Success(t *testing.T) {
	repo := &fakeIntakeRepo{}
	uc := usecase.NewLogIntakeUseCase(repo, nowFn)

	edited := 350.0
	event, err := uc.Execute(context.Background(), usecase.LogIntakeInput{
		UserID:    "user_1",
		MealType:  "lunch",
		Timestamp: fixedNow.Add(-time.Hour).Unix(),
		Items: []usecase.IntakeItemInput{
			{Name: "rice", Calories: 500},
			{Name: "chicken", Calories: 300, EditedCalories: &edited},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.UserID != "user_1" || event.MealType != "lunch" {
		t.Fatalf("unexpected event: %+v", event)
	}
	if len(repo.lastItems) != 2 {
		t.Fatalf("expected 2 items inserted, got %d", len(repo.lastItems))
	}
	if repo.lastItems[1].EditedCalories == nil || *repo.lastItems[1].EditedCalories != 350 {
		t.Fatalf("edited value must be carried through: %+v", repo.lastItems[1])
	}
	for _, it := range repo.lastItems {
		if it.EventID != event.ID {
			t.Fatalf("item not linked to event: %+v", it)
		}
	}
}

func TestLogIntake_ZeroTimestampDefaultsToNow(t *testing.T) {
	repo := &fakeIntakeRepo{}
	uc := usecase.NewLogIntakeUseCase(repo, nowFn)

	event, err := uc.Execute(context.Background(), usecase.LogIntakeInput{
		UserID:   "user_1",
		MealType: "snack",
		Items:    []usecase.IntakeItemInput{{Name: "apple", Calories: 80}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !event.OccurredAt.Equal(fixedNow) {
		t.Fatalf("expected occurred_at=%v, got %v", fixedNow, event.OccurredAt)
	}
}

func TestLogIntake_Unauthenticated(t *testing.T) {
	repo := &fakeIntakeRepo{}
	uc := usecase.NewLogIntakeUseCase(repo, nowFn)

	_, err := uc.Execute(context.Background(), usecase.LogIntakeInput{
		MealType: "lunch",
		Items:    []usecase.IntakeItemInput{{Name: "rice"}},
	})
	if !errors.Is(err, usecase.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if repo.lastEvent != nil {
		t.Fatal("no store access before authentication")
	}
}

func TestLogIntake_Validation(t *testing.T) {
	uc := usecase.NewLogIntakeUseCase(&fakeIntakeRepo{}, nowFn)

	cases := []usecase.LogIntakeInput{
		{UserID: "u", Items: []usecase.IntakeItemInput{{Name: "rice"}}},    // missing meal type
		{UserID: "u", MealType: "lunch"},                                   // no items
		{UserID: "u", MealType: "lunch", Items: []usecase.IntakeItemInput{{}}}, // unnamed item
	}
	for i, in := range cases {
		if _, err := uc.Execute(context.Background(), in); !errors.Is(err, usecase.ErrInvalidIntake) {
			t.Errorf("case %d: expected ErrInvalidIntake, got %v", i, err)
		}
	}
}

func TestLogIntake_FutureTimestamp(t *testing.T) {
	uc := usecase.NewLogIntakeUseCase(&fakeIntakeRepo{}, nowFn)

	_, err := uc.Execute(context.Background(), usecase.LogIntakeInput{
		UserID:    "u",
		MealType:  "lunch",
		Timestamp: fixedNow.Add(time.Hour).Unix(),
		Items:     []usecase.IntakeItemInput{{Name: "rice"}},
	})
	if !errors.Is(err, usecase.ErrFutureTime) {
		t.Fatalf("expected ErrFutureTime, got %v", err)
	}
}

func TestLogIntake_RepoError(t *testing.T) {
	repo := &fakeIntakeRepo{
		InsertFn: func(ctx context.Context, event *domain.IntakeEvent, items []domain.IntakeItem) error {
			return errors.New("connection refused")
		},
	}
	uc := usecase.NewLogIntakeUseCase(repo, nowFn)

	_, err := uc.Execute(context.Background(), usecase.LogIntakeInput{
		UserID:   "u",
		MealType: "lunch",
		Items:    []usecase.IntakeItemInput{{Name: "rice"}},
	})
	if err == nil {
		t.Fatal("expected store error to surface")
	}
}
