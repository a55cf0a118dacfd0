package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"lifeboard-service/internal/habits/core/domain"
	"lifeboard-service/internal/habits/core/ports"
	"lifeboard-service/internal/period"
)

var (
	ErrUnauthenticated = errors.New("missing caller identity")
	ErrInvalidHabit    = errors.New("invalid habit")
	ErrHabitNotFound   = errors.New("habit not found")
	ErrFutureDay       = errors.New("day cannot be in the future")
)

type ManageHabitsUseCase struct {
	repo ports.HabitRepositoryPort
	now  func() time.Time
}

func NewManageHabitsUseCase(repo ports.HabitRepositoryPort, now func() time.Time) *ManageHabitsUseCase {
	return &ManageHabitsUseCase{repo: repo, now: now}
}

type CreateHabitInput struct {
	UserID  string
	Name    string
	Cadence string
}

func (uc *ManageHabitsUseCase) CreateHabit(ctx context.Context, in CreateHabitInput) (*domain.Habit, error) {
	if in.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if in.Name == "" {
		return nil, ErrInvalidHabit
	}

	cadence := in.Cadence
	if cadence == "" {
		cadence = "daily"
	}

	habit := &domain.Habit{
		ID:      uuid.New(),
		UserID:  in.UserID,
		Name:    in.Name,
		Cadence: cadence,
	}

	if err := uc.repo.InsertHabit(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

type CheckInInput struct {
	UserID  string
	HabitID uuid.UUID
	Day     string // "2006-01-02", empty means today
}

type CheckInResult struct {
	Completion domain.Completion
	Created    bool
}

// CheckIn is idempotent: re-logging an already checked-in day reports
// Created=false instead of failing.
func (uc *ManageHabitsUseCase) CheckIn(ctx context.Context, in CheckInInput) (*CheckInResult, error) {
	if in.UserID == "" {
		return nil, ErrUnauthenticated
	}

	day, err := period.DayOrToday(in.Day, uc.now())
	if err != nil {
		return nil, err
	}
	if day.Start.After(period.Day(uc.now()).Start) {
		return nil, ErrFutureDay
	}

	found, created, err := uc.repo.CheckIn(ctx, in.UserID, in.HabitID, day.Start)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrHabitNotFound
	}

	return &CheckInResult{
		Completion: domain.Completion{HabitID: in.HabitID, UserID: in.UserID, Day: day.Start},
		Created:    created,
	}, nil
}
