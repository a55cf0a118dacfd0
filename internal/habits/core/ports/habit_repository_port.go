package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lifeboard-service/internal/habits/core/domain"
	"lifeboard-service/internal/period"
)

type HabitRepositoryPort interface {
	InsertHabit(ctx context.Context, habit *domain.Habit) error

	// CheckIn records a completion for the habit on the given day.
	// found reports whether the habit exists and belongs to the user;
	// created is false when the day was already checked in.
	CheckIn(ctx context.Context, userID string, habitID uuid.UUID, day time.Time) (found bool, created bool, err error)

	CountHabits(ctx context.Context, userID string) (int, error)

	CompletionsInWindow(ctx context.Context, userID string, w period.Window) ([]domain.Completion, error)
}
