package ports

import (
	"context"

	findomain "lifeboard-service/internal/finance/core/domain"
	fitdomain "lifeboard-service/internal/fitness/core/domain"
	habitdomain "lifeboard-service/internal/habits/core/domain"
	"lifeboard-service/internal/period"
)

// Reader ports are the read-only slices of the feature repositories a
// review needs; the postgres repositories satisfy them as-is.

type HabitReaderPort interface {
	CountHabits(ctx context.Context, userID string) (int, error)
	CompletionsInWindow(ctx context.Context, userID string, w period.Window) ([]habitdomain.Completion, error)
}

type WorkoutReaderPort interface {
	SessionsInWindow(ctx context.Context, userID string, w period.Window) ([]fitdomain.Session, error)
	SetsInWindow(ctx context.Context, userID string, w period.Window) ([]fitdomain.Set, error)
}

type TransactionReaderPort interface {
	TransactionsInWindow(ctx context.Context, userID string, w period.Window) ([]findomain.Transaction, error)
}
