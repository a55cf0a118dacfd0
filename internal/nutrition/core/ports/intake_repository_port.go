package ports

import (
	"context"

	"lifeboard-service/internal/nutrition/core/domain"
	"lifeboard-service/internal/period"
)

type IntakeRepositoryPort interface {
	InsertIntake(ctx context.Context, event *domain.IntakeEvent, items []domain.IntakeItem) error

	// ListItemsForWindow returns the items of every intake event whose
	// occurred_at falls inside the window, scoped to the user.
	ListItemsForWindow(ctx context.Context, userID string, w period.Window) ([]domain.IntakeItem, error)
}

// EstimatorPort is the AI-backed macro estimation contract.
type EstimatorPort interface {
	EstimateMacros(ctx context.Context, description string) (domain.MacroEstimate, error)
}

// QuotaPort gates estimator calls to a per-caller courtesy budget.
type QuotaPort interface {
	Allow(key string) bool
}
