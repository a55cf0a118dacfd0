package ports

import (
	"context"
	"time"

	"lifeboard-service/internal/integrations/core/domain"
)

type TokenStorePort interface {
	// Upsert writes the credentials, replacing any previous ones for the
	// same (user, provider) pair. The import cursor is stored only when
	// the pair is new; an existing row keeps its cursor.
	Upsert(ctx context.Context, token *domain.ProviderToken) error

	// SetCursor advances the import watermark for an existing token.
	SetCursor(ctx context.Context, userID string, provider domain.Provider, syncedAt time.Time) error

	// Get returns nil, nil when the user has no token for the provider.
	Get(ctx context.Context, userID string, provider domain.Provider) (*domain.ProviderToken, error)

	ListForUser(ctx context.Context, userID string) ([]domain.ProviderToken, error)

	ListByProvider(ctx context.Context, provider domain.Provider) ([]domain.ProviderToken, error)

	// ListExpiring returns every token across users whose access token
	// expires before the deadline. Tokens already expired before the
	// floor are excluded.
	ListExpiring(ctx context.Context, floor, deadline time.Time) ([]domain.ProviderToken, error)
}

// RefresherPort exchanges a refresh token for fresh credentials.
type RefresherPort interface {
	Refresh(ctx context.Context, token domain.ProviderToken) (domain.ProviderToken, error)
}

// ActivitySourcePort lists a provider's finished workouts.
type ActivitySourcePort interface {
	FinishedActivities(ctx context.Context, token domain.ProviderToken, since time.Time) ([]domain.Activity, error)
}
