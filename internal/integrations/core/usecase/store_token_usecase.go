package usecase

import (
	"context"
	"errors"
	"time"

	"lifeboard-service/internal/integrations/core/domain"
	"lifeboard-service/internal/integrations/core/ports"
)

var (
	ErrUnauthenticated = errors.New("missing caller identity")
	ErrUnknownProvider = errors.New("unknown provider")
	ErrInvalidToken    = errors.New("invalid token")
)

type StoreTokenUseCase struct {
	tokens ports.TokenStorePort
	now    func() time.Time
}

func NewStoreTokenUseCase(tokens ports.TokenStorePort, now func() time.Time) *StoreTokenUseCase {
	return &StoreTokenUseCase{tokens: tokens, now: now}
}

type StoreTokenInput struct {
	UserID       string
	Provider     string
	AccessToken  string
	RefreshToken string
	ExpiresAt    int64 // unix seconds
}

// Execute stores granted OAuth credentials for a provider, replacing
// any earlier grant for the same (user, provider) pair.
func (uc *StoreTokenUseCase) Execute(ctx context.Context, in StoreTokenInput) (*domain.ProviderToken, error) {
	if in.UserID == "" {
		return nil, ErrUnauthenticated
	}
	provider := domain.Provider(in.Provider)
	if !provider.Valid() {
		return nil, ErrUnknownProvider
	}
	if in.AccessToken == "" || in.RefreshToken == "" || in.ExpiresAt <= 0 {
		return nil, ErrInvalidToken
	}

	// A first grant starts the import cursor at the grant itself;
	// history from before the account was connected is not backfilled.
	// On a re-grant the store keeps the existing cursor.
	token := &domain.ProviderToken{
		UserID:       in.UserID,
		Provider:     provider,
		AccessToken:  in.AccessToken,
		RefreshToken: in.RefreshToken,
		ExpiresAt:    time.Unix(in.ExpiresAt, 0).UTC(),
		UpdatedAt:    uc.now().UTC(),
		SyncedAt:     uc.now().UTC(),
	}

	if err := uc.tokens.Upsert(ctx, token); err != nil {
		return nil, err
	}

	return token, nil
}
