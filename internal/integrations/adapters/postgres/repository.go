package postgres

import (
	"context"
	"time"

	"lifeboard-service/internal/integrations/core/domain"
	"lifeboard-service/internal/integrations/core/ports"
)

type TokenRepository struct {
	db DB
}

func NewTokenRepository(db DB) *TokenRepository {
	return &TokenRepository{db: db}
}

var _ ports.TokenStorePort = (*TokenRepository)(nil)

// On conflict synced_at keeps its stored value so credential writes
// never move the import cursor; SetCursor is the only path that does.
const upsertTokenSQL = `
INSERT INTO provider_tokens (
    user_id,
    provider,
    access_token,
    refresh_token,
    expires_at,
    updated_at,
    synced_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7
)
ON CONFLICT (user_id, provider)
DO UPDATE SET
    access_token  = EXCLUDED.access_token,
    refresh_token = EXCLUDED.refresh_token,
    expires_at    = EXCLUDED.expires_at,
    updated_at    = EXCLUDED.updated_at,
    synced_at     = provider_tokens.synced_at;
`

const setCursorSQL = `
UPDATE provider_tokens
SET synced_at = $3
WHERE user_id = $1 AND provider = $2;
`

const getTokenSQL = `
SELECT user_id, provider, access_token, refresh_token, expires_at, updated_at, synced_at
FROM provider_tokens
WHERE user_id = $1 AND provider = $2;
`

const listForUserSQL = `
SELECT user_id, provider, access_token, refresh_token, expires_at, updated_at, synced_at
FROM provider_tokens
WHERE user_id = $1
ORDER BY provider;
`

const listByProviderSQL = `
SELECT user_id, provider, access_token, refresh_token, expires_at, updated_at, synced_at
FROM provider_tokens
WHERE provider = $1
ORDER BY user_id;
`

const listExpiringSQL = `
SELECT user_id, provider, access_token, refresh_token, expires_at, updated_at, synced_at
FROM provider_tokens
WHERE expires_at >= $1 AND expires_at < $2
ORDER BY expires_at;
`

func (r *TokenRepository) Upsert(ctx context.Context, token *domain.ProviderToken) error {
	_, err := r.db.ExecContext(ctx, upsertTokenSQL,
		token.UserID,
		string(token.Provider),
		token.AccessToken,
		token.RefreshToken,
		token.ExpiresAt,
		token.UpdatedAt,
		token.SyncedAt,
	)
	return err
}

func (r *TokenRepository) SetCursor(ctx context.Context, userID string, provider domain.Provider, syncedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, setCursorSQL, userID, string(provider), syncedAt)
	return err
}

func (r *TokenRepository) Get(ctx context.Context, userID string, provider domain.Provider) (*domain.ProviderToken, error) {
	rows, err := r.db.QueryContext(ctx, getTokenSQL, userID, string(provider))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	token, err := scanToken(rows)
	if err != nil {
		return nil, err
	}
	return &token, rows.Err()
}

func (r *TokenRepository) ListForUser(ctx context.Context, userID string) ([]domain.ProviderToken, error) {
	return r.list(ctx, listForUserSQL, userID)
}

func (r *TokenRepository) ListByProvider(ctx context.Context, provider domain.Provider) ([]domain.ProviderToken, error) {
	return r.list(ctx, listByProviderSQL, string(provider))
}

func (r *TokenRepository) ListExpiring(ctx context.Context, floor, deadline time.Time) ([]domain.ProviderToken, error) {
	return r.list(ctx, listExpiringSQL, floor, deadline)
}

func (r *TokenRepository) list(ctx context.Context, query string, args ...any) ([]domain.ProviderToken, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []domain.ProviderToken
	for rows.Next() {
		token, err := scanToken(rows)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func scanToken(rows RowScanner) (domain.ProviderToken, error) {
	var token domain.ProviderToken
	var provider string
	if err := rows.Scan(&token.UserID, &provider, &token.AccessToken, &token.RefreshToken, &token.ExpiresAt, &token.UpdatedAt, &token.SyncedAt); err != nil {
		return domain.ProviderToken{}, err
	}
	token.Provider = domain.Provider(provider)
	token.ExpiresAt = token.ExpiresAt.UTC()
	token.UpdatedAt = token.UpdatedAt.UTC()
	token.SyncedAt = token.SyncedAt.UTC()
	return token, nil
}
