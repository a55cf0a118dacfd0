package oauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"lifeboard-service/internal/integrations/core/domain"
	"lifeboard-service/internal/integrations/core/ports"
)

// Credentials is one provider's OAuth client registration.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Refresher performs the refresh-token grant against each provider's
// token endpoint. Providers without configured credentials fail the
// refresh; the sync pass logs and skips them.
type Refresher struct {
	configs map[domain.Provider]*oauth2.Config
}

var _ ports.RefresherPort = (*Refresher)(nil)

func NewRefresher(creds map[domain.Provider]Credentials) *Refresher {
	tokenEndpoints := map[domain.Provider]oauth2.Endpoint{
		domain.ProviderGoogleCalendar: endpoints.Google,
		domain.ProviderSpotify:        endpoints.Spotify,
		domain.ProviderStrava:         endpoints.Strava,
	}

	configs := make(map[domain.Provider]*oauth2.Config, len(creds))
	for provider, c := range creds {
		if c.ClientID == "" || c.ClientSecret == "" {
			continue
		}
		endpoint, ok := tokenEndpoints[provider]
		if !ok {
			continue
		}
		configs[provider] = &oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			Endpoint:     endpoint,
		}
	}

	return &Refresher{configs: configs}
}

func (r *Refresher) Refresh(ctx context.Context, token domain.ProviderToken) (domain.ProviderToken, error) {
	cfg, ok := r.configs[token.Provider]
	if !ok {
		return domain.ProviderToken{}, fmt.Errorf("provider %s: no oauth client configured", token.Provider)
	}

	source := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: token.RefreshToken})
	fresh, err := source.Token()
	if err != nil {
		return domain.ProviderToken{}, fmt.Errorf("provider %s: refresh: %w", token.Provider, err)
	}

	token.AccessToken = fresh.AccessToken
	token.ExpiresAt = fresh.Expiry.UTC()
	// Some providers rotate the refresh token on every grant.
	if fresh.RefreshToken != "" {
		token.RefreshToken = fresh.RefreshToken
	}

	return token, nil
}
