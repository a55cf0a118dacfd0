package domain

import "time"

// Provider identifies a connected third-party account.
type Provider string

const (
	ProviderGoogleCalendar Provider = "google_calendar"
	ProviderSpotify        Provider = "spotify"
	ProviderStrava         Provider = "strava"
)

func (p Provider) Valid() bool {
	return p == ProviderGoogleCalendar || p == ProviderSpotify || p == ProviderStrava
}

// ProviderToken holds one user's OAuth credentials for a provider. The
// redirect/consent flow happens outside this service; tokens arrive
// already granted and are only stored and refreshed here.
type ProviderToken struct {
	UserID       string
	Provider     Provider
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	UpdatedAt    time.Time

	// SyncedAt is the activity-import watermark: activities finished
	// before it were already imported. Credential writes must not move
	// it; only a completed import does.
	SyncedAt time.Time
}

// Expiring reports whether the access token expires before the deadline.
func (t ProviderToken) Expiring(deadline time.Time) bool {
	return t.ExpiresAt.Before(deadline)
}
