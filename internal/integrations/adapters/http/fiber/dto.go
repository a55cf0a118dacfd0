package fiber

// StoreTokenRequest saves granted OAuth credentials for a provider.
// @Description Provider token upsert DTO
type StoreTokenRequest struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

type TokenResponse struct {
	Provider  string `json:"provider"`
	ExpiresAt string `json:"expires_at"`
}

type SyncResponse struct {
	Refreshed int `json:"refreshed"`
	Imported  int `json:"imported"`
}
