package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config is the full runtime configuration, decoded from the environment.
type Config struct {
	ListenAddr  string `env:"LISTEN_ADDR,default=:8080"`
	PostgresDSN string `env:"POSTGRES_DSN,required"`
	JWTSecret   string `env:"JWT_SECRET,required"`

	// OpenAIKey is optional; without it macro estimation answers
	// config_missing instead of failing startup.
	OpenAIKey string `env:"OPENAI_API_KEY"`

	SnapshotTTL     time.Duration `env:"SNAPSHOT_CACHE_TTL,default=5m"`
	EstimatorQuota  int           `env:"ESTIMATOR_QUOTA_PER_MINUTE,default=5"`
	SyncSchedule    string        `env:"SYNC_SCHEDULE,default=@every 15m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`

	// OAuth client credentials per provider. A provider without
	// credentials keeps accepting tokens but skips refreshes.
	GoogleClientID      string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret  string `env:"GOOGLE_CLIENT_SECRET"`
	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID"`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET"`
	StravaClientID      string `env:"STRAVA_CLIENT_ID"`
	StravaClientSecret  string `env:"STRAVA_CLIENT_SECRET"`
}

// Load decodes the configuration from the process environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
