package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	fitdomain "lifeboard-service/internal/fitness/core/domain"
	fitports "lifeboard-service/internal/fitness/core/ports"
	"lifeboard-service/internal/integrations/core/domain"
	"lifeboard-service/internal/integrations/core/ports"
)

// refreshMargin is how far ahead of expiry a token is refreshed, so an
// access token never runs out mid-request.
const refreshMargin = 10 * time.Minute

// refreshAbandon caps how long the scheduled pass keeps retrying an
// expired token. One that stayed expired this long has a dead grant
// (revoked, or no client credentials configured); a per-user sync still
// attempts it, the background pass leaves it alone.
const refreshAbandon = 24 * time.Hour

type SyncUseCase struct {
	tokens     ports.TokenStorePort
	refresher  ports.RefresherPort
	activities ports.ActivitySourcePort
	workouts   fitports.WorkoutRepositoryPort
	logger     zerolog.Logger
	now        func() time.Time
}

func NewSyncUseCase(
	tokens ports.TokenStorePort,
	refresher ports.RefresherPort,
	activities ports.ActivitySourcePort,
	workouts fitports.WorkoutRepositoryPort,
	logger zerolog.Logger,
	now func() time.Time,
) *SyncUseCase {
	return &SyncUseCase{
		tokens:     tokens,
		refresher:  refresher,
		activities: activities,
		workouts:   workouts,
		logger:     logger,
		now:        now,
	}
}

type SyncReport struct {
	Refreshed int `json:"refreshed"`
	Imported  int `json:"imported"`
}

// Run is the scheduled pass: refresh every expiring token, then import
// finished strava activities for every connected account. One failing
// provider call is logged and skipped so the pass keeps going.
func (uc *SyncUseCase) Run(ctx context.Context) (SyncReport, error) {
	var report SyncReport

	expiring, err := uc.tokens.ListExpiring(ctx, uc.now().Add(-refreshAbandon), uc.now().Add(refreshMargin))
	if err != nil {
		return report, err
	}
	report.Refreshed = uc.refreshAll(ctx, expiring)

	stravaTokens, err := uc.tokens.ListByProvider(ctx, domain.ProviderStrava)
	if err != nil {
		return report, err
	}
	for _, token := range stravaTokens {
		n, err := uc.importActivities(ctx, token)
		if err != nil {
			uc.logger.Warn().Err(err).Str("user_id", token.UserID).Msg("strava import failed")
			continue
		}
		report.Imported += n
	}

	return report, nil
}

// SyncUser runs the same pass scoped to one user's connected accounts.
func (uc *SyncUseCase) SyncUser(ctx context.Context, userID string) (SyncReport, error) {
	var report SyncReport
	if userID == "" {
		return report, ErrUnauthenticated
	}

	tokens, err := uc.tokens.ListForUser(ctx, userID)
	if err != nil {
		return report, err
	}

	deadline := uc.now().Add(refreshMargin)
	for i, token := range tokens {
		if !token.Expiring(deadline) {
			continue
		}
		refreshed, ok := uc.refreshOne(ctx, token)
		if !ok {
			continue
		}
		tokens[i] = refreshed
		report.Refreshed++
	}

	for _, token := range tokens {
		if token.Provider != domain.ProviderStrava {
			continue
		}
		n, err := uc.importActivities(ctx, token)
		if err != nil {
			return report, err
		}
		report.Imported += n
	}

	return report, nil
}

func (uc *SyncUseCase) refreshAll(ctx context.Context, tokens []domain.ProviderToken) int {
	var refreshed int
	for _, token := range tokens {
		if _, ok := uc.refreshOne(ctx, token); ok {
			refreshed++
		}
	}
	return refreshed
}

func (uc *SyncUseCase) refreshOne(ctx context.Context, token domain.ProviderToken) (domain.ProviderToken, bool) {
	fresh, err := uc.refresher.Refresh(ctx, token)
	if err != nil {
		uc.logger.Warn().Err(err).
			Str("user_id", token.UserID).
			Str("provider", string(token.Provider)).
			Msg("token refresh failed")
		return token, false
	}
	fresh.UpdatedAt = uc.now().UTC()
	if err := uc.tokens.Upsert(ctx, &fresh); err != nil {
		uc.logger.Warn().Err(err).
			Str("user_id", token.UserID).
			Str("provider", string(token.Provider)).
			Msg("refreshed token write failed")
		return token, false
	}
	return fresh, true
}

// importActivities writes each finished activity as a completed workout
// session. Activities finished before the token's synced_at were
// already imported by an earlier pass; the cursor moves only after the
// whole batch is written, so a refresh in between cannot skip anything.
func (uc *SyncUseCase) importActivities(ctx context.Context, token domain.ProviderToken) (int, error) {
	acts, err := uc.activities.FinishedActivities(ctx, token, token.SyncedAt)
	if err != nil {
		return 0, err
	}

	var imported int
	for _, act := range acts {
		session := &fitdomain.Session{
			ID:        uuid.New(),
			UserID:    token.UserID,
			StartedAt: act.StartedAt.UTC(),
		}
		if err := uc.workouts.InsertSession(ctx, session); err != nil {
			return imported, err
		}
		if _, err := uc.workouts.CompleteSession(ctx, token.UserID, session.ID, act.CompletedAt.UTC()); err != nil {
			return imported, err
		}
		imported++
	}

	if err := uc.tokens.SetCursor(ctx, token.UserID, token.Provider, uc.now().UTC()); err != nil {
		return imported, err
	}

	return imported, nil
}
