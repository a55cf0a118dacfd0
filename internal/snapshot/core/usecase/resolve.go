package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"lifeboard-service/internal/snapshot/core/domain"
	"lifeboard-service/internal/snapshot/core/ports"
)

// Resolve is the cache-or-compute cycle every summary usecase runs:
// look up the snapshot for the key, on hit return it, on miss (or when
// regenerate is set) run compute, persist the result and return it.
//
// Failure semantics follow the cache contract: a store error on Get falls
// through to computation, and a store error on Put is logged but never
// fails the request, since the fresh payload is already in hand.
func Resolve[T any](
	ctx context.Context,
	store ports.StorePort,
	logger zerolog.Logger,
	key domain.Key,
	regenerate bool,
	now time.Time,
	compute func(context.Context) (T, error),
) (T, bool, error) {
	var zero T

	if regenerate {
		// delete-then-recompute so a concurrent reader never sees the
		// stale row win over the fresh write
		if err := store.Delete(ctx, key); err != nil {
			logger.Warn().Err(err).Str("key", key.String()).Msg("stale snapshot delete failed")
		}
	} else {
		snap, err := store.Get(ctx, key)
		switch {
		case err != nil:
			logger.Warn().Err(err).Str("key", key.String()).Msg("snapshot read failed, recomputing")
		case snap != nil:
			var cached T
			decodeErr := json.Unmarshal(snap.Payload, &cached)
			if decodeErr == nil {
				return cached, true, nil
			}
			logger.Warn().Err(decodeErr).Str("key", key.String()).Msg("snapshot payload unreadable, recomputing")
		}
	}

	fresh, err := compute(ctx)
	if err != nil {
		return zero, false, err
	}

	payload, err := json.Marshal(fresh)
	if err != nil {
		logger.Warn().Err(err).Str("key", key.String()).Msg("snapshot encode failed, returning uncached result")
		return fresh, false, nil
	}

	if err := store.Put(ctx, &domain.Snapshot{Key: key, Payload: payload, ComputedAt: now}); err != nil {
		logger.Warn().Err(err).Str("key", key.String()).Msg("snapshot write failed, returning uncached result")
	}

	return fresh, false, nil
}
