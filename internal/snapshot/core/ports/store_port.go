package ports

import (
	"context"

	"lifeboard-service/internal/snapshot/core/domain"
)

// StorePort is the snapshot cache contract every summary usecase consumes.
type StorePort interface {
	// Get returns (nil, nil) when no snapshot exists for the key; absence
	// is a signal to compute, not an error.
	Get(ctx context.Context, key domain.Key) (*domain.Snapshot, error)

	// Put writes-or-replaces the snapshot for its key. Concurrent writers
	// for the same key never produce two rows; the last writer wins.
	Put(ctx context.Context, snap *domain.Snapshot) error

	// Delete removes the snapshot for the key, if any.
	Delete(ctx context.Context, key domain.Key) error
}
