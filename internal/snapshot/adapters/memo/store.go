// Package memo layers a process-local read-through cache over a snapshot
// store, so repeated page views inside the TTL skip the database entirely.
package memo

import (
	"context"
	"time"

	"github.com/viccon/sturdyc"

	"lifeboard-service/internal/snapshot/core/domain"
	"lifeboard-service/internal/snapshot/core/ports"
)

const (
	cacheCapacity    = 10000
	cacheShards      = 64
	cacheEvictionPct = 10
)

type Store struct {
	inner  ports.StorePort
	client *sturdyc.Client[*domain.Snapshot]
}

func NewStore(inner ports.StorePort, ttl time.Duration) *Store {
	return &Store{
		inner:  inner,
		client: sturdyc.New[*domain.Snapshot](cacheCapacity, cacheShards, ttl, cacheEvictionPct),
	}
}

var _ ports.StorePort = (*Store)(nil)

func (s *Store) Get(ctx context.Context, key domain.Key) (*domain.Snapshot, error) {
	return s.client.GetOrFetch(ctx, key.String(), func(ctx context.Context) (*domain.Snapshot, error) {
		return s.inner.Get(ctx, key)
	})
}

// Put writes through and drops the memo entry so the next Get refetches.
func (s *Store) Put(ctx context.Context, snap *domain.Snapshot) error {
	if err := s.inner.Put(ctx, snap); err != nil {
		return err
	}
	s.client.Delete(snap.Key.String())
	return nil
}

func (s *Store) Delete(ctx context.Context, key domain.Key) error {
	if err := s.inner.Delete(ctx, key); err != nil {
		return err
	}
	s.client.Delete(key.String())
	return nil
}
