package middleware

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Quota throttles expensive calls to a per-key budget over a rolling
// minute. It is a soft, per-process courtesy limit: state lives in one
// process and is lost on restart, which is acceptable for its purpose.
type Quota struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewQuota allows perMinute calls per key, with a burst of the same size.
func NewQuota(perMinute int) *Quota {
	if perMinute < 1 {
		perMinute = 1
	}
	return &Quota{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

// Allow reports whether the key has budget left and consumes one unit.
func (q *Quota) Allow(key string) bool {
	q.mu.Lock()
	limiter, ok := q.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(q.limit, q.burst)
		q.limiters[key] = limiter
	}
	q.mu.Unlock()

	return limiter.Allow()
}
