package domain

import "time"

// Activity is a finished workout fetched from a provider, reduced to
// the fields a workout session import needs.
type Activity struct {
	ExternalID  string
	StartedAt   time.Time
	CompletedAt time.Time
}
