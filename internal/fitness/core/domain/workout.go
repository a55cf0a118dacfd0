package domain

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID          uuid.UUID
	UserID      string
	StartedAt   time.Time
	CompletedAt *time.Time
}

func (s Session) Completed() bool {
	return s.CompletedAt != nil
}

type Set struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Exercise  string
	Reps      int
	LoadKg    float64
}

// Volume is reps times load, the unit every rollup sums.
func (s Set) Volume() float64 {
	return float64(s.Reps) * s.LoadKg
}

// Rollup is the gamification payload: the monthly part is snapshot-cached,
// the streak is recomputed on every request and never persisted.
type Rollup struct {
	Streak  int          `json:"streak"`
	Monthly MonthlyStats `json:"monthly"`
}

type MonthlyStats struct {
	VolumeKg     float64 `json:"volume_kg"`
	SessionCount int     `json:"session_count"`
	PRCount      int     `json:"pr_count"`
}
