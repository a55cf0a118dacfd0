package domain

import (
	"time"

	"github.com/google/uuid"
)

type Habit struct {
	ID      uuid.UUID
	UserID  string
	Name    string
	Cadence string
}

// Completion is one check-in; (HabitID, Day) is unique so re-logging the
// same day is a no-op, not a second row.
type Completion struct {
	HabitID uuid.UUID
	UserID  string
	Day     time.Time
}
