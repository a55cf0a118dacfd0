package domain

import (
	"time"

	"lifeboard-service/internal/period"
)

// Metric names exposed in a review payload.
const (
	MetricHabitCompletionRate = "habit_completion_rate"
	MetricWorkoutSessions     = "workout_sessions"
	MetricTrainingVolumeKg    = "training_volume_kg"
	MetricTotalSpend          = "total_spend"
)

// Review is one period's cross-feature summary. Metrics are computed
// independently; a metric with no contributing rows is present with a
// zero value.
type Review struct {
	From       string             `json:"from"`
	To         string             `json:"to"`
	PeriodType period.Type        `json:"period_type"`
	Metrics    map[string]float64 `json:"metrics"`
	ComputedAt time.Time          `json:"computed_at"`
}
