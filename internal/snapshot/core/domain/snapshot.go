package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"lifeboard-service/internal/period"
)

// Kind names the feature a snapshot belongs to. One shared table carries
// every domain's snapshots, so the kind is part of the unique key.
type Kind string

const (
	KindNutritionDaily Kind = "nutrition_daily"
	KindFitnessMonthly Kind = "fitness_monthly"
	KindFinanceMonthly Kind = "finance_monthly"
	KindReview         Kind = "review"
)

// Key identifies exactly one snapshot row. At most one row exists per key.
type Key struct {
	UserID      string
	Kind        Kind
	PeriodType  period.Type
	PeriodStart time.Time
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%s|%s|%s", k.UserID, k.Kind, k.PeriodType, period.FormatDate(k.PeriodStart))
}

// Snapshot is a persisted aggregate for one period. It is replaced
// wholesale on recomputation, never partially updated.
type Snapshot struct {
	Key        Key
	Payload    json.RawMessage
	ComputedAt time.Time
}
