package domain

import (
	"time"

	"lifeboard-service/internal/period"
)

// StreakAsOf counts consecutive qualifying days ending at or before today.
// A day qualifies when it saw at least one completed session. Today having
// no completion yet does not break the streak: the walk simply starts at
// yesterday, so a streak only resets once a full day has elapsed without
// a workout.
func StreakAsOf(today time.Time, completionDays []time.Time) int {
	qualifying := make(map[time.Time]struct{}, len(completionDays))
	for _, d := range completionDays {
		qualifying[period.Truncate(d)] = struct{}{}
	}

	day := period.Truncate(today)
	if _, ok := qualifying[day]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := qualifying[day]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
