package domain

import "lifeboard-service/internal/period"

// RateSummary reports how many habit-days of the window were checked in.
type RateSummary struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	HabitCount  int     `json:"habit_count"`
	Completions int     `json:"completions"`
	Rate        float64 `json:"rate"` // percent, 0 when no habit-days exist
}

// CompletionRate reduces the window's completions against the habit
// count. Zero habits or an empty window yields a zero rate, never an
// error: partial data is "no comparison available", not a failure.
func CompletionRate(w period.Window, habitCount int, completions []Completion) RateSummary {
	s := RateSummary{
		From:       period.FormatDate(w.Start),
		To:         period.FormatDate(w.End.AddDate(0, 0, -1)),
		HabitCount: habitCount,
	}

	for _, c := range completions {
		if w.Contains(c.Day) {
			s.Completions++
		}
	}

	days := int(w.End.Sub(w.Start).Hours() / 24)
	habitDays := habitCount * days
	if habitDays > 0 {
		s.Rate = float64(s.Completions) / float64(habitDays) * 100
	}

	return s
}
