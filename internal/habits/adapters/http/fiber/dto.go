package fiber

// CreateHabitRequest registers a recurring habit.
// @Description Habit creation DTO
type CreateHabitRequest struct {
	Name    string `json:"name"`
	Cadence string `json:"cadence"`
}

type HabitResponse struct {
	HabitID string `json:"habit_id"`
	Name    string `json:"name"`
	Cadence string `json:"cadence"`
}

type CheckInRequest struct {
	Day string `json:"day"`
}

type CheckInResponse struct {
	HabitID string `json:"habit_id"`
	Day     string `json:"day"`
	Created bool   `json:"created"`
}

type RateResponse struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	HabitCount  int     `json:"habit_count"`
	Completions int     `json:"completions"`
	Rate        float64 `json:"rate"`
}
