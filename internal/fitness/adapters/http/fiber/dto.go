package fiber

// StartSessionRequest opens a workout session.
// @Description Workout session creation DTO
type StartSessionRequest struct {
	Timestamp int64 `json:"timestamp"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
	StartedAt string `json:"started_at"`
}

type LogSetRequest struct {
	SessionID string  `json:"session_id"`
	Exercise  string  `json:"exercise"`
	Reps      int     `json:"reps"`
	LoadKg    float64 `json:"load_kg"`
}

type SetResponse struct {
	SetID    string  `json:"set_id"`
	VolumeKg float64 `json:"volume_kg"`
}

type RollupResponse struct {
	Streak          int     `json:"streak"`
	MonthlyVolumeKg float64 `json:"monthly_volume_kg"`
	SessionCount    int     `json:"session_count"`
	PRCount         int     `json:"pr_count"`
}
