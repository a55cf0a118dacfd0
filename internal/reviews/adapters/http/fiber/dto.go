package fiber

type ReviewResponse struct {
	From       string             `json:"from"`
	To         string             `json:"to"`
	PeriodType string             `json:"period_type"`
	Metrics    map[string]float64 `json:"metrics"`
	ComputedAt string             `json:"computed_at"`
	Cached     bool               `json:"cached"`
}
