package fiber

// LogIntakeRequest is the intake logging payload.
// @Description Intake event creation DTO
type LogIntakeRequest struct {
	MealType  string              `json:"meal_type"`
	Timestamp int64               `json:"timestamp"`
	Items     []IntakeItemRequest `json:"items"`
}

type IntakeItemRequest struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`

	EditedCalories *float64 `json:"edited_calories,omitempty"`
	EditedProtein  *float64 `json:"edited_protein,omitempty"`
	EditedCarbs    *float64 `json:"edited_carbs,omitempty"`
	EditedFat      *float64 `json:"edited_fat,omitempty"`
}

type LogIntakeResponse struct {
	EventID string `json:"event_id"`
	Items   int    `json:"items"`
}

type DailySummaryResponse struct {
	Date      string  `json:"date"`
	Calories  float64 `json:"calories"`
	ProteinG  float64 `json:"protein_g"`
	CarbsG    float64 `json:"carbs_g"`
	FatG      float64 `json:"fat_g"`
	ItemCount int     `json:"item_count"`
	Cached    bool    `json:"cached"`
}

type EstimateRequest struct {
	Description string `json:"description"`
}

type EstimateResponse struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}
