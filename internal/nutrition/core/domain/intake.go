package domain

import (
	"time"

	"github.com/google/uuid"
)

type IntakeEvent struct {
	ID         uuid.UUID
	UserID     string
	MealType   string
	OccurredAt time.Time
}

// IntakeItem carries both the estimated macros and the optional user
// edits. The edited value always wins in aggregation when present.
type IntakeItem struct {
	ID      uuid.UUID
	EventID uuid.UUID
	Name    string

	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64

	EditedCalories *float64
	EditedProtein  *float64
	EditedCarbs    *float64
	EditedFat      *float64
}

func effective(estimated float64, edited *float64) float64 {
	if edited != nil {
		return *edited
	}
	return estimated
}

func (i IntakeItem) EffectiveCalories() float64 { return effective(i.Calories, i.EditedCalories) }
func (i IntakeItem) EffectiveProtein() float64  { return effective(i.ProteinG, i.EditedProtein) }
func (i IntakeItem) EffectiveCarbs() float64    { return effective(i.CarbsG, i.EditedCarbs) }
func (i IntakeItem) EffectiveFat() float64      { return effective(i.FatG, i.EditedFat) }

// MacroEstimate is what the AI estimator returns for a food description.
type MacroEstimate struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}
