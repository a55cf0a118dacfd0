package domain

// DailySummary is the persisted metrics payload for one calendar day.
type DailySummary struct {
	Date      string  `json:"date"`
	Calories  float64 `json:"calories"`
	ProteinG  float64 `json:"protein_g"`
	CarbsG    float64 `json:"carbs_g"`
	FatG      float64 `json:"fat_g"`
	ItemCount int     `json:"item_count"`
}

// Summarize reduces the day's already-loaded items into totals. It is a
// pure pass: no I/O, float accumulation throughout, rounding left to the
// presentation layer. An empty item set yields all-zero totals.
func Summarize(date string, items []IntakeItem) DailySummary {
	s := DailySummary{Date: date}
	for _, it := range items {
		s.Calories += it.EffectiveCalories()
		s.ProteinG += it.EffectiveProtein()
		s.CarbsG += it.EffectiveCarbs()
		s.FatG += it.EffectiveFat()
		s.ItemCount++
	}
	return s
}
