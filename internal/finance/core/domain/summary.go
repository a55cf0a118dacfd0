package domain

import "lifeboard-service/internal/period"

// SpendSummary is the month's spend rollup; an empty month yields zero
// totals and an empty category map, never an error.
type SpendSummary struct {
	Month      string             `json:"month"` // first day of the month, YYYY-MM-DD
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"by_category"`
	Count      int                `json:"count"`
}

// SummarizeSpend reduces the window's transactions into totals per
// category. Refunds (negative amounts) subtract from their category and
// from the total.
func SummarizeSpend(w period.Window, txs []Transaction) SpendSummary {
	s := SpendSummary{
		Month:      period.FormatDate(w.Start),
		ByCategory: map[string]float64{},
	}

	for _, tx := range txs {
		if !w.Contains(tx.OccurredAt) {
			continue
		}
		s.Total += tx.Amount
		s.ByCategory[tx.Category] += tx.Amount
		s.Count++
	}

	return s
}
