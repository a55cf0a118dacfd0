package fiber

// RecordTransactionRequest logs one expense or refund.
// @Description Transaction creation DTO
type RecordTransactionRequest struct {
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Timestamp int64   `json:"timestamp"`
}

type TransactionResponse struct {
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	OccurredAt    string  `json:"occurred_at"`
}

type SpendResponse struct {
	Month      string             `json:"month"`
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"by_category"`
	Count      int                `json:"count"`
	Cached     bool               `json:"cached"`
}
