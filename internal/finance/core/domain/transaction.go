package domain

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID         uuid.UUID
	UserID     string
	Amount     float64
	Category   string
	OccurredAt time.Time
}
