package ports

import (
	"context"

	"lifeboard-service/internal/finance/core/domain"
	"lifeboard-service/internal/period"
)

type TransactionRepositoryPort interface {
	InsertTransaction(ctx context.Context, tx *domain.Transaction) error

	TransactionsInWindow(ctx context.Context, userID string, w period.Window) ([]domain.Transaction, error)
}
