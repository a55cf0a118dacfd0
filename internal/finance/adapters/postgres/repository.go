package postgres

import (
	"context"

	"lifeboard-service/internal/finance/core/domain"
	"lifeboard-service/internal/finance/core/ports"
	"lifeboard-service/internal/period"
)

type TransactionRepository struct {
	db DB
}

func NewTransactionRepository(db DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

var _ ports.TransactionRepositoryPort = (*TransactionRepository)(nil)

const insertTransactionSQL = `
INSERT INTO transactions (
    id,
    user_id,
    amount,
    category,
    occurred_at
) VALUES (
    $1, $2, $3, $4, $5
);
`

const transactionsInWindowSQL = `
SELECT id, user_id, amount, category, occurred_at
FROM transactions
WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3
ORDER BY occurred_at;
`

func (r *TransactionRepository) InsertTransaction(ctx context.Context, tx *domain.Transaction) error {
	_, err := r.db.ExecContext(ctx, insertTransactionSQL,
		tx.ID, tx.UserID, tx.Amount, tx.Category, tx.OccurredAt,
	)
	return err
}

func (r *TransactionRepository) TransactionsInWindow(ctx context.Context, userID string, w period.Window) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, transactionsInWindowSQL, userID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Category, &tx.OccurredAt); err != nil {
			return nil, err
		}
		tx.OccurredAt = tx.OccurredAt.UTC()
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return txs, nil
}
