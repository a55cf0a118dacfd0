package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"lifeboard-service/internal/finance/core/domain"
	"lifeboard-service/internal/finance/core/ports"
)

var (
	ErrUnauthenticated    = errors.New("missing caller identity")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrFutureTime         = errors.New("timestamp cannot be in the future")
)

type RecordTransactionUseCase struct {
	repo ports.TransactionRepositoryPort
	now  func() time.Time
}

func NewRecordTransactionUseCase(repo ports.TransactionRepositoryPort, now func() time.Time) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{repo: repo, now: now}
}

type RecordTransactionInput struct {
	UserID    string
	Amount    float64
	Category  string
	Timestamp int64
}

func (uc *RecordTransactionUseCase) Execute(ctx context.Context, in RecordTransactionInput) (*domain.Transaction, error) {
	if in.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if in.Category == "" || in.Amount == 0 {
		return nil, ErrInvalidTransaction
	}
	if in.Timestamp > uc.now().Unix() {
		return nil, ErrFutureTime
	}

	occurredAt := time.Unix(in.Timestamp, 0).UTC()
	if in.Timestamp == 0 {
		occurredAt = uc.now().UTC()
	}

	tx := &domain.Transaction{
		ID:         uuid.New(),
		UserID:     in.UserID,
		Amount:     in.Amount,
		Category:   in.Category,
		OccurredAt: occurredAt,
	}

	if err := uc.repo.InsertTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}
