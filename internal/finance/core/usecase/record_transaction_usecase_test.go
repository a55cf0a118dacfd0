package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifeboard-service/internal/finance/core/domain"
	"lifeboard-service/internal/finance/core/usecase"
	"lifeboard-service/internal/period"
)

var fixedNow = time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC)

func nowFn() time.Time { return fixedNow }

// fakeTransactionRepo implements ports.TransactionRepositoryPort for tests.
type fakeTransactionRepo struct {
	InsertFn       func(ctx context.Context, tx *domain.Transaction) error
	TransactionsFn func(ctx context.Context, userID string, w period.Window) ([]domain.Transaction, error)

	queryCalls int
}

func (f *fakeTransactionRepo) InsertTransaction(ctx context.Context, tx *domain.Transaction) error {
	if f.InsertFn != nil {
		return f.InsertFn(ctx, tx)
	}
	return nil
}

func (f *fakeTransactionRepo) TransactionsInWindow(ctx context.Context, userID string, w period.Window) ([]domain.Transaction, error) {
	f.queryCalls++
	if f.TransactionsFn != nil {
		return f.TransactionsFn(ctx, userID, w)
	}
	return nil, nil
}

func TestRecordTransaction_DefaultsToNow(t *testing.T) {
	var inserted *domain.Transaction
	repo := &fakeTransactionRepo{
		InsertFn: func(ctx context.Context, tx *domain.Transaction) error {
			inserted = tx
			return nil
		},
	}
	uc := usecase.NewRecordTransactionUseCase(repo, nowFn)

	tx, err := uc.Execute(context.Background(), usecase.RecordTransactionInput{
		UserID:   "user_1",
		Amount:   42.50,
		Category: "groceries",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tx.OccurredAt.Equal(fixedNow) {
		t.Fatalf("expected occurred_at=%v, got %v", fixedNow, tx.OccurredAt)
	}
	if inserted == nil || inserted.Amount != 42.50 {
		t.Fatalf("unexpected insert: %+v", inserted)
	}
}

func TestRecordTransaction_RefundAllowed(t *testing.T) {
	uc := usecase.NewRecordTransactionUseCase(&fakeTransactionRepo{}, nowFn)

	tx, err := uc.Execute(context.Background(), usecase.RecordTransactionInput{
		UserID:   "user_1",
		Amount:   -40,
		Category: "gear",
	})
	if err != nil {
		t.Fatalf("refund must be accepted, got %v", err)
	}
	if tx.Amount != -40 {
		t.Fatalf("unexpected amount: %v", tx.Amount)
	}
}

func TestRecordTransaction_Validation(t *testing.T) {
	uc := usecase.NewRecordTransactionUseCase(&fakeTransactionRepo{}, nowFn)

	if _, err := uc.Execute(context.Background(), usecase.RecordTransactionInput{Amount: 1, Category: "x"}); !errors.Is(err, usecase.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), usecase.RecordTransactionInput{UserID: "u", Amount: 1}); !errors.Is(err, usecase.ErrInvalidTransaction) {
		t.Fatalf("expected ErrInvalidTransaction for missing category, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), usecase.RecordTransactionInput{UserID: "u", Category: "x"}); !errors.Is(err, usecase.ErrInvalidTransaction) {
		t.Fatalf("expected ErrInvalidTransaction for zero amount, got %v", err)
	}
}

func TestRecordTransaction_FutureTimestamp(t *testing.T) {
	uc := usecase.NewRecordTransactionUseCase(&fakeTransactionRepo{}, nowFn)

	_, err := uc.Execute(context.Background(), usecase.RecordTransactionInput{
		UserID:    "user_1",
		Amount:    10,
		Category:  "groceries",
		Timestamp: fixedNow.Add(time.Hour).Unix(),
	})
	if !errors.Is(err, usecase.ErrFutureTime) {
		t.Fatalf("expected ErrFutureTime, got %v", err)
	}
}
