package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"lifeboard-service/internal/finance/core/domain"
	"lifeboard-service/internal/finance/core/ports"
	"lifeboard-service/internal/period"
	snapdomain "lifeboard-service/internal/snapshot/core/domain"
	snapports "lifeboard-service/internal/snapshot/core/ports"
	snapusecase "lifeboard-service/internal/snapshot/core/usecase"
)

type GetMonthlySpendUseCase struct {
	repo      ports.TransactionRepositoryPort
	snapshots snapports.StorePort
	logger    zerolog.Logger
	now       func() time.Time
}

func NewGetMonthlySpendUseCase(
	repo ports.TransactionRepositoryPort,
	snapshots snapports.StorePort,
	logger zerolog.Logger,
	now func() time.Time,
) *GetMonthlySpendUseCase {
	return &GetMonthlySpendUseCase{repo: repo, snapshots: snapshots, logger: logger, now: now}
}

type GetMonthlySpendInput struct {
	UserID     string
	Date       string // any day of the wanted month, YYYY-MM-DD; empty means this month
	Regenerate bool
}

// Execute returns the month's spend summary, cached as a monthly
// snapshot. The second return value reports whether the payload came
// from the cache.
func (uc *GetMonthlySpendUseCase) Execute(ctx context.Context, in GetMonthlySpendInput) (domain.SpendSummary, bool, error) {
	if in.UserID == "" {
		return domain.SpendSummary{}, false, ErrUnauthenticated
	}

	anchor := uc.now()
	if in.Date != "" {
		var err error
		if anchor, err = period.ParseDate(in.Date); err != nil {
			return domain.SpendSummary{}, false, err
		}
	}
	month := period.MonthOf(anchor)

	key := snapdomain.Key{
		UserID:      in.UserID,
		Kind:        snapdomain.KindFinanceMonthly,
		PeriodType:  period.Monthly,
		PeriodStart: month.Start,
	}

	return snapusecase.Resolve(ctx, uc.snapshots, uc.logger, key, in.Regenerate, uc.now(),
		func(ctx context.Context) (domain.SpendSummary, error) {
			txs, err := uc.repo.TransactionsInWindow(ctx, in.UserID, month)
			if err != nil {
				return domain.SpendSummary{}, err
			}
			return domain.SummarizeSpend(month, txs), nil
		})
}
