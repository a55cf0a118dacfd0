package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	findomain "lifeboard-service/internal/finance/core/domain"
	fitdomain "lifeboard-service/internal/fitness/core/domain"
	habitdomain "lifeboard-service/internal/habits/core/domain"
	"lifeboard-service/internal/period"
	"lifeboard-service/internal/reviews/core/domain"
	"lifeboard-service/internal/reviews/core/ports"
	snapdomain "lifeboard-service/internal/snapshot/core/domain"
	snapports "lifeboard-service/internal/snapshot/core/ports"
	snapusecase "lifeboard-service/internal/snapshot/core/usecase"
)

var (
	ErrUnauthenticated = errors.New("missing caller identity")
	ErrInvalidPeriod   = errors.New("period must be weekly or monthly")
)

type GetReviewUseCase struct {
	habits       ports.HabitReaderPort
	workouts     ports.WorkoutReaderPort
	transactions ports.TransactionReaderPort
	snapshots    snapports.StorePort
	logger       zerolog.Logger
	now          func() time.Time
}

func NewGetReviewUseCase(
	habits ports.HabitReaderPort,
	workouts ports.WorkoutReaderPort,
	transactions ports.TransactionReaderPort,
	snapshots snapports.StorePort,
	logger zerolog.Logger,
	now func() time.Time,
) *GetReviewUseCase {
	return &GetReviewUseCase{
		habits:       habits,
		workouts:     workouts,
		transactions: transactions,
		snapshots:    snapshots,
		logger:       logger,
		now:          now,
	}
}

type GetReviewInput struct {
	UserID     string
	PeriodType period.Type // weekly or monthly
	Regenerate bool
}

// Execute assembles the period's cross-feature review, cached per
// (user, period type, period start). The second return value reports
// whether the payload came from the cache.
func (uc *GetReviewUseCase) Execute(ctx context.Context, in GetReviewInput) (domain.Review, bool, error) {
	if in.UserID == "" {
		return domain.Review{}, false, ErrUnauthenticated
	}
	if in.PeriodType != period.Weekly && in.PeriodType != period.Monthly {
		return domain.Review{}, false, ErrInvalidPeriod
	}

	w, err := period.ForType(in.PeriodType, uc.now())
	if err != nil {
		return domain.Review{}, false, ErrInvalidPeriod
	}

	key := snapdomain.Key{
		UserID:      in.UserID,
		Kind:        snapdomain.KindReview,
		PeriodType:  in.PeriodType,
		PeriodStart: w.Start,
	}

	return snapusecase.Resolve(ctx, uc.snapshots, uc.logger, key, in.Regenerate, uc.now(),
		func(ctx context.Context) (domain.Review, error) {
			metrics, err := uc.computeMetrics(ctx, in.UserID, w)
			if err != nil {
				return domain.Review{}, err
			}
			return domain.Review{
				From:       period.FormatDate(w.Start),
				To:         period.FormatDate(w.End.AddDate(0, 0, -1)),
				PeriodType: in.PeriodType,
				Metrics:    metrics,
				ComputedAt: uc.now().UTC(),
			}, nil
		})
}

func (uc *GetReviewUseCase) computeMetrics(ctx context.Context, userID string, w period.Window) (map[string]float64, error) {
	metrics := make(map[string]float64, 4)

	habitCount, err := uc.habits.CountHabits(ctx, userID)
	if err != nil {
		return nil, err
	}
	completions, err := uc.habits.CompletionsInWindow(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	metrics[domain.MetricHabitCompletionRate] = habitdomain.CompletionRate(w, habitCount, completions).Rate

	sessions, err := uc.workouts.SessionsInWindow(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	sets, err := uc.workouts.SetsInWindow(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	stats := fitdomain.WindowRollup(w, sessions, sets)
	metrics[domain.MetricWorkoutSessions] = float64(stats.SessionCount)
	metrics[domain.MetricTrainingVolumeKg] = stats.VolumeKg

	txs, err := uc.transactions.TransactionsInWindow(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	metrics[domain.MetricTotalSpend] = findomain.SummarizeSpend(w, txs).Total

	return metrics, nil
}
