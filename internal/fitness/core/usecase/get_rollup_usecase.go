package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"lifeboard-service/internal/fitness/core/domain"
	"lifeboard-service/internal/fitness/core/ports"
	"lifeboard-service/internal/period"
	snapdomain "lifeboard-service/internal/snapshot/core/domain"
	snapports "lifeboard-service/internal/snapshot/core/ports"
	snapusecase "lifeboard-service/internal/snapshot/core/usecase"
)

type GetRollupUseCase struct {
	repo      ports.WorkoutRepositoryPort
	snapshots snapports.StorePort
	logger    zerolog.Logger
	now       func() time.Time
}

func NewGetRollupUseCase(
	repo ports.WorkoutRepositoryPort,
	snapshots snapports.StorePort,
	logger zerolog.Logger,
	now func() time.Time,
) *GetRollupUseCase {
	return &GetRollupUseCase{repo: repo, snapshots: snapshots, logger: logger, now: now}
}

type GetRollupInput struct {
	UserID     string
	Regenerate bool
}

// Execute assembles the gamification rollup. The monthly stats go through
// the snapshot cache; the streak is always computed fresh since a stale
// streak is immediately visible to the user.
func (uc *GetRollupUseCase) Execute(ctx context.Context, in GetRollupInput) (domain.Rollup, error) {
	if in.UserID == "" {
		return domain.Rollup{}, ErrUnauthenticated
	}

	now := uc.now()
	month := period.MonthOf(now)

	key := snapdomain.Key{
		UserID:      in.UserID,
		Kind:        snapdomain.KindFitnessMonthly,
		PeriodType:  period.Monthly,
		PeriodStart: month.Start,
	}

	monthly, _, err := snapusecase.Resolve(ctx, uc.snapshots, uc.logger, key, in.Regenerate, now,
		func(ctx context.Context) (domain.MonthlyStats, error) {
			sessions, err := uc.repo.SessionsInWindow(ctx, in.UserID, month)
			if err != nil {
				return domain.MonthlyStats{}, err
			}
			sets, err := uc.repo.SetsInWindow(ctx, in.UserID, month)
			if err != nil {
				return domain.MonthlyStats{}, err
			}
			return domain.WindowRollup(month, sessions, sets), nil
		})
	if err != nil {
		return domain.Rollup{}, err
	}

	days, err := uc.repo.CompletionDays(ctx, in.UserID, now)
	if err != nil {
		return domain.Rollup{}, err
	}

	return domain.Rollup{
		Streak:  domain.StreakAsOf(now, days),
		Monthly: monthly,
	}, nil
}
