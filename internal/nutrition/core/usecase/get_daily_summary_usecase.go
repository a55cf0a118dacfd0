package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"lifeboard-service/internal/nutrition/core/domain"
	"lifeboard-service/internal/nutrition/core/ports"
	"lifeboard-service/internal/period"
	snapdomain "lifeboard-service/internal/snapshot/core/domain"
	snapports "lifeboard-service/internal/snapshot/core/ports"
	snapusecase "lifeboard-service/internal/snapshot/core/usecase"
)

type GetDailySummaryUseCase struct {
	repo      ports.IntakeRepositoryPort
	snapshots snapports.StorePort
	logger    zerolog.Logger
	now       func() time.Time
}

func NewGetDailySummaryUseCase(
	repo ports.IntakeRepositoryPort,
	snapshots snapports.StorePort,
	logger zerolog.Logger,
	now func() time.Time,
) *GetDailySummaryUseCase {
	return &GetDailySummaryUseCase{repo: repo, snapshots: snapshots, logger: logger, now: now}
}

type GetDailySummaryInput struct {
	UserID     string
	Date       string // YYYY-MM-DD, empty means today
	Regenerate bool
}

// Execute returns the day's summary, serving a cached snapshot when one
// exists and the caller did not ask for a regeneration. The second return
// value reports whether the payload came from the cache.
func (uc *GetDailySummaryUseCase) Execute(ctx context.Context, in GetDailySummaryInput) (domain.DailySummary, bool, error) {
	if in.UserID == "" {
		return domain.DailySummary{}, false, ErrUnauthenticated
	}

	w, err := period.DayOrToday(in.Date, uc.now())
	if err != nil {
		return domain.DailySummary{}, false, err
	}

	key := snapdomain.Key{
		UserID:      in.UserID,
		Kind:        snapdomain.KindNutritionDaily,
		PeriodType:  period.Daily,
		PeriodStart: w.Start,
	}

	return snapusecase.Resolve(ctx, uc.snapshots, uc.logger, key, in.Regenerate, uc.now(),
		func(ctx context.Context) (domain.DailySummary, error) {
			items, err := uc.repo.ListItemsForWindow(ctx, in.UserID, w)
			if err != nil {
				return domain.DailySummary{}, err
			}
			return domain.Summarize(period.FormatDate(w.Start), items), nil
		})
}
