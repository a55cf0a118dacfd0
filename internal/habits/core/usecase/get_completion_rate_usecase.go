package usecase

import (
	"context"
	"time"

	"lifeboard-service/internal/habits/core/domain"
	"lifeboard-service/internal/habits/core/ports"
	"lifeboard-service/internal/period"
)

type GetCompletionRateUseCase struct {
	repo ports.HabitRepositoryPort
	now  func() time.Time
}

func NewGetCompletionRateUseCase(repo ports.HabitRepositoryPort, now func() time.Time) *GetCompletionRateUseCase {
	return &GetCompletionRateUseCase{repo: repo, now: now}
}

// Execute computes the completion rate over [from, to] without caching:
// check-ins arrive all day, so a stale rate is worse than the two cheap
// queries it would save.
func (uc *GetCompletionRateUseCase) Execute(ctx context.Context, userID, from, to string) (*domain.RateSummary, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	window, err := period.Range(from, to, uc.now())
	if err != nil {
		return nil, err
	}

	count, err := uc.repo.CountHabits(ctx, userID)
	if err != nil {
		return nil, err
	}

	completions, err := uc.repo.CompletionsInWindow(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	summary := domain.CompletionRate(window, count, completions)
	return &summary, nil
}
