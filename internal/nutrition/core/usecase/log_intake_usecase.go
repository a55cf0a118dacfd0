package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"lifeboard-service/internal/nutrition/core/domain"
	"lifeboard-service/internal/nutrition/core/ports"
)

var (
	ErrUnauthenticated = errors.New("missing caller identity")
	ErrInvalidIntake   = errors.New("invalid intake")
	ErrFutureTime      = errors.New("timestamp cannot be in the future")
)

type LogIntakeUseCase struct {
	repo ports.IntakeRepositoryPort
	now  func() time.Time
}

func NewLogIntakeUseCase(repo ports.IntakeRepositoryPort, now func() time.Time) *LogIntakeUseCase {
	return &LogIntakeUseCase{repo: repo, now: now}
}

type IntakeItemInput struct {
	Name     string
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64

	EditedCalories *float64
	EditedProtein  *float64
	EditedCarbs    *float64
	EditedFat      *float64
}

type LogIntakeInput struct {
	UserID    string
	MealType  string
	Timestamp int64
	Items     []IntakeItemInput
}

func (uc *LogIntakeUseCase) Execute(ctx context.Context, in LogIntakeInput) (*domain.IntakeEvent, error) {
	if in.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if in.MealType == "" || len(in.Items) == 0 {
		return nil, ErrInvalidIntake
	}
	for _, it := range in.Items {
		if it.Name == "" {
			return nil, ErrInvalidIntake
		}
	}
	if in.Timestamp > uc.now().Unix() {
		return nil, ErrFutureTime
	}

	occurredAt := time.Unix(in.Timestamp, 0).UTC()
	if in.Timestamp == 0 {
		occurredAt = uc.now().UTC()
	}

	event := &domain.IntakeEvent{
		ID:         uuid.New(),
		UserID:     in.UserID,
		MealType:   in.MealType,
		OccurredAt: occurredAt,
	}

	items := make([]domain.IntakeItem, len(in.Items))
	for i, it := range in.Items {
		items[i] = domain.IntakeItem{
			ID:             uuid.New(),
			EventID:        event.ID,
			Name:           it.Name,
			Calories:       it.Calories,
			ProteinG:       it.ProteinG,
			CarbsG:         it.CarbsG,
			FatG:           it.FatG,
			EditedCalories: it.EditedCalories,
			EditedProtein:  it.EditedProtein,
			EditedCarbs:    it.EditedCarbs,
			EditedFat:      it.EditedFat,
		}
	}

	if err := uc.repo.InsertIntake(ctx, event, items); err != nil {
		return nil, err
	}

	return event, nil
}
