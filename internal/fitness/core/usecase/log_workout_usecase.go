package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"lifeboard-service/internal/fitness/core/domain"
	"lifeboard-service/internal/fitness/core/ports"
)

var (
	ErrUnauthenticated = errors.New("missing caller identity")
	ErrInvalidSession  = errors.New("invalid session")
	ErrInvalidSet      = errors.New("invalid set")
	ErrSessionNotFound = errors.New("session not found")
	ErrFutureTime      = errors.New("timestamp cannot be in the future")
)

type LogWorkoutUseCase struct {
	repo ports.WorkoutRepositoryPort
	now  func() time.Time
}

func NewLogWorkoutUseCase(repo ports.WorkoutRepositoryPort, now func() time.Time) *LogWorkoutUseCase {
	return &LogWorkoutUseCase{repo: repo, now: now}
}

type StartSessionInput struct {
	UserID    string
	Timestamp int64
}

func (uc *LogWorkoutUseCase) StartSession(ctx context.Context, in StartSessionInput) (*domain.Session, error) {
	if in.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if in.Timestamp > uc.now().Unix() {
		return nil, ErrFutureTime
	}

	startedAt := uc.now().UTC()
	if in.Timestamp > 0 {
		startedAt = time.Unix(in.Timestamp, 0).UTC()
	}

	s := &domain.Session{
		ID:        uuid.New(),
		UserID:    in.UserID,
		StartedAt: startedAt,
	}
	if err := uc.repo.InsertSession(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

type CompleteSessionInput struct {
	UserID    string
	SessionID string
}

func (uc *LogWorkoutUseCase) CompleteSession(ctx context.Context, in CompleteSessionInput) error {
	if in.UserID == "" {
		return ErrUnauthenticated
	}
	id, err := uuid.Parse(in.SessionID)
	if err != nil {
		return ErrInvalidSession
	}

	found, err := uc.repo.CompleteSession(ctx, in.UserID, id, uc.now().UTC())
	if err != nil {
		return err
	}
	if !found {
		return ErrSessionNotFound
	}
	return nil
}

type LogSetInput struct {
	UserID    string
	SessionID string
	Exercise  string
	Reps      int
	LoadKg    float64
}

func (uc *LogWorkoutUseCase) LogSet(ctx context.Context, in LogSetInput) (*domain.Set, error) {
	if in.UserID == "" {
		return nil, ErrUnauthenticated
	}
	sessionID, err := uuid.Parse(in.SessionID)
	if err != nil {
		return nil, ErrInvalidSet
	}
	if in.Exercise == "" || in.Reps <= 0 || in.LoadKg < 0 {
		return nil, ErrInvalidSet
	}

	set := &domain.Set{
		ID:        uuid.New(),
		SessionID: sessionID,
		Exercise:  in.Exercise,
		Reps:      in.Reps,
		LoadKg:    in.LoadKg,
	}

	found, err := uc.repo.InsertSet(ctx, in.UserID, set)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrSessionNotFound
	}
	return set, nil
}
