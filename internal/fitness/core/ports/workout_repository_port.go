package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lifeboard-service/internal/fitness/core/domain"
	"lifeboard-service/internal/period"
)

type WorkoutRepositoryPort interface {
	InsertSession(ctx context.Context, s *domain.Session) error

	// CompleteSession marks the session done. found=false means the
	// session does not exist or belongs to another user.
	CompleteSession(ctx context.Context, userID string, id uuid.UUID, at time.Time) (found bool, err error)

	// InsertSet attaches a set to one of the user's sessions; found=false
	// when the session is absent or foreign.
	InsertSet(ctx context.Context, userID string, set *domain.Set) (found bool, err error)

	// CompletionDays returns the distinct days with at least one
	// completed session, most recent first.
	CompletionDays(ctx context.Context, userID string, until time.Time) ([]time.Time, error)

	SessionsInWindow(ctx context.Context, userID string, w period.Window) ([]domain.Session, error)

	// SetsInWindow returns the sets of the window's sessions in
	// chronological order.
	SetsInWindow(ctx context.Context, userID string, w period.Window) ([]domain.Set, error)
}
