package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"lifeboard-service/internal/fitness/core/domain"
	"lifeboard-service/internal/fitness/core/ports"
	"lifeboard-service/internal/period"
)

type WorkoutRepository struct {
	db DB
}

func NewWorkoutRepository(db DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

var _ ports.WorkoutRepositoryPort = (*WorkoutRepository)(nil)

const insertSessionSQL = `
INSERT INTO workout_sessions (
    id,
    user_id,
    started_at
) VALUES (
    $1, $2, $3
);
`

const completeSessionSQL = `
UPDATE workout_sessions
SET completed_at = $3
WHERE id = $2 AND user_id = $1;
`

const insertSetSQL = `
INSERT INTO workout_sets (id, session_id, exercise, reps, load_kg)
SELECT $1, $2, $3, $4, $5
WHERE EXISTS (
    SELECT 1 FROM workout_sessions WHERE id = $2 AND user_id = $6
);
`

const completionDaysSQL = `
SELECT DISTINCT date_trunc('day', started_at) AS day
FROM workout_sessions
WHERE user_id = $1 AND completed_at IS NOT NULL AND started_at <= $2
ORDER BY day DESC;
`

const sessionsInWindowSQL = `
SELECT id, user_id, started_at, completed_at
FROM workout_sessions
WHERE user_id = $1 AND started_at >= $2 AND started_at < $3
ORDER BY started_at;
`

const setsInWindowSQL = `
SELECT s.id, s.session_id, s.exercise, s.reps, s.load_kg
FROM workout_sets s
JOIN workout_sessions w ON w.id = s.session_id
WHERE w.user_id = $1 AND w.started_at >= $2 AND w.started_at < $3
ORDER BY s.created_at;
`

func (r *WorkoutRepository) InsertSession(ctx context.Context, s *domain.Session) error {
	_, err := r.db.ExecContext(ctx, insertSessionSQL, s.ID, s.UserID, s.StartedAt)
	return err
}

func (r *WorkoutRepository) CompleteSession(ctx context.Context, userID string, id uuid.UUID, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, completeSessionSQL, userID, id, at)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *WorkoutRepository) InsertSet(ctx context.Context, userID string, set *domain.Set) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertSetSQL,
		set.ID, set.SessionID, set.Exercise, set.Reps, set.LoadKg, userID,
	)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	// rows == 0 -> session absent or owned by someone else
	return rows > 0, nil
}

func (r *WorkoutRepository) CompletionDays(ctx context.Context, userID string, until time.Time) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, completionDaysSQL, userID, until)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		days = append(days, d.UTC())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return days, nil
}

func (r *WorkoutRepository) SessionsInWindow(ctx context.Context, userID string, w period.Window) ([]domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, sessionsInWindowSQL, userID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		var completedAt sql.NullTime
		if err := rows.Scan(&s.ID, &s.UserID, &s.StartedAt, &completedAt); err != nil {
			return nil, err
		}
		if completedAt.Valid {
			t := completedAt.Time
			s.CompletedAt = &t
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *WorkoutRepository) SetsInWindow(ctx context.Context, userID string, w period.Window) ([]domain.Set, error) {
	rows, err := r.db.QueryContext(ctx, setsInWindowSQL, userID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []domain.Set
	for rows.Next() {
		var s domain.Set
		if err := rows.Scan(&s.ID, &s.SessionID, &s.Exercise, &s.Reps, &s.LoadKg); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}
