package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lifeboard-service/internal/habits/core/domain"
	"lifeboard-service/internal/habits/core/ports"
	"lifeboard-service/internal/period"
)

type HabitRepository struct {
	db DB
}

func NewHabitRepository(db DB) *HabitRepository {
	return &HabitRepository{db: db}
}

var _ ports.HabitRepositoryPort = (*HabitRepository)(nil)

const insertHabitSQL = `
INSERT INTO habits (
    id,
    user_id,
    name,
    cadence
) VALUES (
    $1, $2, $3, $4
);
`

const checkInSQL = `
INSERT INTO habit_completions (habit_id, user_id, day)
SELECT $1, $2, $3
WHERE EXISTS (
    SELECT 1 FROM habits WHERE id = $1 AND user_id = $2
)
ON CONFLICT (habit_id, day) DO NOTHING;
`

const habitExistsSQL = `
SELECT 1 FROM habits WHERE id = $1 AND user_id = $2;
`

const countHabitsSQL = `
SELECT count(*) FROM habits WHERE user_id = $1;
`

const completionsInWindowSQL = `
SELECT habit_id, user_id, day
FROM habit_completions
WHERE user_id = $1 AND day >= $2 AND day < $3
ORDER BY day;
`

func (r *HabitRepository) InsertHabit(ctx context.Context, h *domain.Habit) error {
	_, err := r.db.ExecContext(ctx, insertHabitSQL, h.ID, h.UserID, h.Name, h.Cadence)
	return err
}

func (r *HabitRepository) CheckIn(ctx context.Context, userID string, habitID uuid.UUID, day time.Time) (bool, bool, error) {
	res, err := r.db.ExecContext(ctx, checkInSQL, habitID, userID, day)
	if err != nil {
		return false, false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, false, err
	}
	if n > 0 {
		return true, true, nil
	}

	// Zero rows is either an unknown habit or a repeated day; only the
	// ownership probe can tell them apart.
	rows, err := r.db.QueryContext(ctx, habitExistsSQL, habitID, userID)
	if err != nil {
		return false, false, err
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, false, err
	}
	return found, false, nil
}

func (r *HabitRepository) CountHabits(ctx context.Context, userID string) (int, error) {
	rows, err := r.db.QueryContext(ctx, countHabitsSQL, userID)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, err
		}
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *HabitRepository) CompletionsInWindow(ctx context.Context, userID string, w period.Window) ([]domain.Completion, error) {
	rows, err := r.db.QueryContext(ctx, completionsInWindowSQL, userID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []domain.Completion
	for rows.Next() {
		var c domain.Completion
		if err := rows.Scan(&c.HabitID, &c.UserID, &c.Day); err != nil {
			return nil, err
		}
		c.Day = c.Day.UTC()
		completions = append(completions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return completions, nil
}
