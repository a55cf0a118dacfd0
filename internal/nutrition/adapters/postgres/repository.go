package postgres

import (
	"context"
	"database/sql"

	"lifeboard-service/internal/nutrition/core/domain"
	"lifeboard-service/internal/nutrition/core/ports"
	"lifeboard-service/internal/period"
)

type IntakeRepository struct {
	db DB
}

func NewIntakeRepository(db DB) *IntakeRepository {
	return &IntakeRepository{db: db}
}

var _ ports.IntakeRepositoryPort = (*IntakeRepository)(nil)

const insertEventSQL = `
INSERT INTO intake_events (
    id,
    user_id,
    meal_type,
    occurred_at
) VALUES (
    $1, $2, $3, $4
);
`

const insertItemSQL = `
INSERT INTO intake_items (
    id,
    event_id,
    name,
    calories,
    protein_g,
    carbs_g,
    fat_g,
    edited_calories,
    edited_protein,
    edited_carbs,
    edited_fat
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
);
`

const listItemsSQL = `
SELECT
    i.id,
    i.event_id,
    i.name,
    i.calories,
    i.protein_g,
    i.carbs_g,
    i.fat_g,
    i.edited_calories,
    i.edited_protein,
    i.edited_carbs,
    i.edited_fat
FROM intake_items i
JOIN intake_events e ON e.id = i.event_id
WHERE e.user_id = $1 AND e.occurred_at >= $2 AND e.occurred_at < $3
ORDER BY e.occurred_at;
`

func (r *IntakeRepository) InsertIntake(ctx context.Context, event *domain.IntakeEvent, items []domain.IntakeItem) error {
	_, err := r.db.ExecContext(ctx, insertEventSQL,
		event.ID, event.UserID, event.MealType, event.OccurredAt,
	)
	if err != nil {
		return err
	}

	for _, it := range items {
		_, err := r.db.ExecContext(ctx, insertItemSQL,
			it.ID,
			it.EventID,
			it.Name,
			it.Calories,
			it.ProteinG,
			it.CarbsG,
			it.FatG,
			nullable(it.EditedCalories),
			nullable(it.EditedProtein),
			nullable(it.EditedCarbs),
			nullable(it.EditedFat),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *IntakeRepository) ListItemsForWindow(ctx context.Context, userID string, w period.Window) ([]domain.IntakeItem, error) {
	rows, err := r.db.QueryContext(ctx, listItemsSQL, userID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.IntakeItem
	for rows.Next() {
		var it domain.IntakeItem
		var editedCal, editedProt, editedCarbs, editedFat sql.NullFloat64

		if err := rows.Scan(
			&it.ID,
			&it.EventID,
			&it.Name,
			&it.Calories,
			&it.ProteinG,
			&it.CarbsG,
			&it.FatG,
			&editedCal,
			&editedProt,
			&editedCarbs,
			&editedFat,
		); err != nil {
			return nil, err
		}

		it.EditedCalories = fromNull(editedCal)
		it.EditedProtein = fromNull(editedProt)
		it.EditedCarbs = fromNull(editedCarbs)
		it.EditedFat = fromNull(editedFat)

		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func fromNull(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
