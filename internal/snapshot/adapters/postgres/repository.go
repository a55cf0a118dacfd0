package postgres

import (
	"context"
	"encoding/json"
	"time"

	"lifeboard-service/internal/snapshot/core/domain"
	"lifeboard-service/internal/snapshot/core/ports"
)

type SnapshotRepository struct {
	db DB
}

func NewSnapshotRepository(db DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

var _ ports.StorePort = (*SnapshotRepository)(nil)

const getSnapshotSQL = `
SELECT payload, computed_at
FROM snapshots
WHERE user_id = $1 AND kind = $2 AND period_type = $3 AND period_start = $4;
`

const putSnapshotSQL = `
INSERT INTO snapshots (
    user_id,
    kind,
    period_type,
    period_start,
    payload,
    computed_at
) VALUES (
    $1, $2, $3, $4, $5, $6
)
ON CONFLICT (user_id, kind, period_type, period_start)
DO UPDATE SET payload = EXCLUDED.payload, computed_at = EXCLUDED.computed_at;
`

const deleteSnapshotSQL = `
DELETE FROM snapshots
WHERE user_id = $1 AND kind = $2 AND period_type = $3 AND period_start = $4;
`

func (r *SnapshotRepository) Get(ctx context.Context, key domain.Key) (*domain.Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, getSnapshotSQL,
		key.UserID, string(key.Kind), string(key.PeriodType), key.PeriodStart,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		// no row -> must compute
		return nil, rows.Err()
	}

	var payload json.RawMessage
	var computedAt time.Time
	if err := rows.Scan(&payload, &computedAt); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &domain.Snapshot{Key: key, Payload: payload, ComputedAt: computedAt}, nil
}

func (r *SnapshotRepository) Put(ctx context.Context, snap *domain.Snapshot) error {
	_, err := r.db.ExecContext(ctx, putSnapshotSQL,
		snap.Key.UserID,
		string(snap.Key.Kind),
		string(snap.Key.PeriodType),
		snap.Key.PeriodStart,
		[]byte(snap.Payload),
		snap.ComputedAt,
	)
	return err
}

func (r *SnapshotRepository) Delete(ctx context.Context, key domain.Key) error {
	_, err := r.db.ExecContext(ctx, deleteSnapshotSQL,
		key.UserID, string(key.Kind), string(key.PeriodType), key.PeriodStart,
	)
	return err
}
