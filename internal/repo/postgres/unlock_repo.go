package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
)

// UnlockRepo is the durable unlock ledger. The (viewer_id, talent_id)
// pair is unique, so a repeated insert is a no-op and the first unlock
// row always wins.
type UnlockRepo struct {
	pool *pgxpool.Pool
}

func NewUnlockRepo(pool *pgxpool.Pool) *UnlockRepo {
	return &UnlockRepo{pool: pool}
}

// Record inserts an unlock and reports whether the row was created.
// false means the viewer had already unlocked this talent.
func (r *UnlockRepo) Record(ctx context.Context, rec model.UnlockRecord) (bool, error) {
	if r.pool == nil {
		return false, fmt.Errorf("unlock repo is not configured")
	}

	tag, err := r.pool.Exec(ctx, `
		INSERT INTO unlocks (id, viewer_id, talent_id, amount_paid, unlocked_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (viewer_id, talent_id) DO NOTHING
	`, rec.ID, rec.ViewerID, rec.TalentID, rec.AmountPaid, rec.UnlockedAt)
	if err != nil {
		return false, fmt.Errorf("insert unlock: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *UnlockRepo) ListByViewer(ctx context.Context, viewerID string) ([]model.UnlockRecord, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("unlock repo is not configured")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, viewer_id, talent_id, amount_paid, unlocked_at
		FROM unlocks
		WHERE viewer_id = $1
		ORDER BY unlocked_at
	`, viewerID)
	if err != nil {
		return nil, fmt.Errorf("query unlocks: %w", err)
	}
	defer rows.Close()

	var out []model.UnlockRecord
	for rows.Next() {
		var rec model.UnlockRecord
		if err := rows.Scan(&rec.ID, &rec.ViewerID, &rec.TalentID, &rec.AmountPaid, &rec.UnlockedAt); err != nil {
			return nil, fmt.Errorf("scan unlock row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unlocks: %w", err)
	}

	return out, nil
}

func (r *UnlockRepo) Exists(ctx context.Context, viewerID, talentID string) (bool, error) {
	if r.pool == nil {
		return false, fmt.Errorf("unlock repo is not configured")
	}

	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM unlocks WHERE viewer_id = $1 AND talent_id = $2
		)
	`, viewerID, talentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check unlock: %w", err)
	}

	return exists, nil
}
