package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
)

var ErrViewerNotFound = errors.New("viewer not found")

type ViewerRepo struct {
	pool *pgxpool.Pool
}

func NewViewerRepo(pool *pgxpool.Pool) *ViewerRepo {
	return &ViewerRepo{pool: pool}
}

func (r *ViewerRepo) GetByEmail(ctx context.Context, email string) (model.Viewer, error) {
	if r.pool == nil {
		return model.Viewer{}, fmt.Errorf("viewer repo is not configured")
	}

	var v model.Viewer
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, role, created_at FROM viewers WHERE email = $1
	`, email).Scan(&v.ID, &v.Email, &v.Role, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Viewer{}, ErrViewerNotFound
		}
		return model.Viewer{}, fmt.Errorf("query viewer by email: %w", err)
	}

	return v, nil
}

func (r *ViewerRepo) Get(ctx context.Context, id string) (model.Viewer, error) {
	if r.pool == nil {
		return model.Viewer{}, fmt.Errorf("viewer repo is not configured")
	}

	var v model.Viewer
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, role, created_at FROM viewers WHERE id = $1
	`, id).Scan(&v.ID, &v.Email, &v.Role, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Viewer{}, ErrViewerNotFound
		}
		return model.Viewer{}, fmt.Errorf("query viewer: %w", err)
	}

	return v, nil
}

// Upsert creates the viewer on first login and refreshes the email on
// subsequent ones.
func (r *ViewerRepo) Upsert(ctx context.Context, v model.Viewer) error {
	if r.pool == nil {
		return fmt.Errorf("viewer repo is not configured")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO viewers (id, email, role, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email
	`, v.ID, v.Email, v.Role, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert viewer: %w", err)
	}

	return nil
}
