package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepo struct {
	pool *pgxpool.Pool
}

func NewBookingRepo(pool *pgxpool.Pool) *BookingRepo {
	return &BookingRepo{pool: pool}
}

func (r *BookingRepo) Create(ctx context.Context, b model.BookingRequest) error {
	if r.pool == nil {
		return fmt.Errorf("booking repo is not configured")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO bookings (
			id, talent_id, talent_name, agency_id, project_name,
			description, shoot_date, duration_days, budget, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, b.ID, b.TalentID, b.TalentName, b.AgencyID, b.ProjectName,
		b.Description, b.ShootDate, b.DurationDays, b.Budget, b.Status, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepo) ListByAgency(ctx context.Context, agencyID string) ([]model.BookingRequest, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("booking repo is not configured")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, talent_id, talent_name, agency_id, project_name,
			description, shoot_date, duration_days, budget, status, created_at
		FROM bookings
		WHERE agency_id = $1
		ORDER BY created_at DESC
	`, agencyID)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var out []model.BookingRequest
	for rows.Next() {
		var b model.BookingRequest
		err := rows.Scan(
			&b.ID, &b.TalentID, &b.TalentName, &b.AgencyID, &b.ProjectName,
			&b.Description, &b.ShootDate, &b.DurationDays, &b.Budget, &b.Status, &b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return out, nil
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error {
	if r.pool == nil {
		return fmt.Errorf("booking repo is not configured")
	}

	tag, err := r.pool.Exec(ctx, `UPDATE bookings SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepo) Get(ctx context.Context, id string) (model.BookingRequest, error) {
	if r.pool == nil {
		return model.BookingRequest{}, fmt.Errorf("booking repo is not configured")
	}

	var b model.BookingRequest
	err := r.pool.QueryRow(ctx, `
		SELECT id, talent_id, talent_name, agency_id, project_name,
			description, shoot_date, duration_days, budget, status, created_at
		FROM bookings
		WHERE id = $1
	`, id).Scan(
		&b.ID, &b.TalentID, &b.TalentName, &b.AgencyID, &b.ProjectName,
		&b.Description, &b.ShootDate, &b.DurationDays, &b.Budget, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.BookingRequest{}, ErrBookingNotFound
		}
		return model.BookingRequest{}, fmt.Errorf("query booking: %w", err)
	}

	return b, nil
}
