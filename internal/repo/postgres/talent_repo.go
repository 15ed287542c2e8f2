package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
)

var ErrTalentNotFound = errors.New("talent not found")

// TalentRepo reads the talent roster. Filtering beyond the coarse role
// scope happens in memory in the catalog service, so List only narrows
// by professional role to keep the working set small.
type TalentRepo struct {
	pool *pgxpool.Pool
}

func NewTalentRepo(pool *pgxpool.Pool) *TalentRepo {
	return &TalentRepo{pool: pool}
}

const talentColumns = `
	id, name, role, category, tags,
	age, gender, ethnicity, location,
	model_stats, craft_stats,
	price, price_type, unlock_price, union_status,
	socials, image_url, portfolio_keys,
	contact_email, contact_phone, availability, created_at
`

func (r *TalentRepo) List(ctx context.Context, role string) ([]model.TalentRecord, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("talent repo is not configured")
	}

	query := `SELECT ` + talentColumns + ` FROM talents`
	args := []any{}
	if role != "" {
		query += ` WHERE role = $1`
		args = append(args, role)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query talents: %w", err)
	}
	defer rows.Close()

	var out []model.TalentRecord
	for rows.Next() {
		rec, err := scanTalent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate talents: %w", err)
	}

	return out, nil
}

func (r *TalentRepo) Get(ctx context.Context, id string) (model.TalentRecord, error) {
	if r.pool == nil {
		return model.TalentRecord{}, fmt.Errorf("talent repo is not configured")
	}

	row := r.pool.QueryRow(ctx, `SELECT `+talentColumns+` FROM talents WHERE id = $1`, id)
	rec, err := scanTalent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TalentRecord{}, ErrTalentNotFound
		}
		return model.TalentRecord{}, err
	}

	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTalent(row rowScanner) (model.TalentRecord, error) {
	var (
		rec        model.TalentRecord
		modelStats []byte
		craftStats []byte
		socials    []byte
	)

	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Role, &rec.Category, &rec.Tags,
		&rec.Age, &rec.Gender, &rec.Ethnicity, &rec.Location,
		&modelStats, &craftStats,
		&rec.Price, &rec.PriceType, &rec.UnlockPrice, &rec.UnionStatus,
		&socials, &rec.ImageURL, &rec.PortfolioKeys,
		&rec.ContactEmail, &rec.ContactPhone, &rec.Availability, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TalentRecord{}, pgx.ErrNoRows
		}
		return model.TalentRecord{}, fmt.Errorf("scan talent row: %w", err)
	}

	if len(modelStats) > 0 {
		rec.Model = &model.ModelStats{}
		if err := json.Unmarshal(modelStats, rec.Model); err != nil {
			return model.TalentRecord{}, fmt.Errorf("unmarshal model stats: %w", err)
		}
	}
	if len(craftStats) > 0 {
		rec.Craft = &model.CraftStats{}
		if err := json.Unmarshal(craftStats, rec.Craft); err != nil {
			return model.TalentRecord{}, fmt.Errorf("unmarshal craft stats: %w", err)
		}
	}
	if len(socials) > 0 {
		if err := json.Unmarshal(socials, &rec.Socials); err != nil {
			return model.TalentRecord{}, fmt.Errorf("unmarshal socials: %w", err)
		}
	}

	return rec, nil
}
