package repository

import (
	"context"
	"fmt"

	"portfolio-cms/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type TechnologyRepo struct {
	pool *pgxpool.Pool
}

func NewTechnologyRepo(pool *pgxpool.Pool) *TechnologyRepo {
	return &TechnologyRepo{pool: pool}
}

func (r *TechnologyRepo) List(ctx context.Context) ([]domain.Technology, error) {
	var out []domain.Technology
	err := queryJSON(ctx, r.pool, &out, `SELECT coalesce(json_agg(row_to_json(t) ORDER BY t.category, t.name), '[]')
		FROM (SELECT id, name, category, icon_url FROM technologies) t`)
	if err != nil {
		return nil, fmt.Errorf("list technologies: %w", err)
	}
	return out, nil
}

func (r *TechnologyRepo) Create(ctx context.Context, t *domain.Technology) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO technologies (id, name, category, icon_url) VALUES ($1,$2,$3,$4)`,
		t.ID, t.Name, t.Category, t.IconURL)
	if err != nil {
		return fmt.Errorf("create technology: %w", err)
	}
	return nil
}

func (r *TechnologyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM technologies WHERE id = $1`, id)
	return affected(tag, err, "delete technology")
}
