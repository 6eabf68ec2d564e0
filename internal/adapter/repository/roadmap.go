package repository

import (
	"context"
	"fmt"

	"portfolio-cms/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const roadmapColumns = `id, phase, title, description, status, items, display_order`

type RoadmapRepo struct {
	pool *pgxpool.Pool
}

func NewRoadmapRepo(pool *pgxpool.Pool) *RoadmapRepo {
	return &RoadmapRepo{pool: pool}
}

func (r *RoadmapRepo) List(ctx context.Context) ([]domain.RoadmapPhase, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+roadmapColumns+` FROM roadmap_phases ORDER BY display_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("list roadmap: %w", err)
	}
	defer rows.Close()

	var out []domain.RoadmapPhase
	for rows.Next() {
		p, err := scanRoadmapPhase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan roadmap phase: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *RoadmapRepo) Get(ctx context.Context, id uuid.UUID) (*domain.RoadmapPhase, error) {
	p, err := scanRoadmapPhase(r.pool.QueryRow(ctx, `SELECT `+roadmapColumns+` FROM roadmap_phases WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "get roadmap phase")
	}
	return &p, nil
}

func (r *RoadmapRepo) Create(ctx context.Context, p *domain.RoadmapPhase) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO roadmap_phases (id, phase, title, description, status, items, display_order)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.Phase, p.Title, p.Description, p.Status, nonNil(p.Items), p.DisplayOrder)
	if err != nil {
		return fmt.Errorf("create roadmap phase: %w", err)
	}
	return nil
}

func (r *RoadmapRepo) Update(ctx context.Context, p *domain.RoadmapPhase) error {
	tag, err := r.pool.Exec(ctx, `UPDATE roadmap_phases SET phase = $2, title = $3, description = $4, status = $5,
		items = $6, display_order = $7 WHERE id = $1`,
		p.ID, p.Phase, p.Title, p.Description, p.Status, nonNil(p.Items), p.DisplayOrder)
	return affected(tag, err, "update roadmap phase")
}

func (r *RoadmapRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM roadmap_phases WHERE id = $1`, id)
	return affected(tag, err, "delete roadmap phase")
}

func scanRoadmapPhase(row pgx.Row) (domain.RoadmapPhase, error) {
	var p domain.RoadmapPhase
	err := row.Scan(&p.ID, &p.Phase, &p.Title, &p.Description, &p.Status, &p.Items, &p.DisplayOrder)
	return p, err
}
