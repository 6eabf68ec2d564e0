package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio-cms/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type AboutRepo struct {
	pool *pgxpool.Pool
}

func NewAboutRepo(pool *pgxpool.Pool) *AboutRepo {
	return &AboutRepo{pool: pool}
}

func (r *AboutRepo) Get(ctx context.Context) (*domain.AboutContent, error) {
	var (
		a   domain.AboutContent
		raw []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT id, headline, body, kpi_stats, updated_at
		FROM about_content ORDER BY updated_at DESC LIMIT 1`).Scan(&a.ID, &a.Headline, &a.Body, &raw, &a.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "get about content")
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &a.KPIStats); err != nil {
			return nil, fmt.Errorf("decode kpi stats: %w", err)
		}
	}
	return &a, nil
}

func (r *AboutRepo) Save(ctx context.Context, a *domain.AboutContent) error {
	if a.ID == uuid.Nil {
		if existing, err := r.Get(ctx); err == nil {
			a.ID = existing.ID
		} else {
			a.ID = uuid.New()
		}
	}
	if a.KPIStats == nil {
		a.KPIStats = []domain.KPIStat{}
	}
	stats, err := json.Marshal(a.KPIStats)
	if err != nil {
		return fmt.Errorf("encode kpi stats: %w", err)
	}
	a.UpdatedAt = time.Now()
	_, err = r.pool.Exec(ctx, `INSERT INTO about_content (id, headline, body, kpi_stats, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (id) DO UPDATE SET headline = EXCLUDED.headline, body = EXCLUDED.body,
		kpi_stats = EXCLUDED.kpi_stats, updated_at = EXCLUDED.updated_at`,
		a.ID, a.Headline, a.Body, stats, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save about content: %w", err)
	}
	return nil
}
