package repository

import (
	"context"
	"fmt"

	"portfolio-cms/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type TestimonialRepo struct {
	pool *pgxpool.Pool
}

func NewTestimonialRepo(pool *pgxpool.Pool) *TestimonialRepo {
	return &TestimonialRepo{pool: pool}
}

// List aggregates rows server-side with json_agg and decodes the array.
func (r *TestimonialRepo) List(ctx context.Context) ([]domain.Testimonial, error) {
	var out []domain.Testimonial
	err := queryJSON(ctx, r.pool, &out, `SELECT coalesce(json_agg(row_to_json(t) ORDER BY t.created_at DESC), '[]')
		FROM (SELECT id, author, role, company, quote, created_at FROM testimonials) t`)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return out, nil
}

func (r *TestimonialRepo) Create(ctx context.Context, t *domain.Testimonial) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	err := r.pool.QueryRow(ctx, `INSERT INTO testimonials (id, author, role, company, quote)
		VALUES ($1,$2,$3,$4,$5) RETURNING created_at`,
		t.ID, t.Author, t.Role, t.Company, t.Quote).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}
	return nil
}

func (r *TestimonialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	return affected(tag, err, "delete testimonial")
}
