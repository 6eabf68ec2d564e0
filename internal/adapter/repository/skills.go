package repository

import (
	"context"
	"fmt"

	"portfolio-cms/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type SkillRepo struct {
	pool *pgxpool.Pool
}

func NewSkillRepo(pool *pgxpool.Pool) *SkillRepo {
	return &SkillRepo{pool: pool}
}

func (r *SkillRepo) List(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, category, proficiency, is_featured, display_order
		FROM skills ORDER BY category ASC, display_order ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	var out []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.IsFeatured, &s.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Upsert inserts a skill or updates the existing one with the same name.
// The stored ID is written back to s.
func (r *SkillRepo) Upsert(ctx context.Context, s *domain.Skill) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	err := r.pool.QueryRow(ctx, `INSERT INTO skills (id, name, category, proficiency, is_featured, display_order)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (name) DO UPDATE SET category = EXCLUDED.category, proficiency = EXCLUDED.proficiency,
		is_featured = EXCLUDED.is_featured, display_order = EXCLUDED.display_order
		RETURNING id`,
		s.ID, s.Name, s.Category, s.Proficiency, s.IsFeatured, s.DisplayOrder).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("upsert skill %q: %w", s.Name, err)
	}
	return nil
}

func (r *SkillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	return affected(tag, err, "delete skill")
}
