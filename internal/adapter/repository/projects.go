package repository

import (
	"context"
	"fmt"
	"time"

	"portfolio-cms/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const projectColumns = `id, title, description, stack, source_url, live_url, image_url, status,
	is_featured, display_order, created_at, updated_at`

type ProjectRepo struct {
	pool *pgxpool.Pool
}

func NewProjectRepo(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

func (r *ProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+projectColumns+` FROM projects
		ORDER BY display_order ASC, title ASC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProjectRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "get project")
	}
	return &p, nil
}

func (r *ProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	_, err := r.pool.Exec(ctx, `INSERT INTO projects (`+projectColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		p.ID, p.Title, p.Description, nonNil(p.Stack), p.SourceURL, p.LiveURL, p.ImageURL, p.Status,
		p.IsFeatured, p.DisplayOrder, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *ProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = time.Now()
	tag, err := r.pool.Exec(ctx, `UPDATE projects SET title = $2, description = $3, stack = $4, source_url = $5,
		live_url = $6, image_url = $7, status = $8, is_featured = $9, display_order = $10, updated_at = $11
		WHERE id = $1`,
		p.ID, p.Title, p.Description, nonNil(p.Stack), p.SourceURL, p.LiveURL, p.ImageURL, p.Status,
		p.IsFeatured, p.DisplayOrder, p.UpdatedAt)
	return affected(tag, err, "update project")
}

// UpdateSourceFields refreshes only the columns a repository sync owns.
func (r *ProjectRepo) UpdateSourceFields(ctx context.Context, id uuid.UUID, f domain.SourceFields) error {
	tag, err := r.pool.Exec(ctx, `UPDATE projects SET description = $2, source_url = $3, live_url = $4,
		updated_at = now() WHERE id = $1`, id, f.Description, f.SourceURL, f.LiveURL)
	return affected(tag, err, "update project source fields")
}

func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return affected(tag, err, "delete project")
}

func scanProject(row pgx.Row) (domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Stack, &p.SourceURL, &p.LiveURL, &p.ImageURL, &p.Status,
		&p.IsFeatured, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
