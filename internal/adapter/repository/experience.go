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

const experienceColumns = `id, company, title, location, start_date, end_date, is_current, description,
	responsibilities, achievements, technologies, display_order`

type ExperienceRepo struct {
	pool *pgxpool.Pool
}

func NewExperienceRepo(pool *pgxpool.Pool) *ExperienceRepo {
	return &ExperienceRepo{pool: pool}
}

// List returns roles most recent first.
func (r *ExperienceRepo) List(ctx context.Context) ([]domain.Experience, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+experienceColumns+` FROM experience
		ORDER BY display_order ASC, start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list experience: %w", err)
	}
	defer rows.Close()

	var out []domain.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ExperienceRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Experience, error) {
	e, err := scanExperience(r.pool.QueryRow(ctx, `SELECT `+experienceColumns+` FROM experience WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "get experience")
	}
	return &e, nil
}

func (r *ExperienceRepo) Create(ctx context.Context, e *domain.Experience) error {
	e.Normalize()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO experience (`+experienceColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		e.ID, e.Company, e.Title, e.Location, e.StartDate.Time, e.EndDate.TimePtr(), e.IsCurrent, e.Description,
		nonNil(e.Responsibilities), nonNil(e.Achievements), nonNil(e.Technologies), e.DisplayOrder)
	if err != nil {
		return fmt.Errorf("create experience: %w", err)
	}
	return nil
}

func (r *ExperienceRepo) Update(ctx context.Context, e *domain.Experience) error {
	e.Normalize()
	tag, err := r.pool.Exec(ctx, `UPDATE experience SET company = $2, title = $3, location = $4, start_date = $5,
		end_date = $6, is_current = $7, description = $8, responsibilities = $9, achievements = $10,
		technologies = $11, display_order = $12 WHERE id = $1`,
		e.ID, e.Company, e.Title, e.Location, e.StartDate.Time, e.EndDate.TimePtr(), e.IsCurrent, e.Description,
		nonNil(e.Responsibilities), nonNil(e.Achievements), nonNil(e.Technologies), e.DisplayOrder)
	return affected(tag, err, "update experience")
}

func (r *ExperienceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM experience WHERE id = $1`, id)
	return affected(tag, err, "delete experience")
}

func scanExperience(row pgx.Row) (domain.Experience, error) {
	var (
		e     domain.Experience
		start time.Time
		end   *time.Time
	)
	err := row.Scan(&e.ID, &e.Company, &e.Title, &e.Location, &start, &end, &e.IsCurrent, &e.Description,
		&e.Responsibilities, &e.Achievements, &e.Technologies, &e.DisplayOrder)
	if err != nil {
		return e, err
	}
	e.StartDate = *domain.DateFromTime(&start)
	e.EndDate = domain.DateFromTime(end)
	return e, nil
}
