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

const educationColumns = `id, institution, degree, field_of_study, start_date, end_date, grade, description, display_order`

type EducationRepo struct {
	pool *pgxpool.Pool
}

func NewEducationRepo(pool *pgxpool.Pool) *EducationRepo {
	return &EducationRepo{pool: pool}
}

func (r *EducationRepo) List(ctx context.Context) ([]domain.Education, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+educationColumns+` FROM education
		ORDER BY display_order ASC, start_date DESC NULLS LAST`)
	if err != nil {
		return nil, fmt.Errorf("list education: %w", err)
	}
	defer rows.Close()

	var out []domain.Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan education: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EducationRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Education, error) {
	e, err := scanEducation(r.pool.QueryRow(ctx, `SELECT `+educationColumns+` FROM education WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "get education")
	}
	return &e, nil
}

func (r *EducationRepo) Create(ctx context.Context, e *domain.Education) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO education (`+educationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		e.ID, e.Institution, e.Degree, e.FieldOfStudy, (&e.StartDate).TimePtr(), e.EndDate.TimePtr(),
		e.Grade, e.Description, e.DisplayOrder)
	if err != nil {
		return fmt.Errorf("create education: %w", err)
	}
	return nil
}

func (r *EducationRepo) Update(ctx context.Context, e *domain.Education) error {
	tag, err := r.pool.Exec(ctx, `UPDATE education SET institution = $2, degree = $3, field_of_study = $4,
		start_date = $5, end_date = $6, grade = $7, description = $8, display_order = $9 WHERE id = $1`,
		e.ID, e.Institution, e.Degree, e.FieldOfStudy, (&e.StartDate).TimePtr(), e.EndDate.TimePtr(),
		e.Grade, e.Description, e.DisplayOrder)
	return affected(tag, err, "update education")
}

func (r *EducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	return affected(tag, err, "delete education")
}

func scanEducation(row pgx.Row) (domain.Education, error) {
	var (
		e          domain.Education
		start, end *time.Time
	)
	err := row.Scan(&e.ID, &e.Institution, &e.Degree, &e.FieldOfStudy, &start, &end, &e.Grade, &e.Description, &e.DisplayOrder)
	if err != nil {
		return e, err
	}
	if s := domain.DateFromTime(start); s != nil {
		e.StartDate = *s
	}
	e.EndDate = domain.DateFromTime(end)
	return e, nil
}
