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

type CertificationRepo struct {
	pool *pgxpool.Pool
}

func NewCertificationRepo(pool *pgxpool.Pool) *CertificationRepo {
	return &CertificationRepo{pool: pool}
}

const certificationColumns = `id, name, issuer, issue_date, credential_url, display_order`

func (r *CertificationRepo) List(ctx context.Context) ([]domain.Certification, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+certificationColumns+`
		FROM certifications ORDER BY display_order ASC, issue_date DESC NULLS LAST`)
	if err != nil {
		return nil, fmt.Errorf("list certifications: %w", err)
	}
	defer rows.Close()

	var out []domain.Certification
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certification: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CertificationRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Certification, error) {
	c, err := scanCertification(r.pool.QueryRow(ctx, `SELECT `+certificationColumns+` FROM certifications WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "get certification")
	}
	return &c, nil
}

func (r *CertificationRepo) Create(ctx context.Context, c *domain.Certification) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO certifications (id, name, issuer, issue_date, credential_url, display_order)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		c.ID, c.Name, c.Issuer, c.IssueDate.TimePtr(), c.CredentialURL, c.DisplayOrder)
	if err != nil {
		return fmt.Errorf("create certification: %w", err)
	}
	return nil
}

func (r *CertificationRepo) Update(ctx context.Context, c *domain.Certification) error {
	tag, err := r.pool.Exec(ctx, `UPDATE certifications SET name = $2, issuer = $3, issue_date = $4,
		credential_url = $5, display_order = $6 WHERE id = $1`,
		c.ID, c.Name, c.Issuer, c.IssueDate.TimePtr(), c.CredentialURL, c.DisplayOrder)
	return affected(tag, err, "update certification")
}

func (r *CertificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	return affected(tag, err, "delete certification")
}

func scanCertification(row pgx.Row) (domain.Certification, error) {
	var (
		c      domain.Certification
		issued *time.Time
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Issuer, &issued, &c.CredentialURL, &c.DisplayOrder); err != nil {
		return c, err
	}
	c.IssueDate = domain.DateFromTime(issued)
	return c, nil
}
