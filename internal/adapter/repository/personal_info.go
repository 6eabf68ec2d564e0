package repository

import (
	"context"
	"fmt"
	"time"

	"portfolio-cms/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

// PersonalInfoRepo manages the single personal_info row.
type PersonalInfoRepo struct {
	pool *pgxpool.Pool
}

func NewPersonalInfoRepo(pool *pgxpool.Pool) *PersonalInfoRepo {
	return &PersonalInfoRepo{pool: pool}
}

func (r *PersonalInfoRepo) Get(ctx context.Context) (*domain.PersonalInfo, error) {
	var p domain.PersonalInfo
	err := r.pool.QueryRow(ctx, `SELECT id, name, title, email, phone, location, summary,
		linkedin_url, github_url, website_url, avatar_url, updated_at
		FROM personal_info ORDER BY updated_at DESC LIMIT 1`).Scan(
		&p.ID, &p.Name, &p.Title, &p.Email, &p.Phone, &p.Location, &p.Summary,
		&p.LinkedInURL, &p.GitHubURL, &p.WebsiteURL, &p.AvatarURL, &p.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "get personal info")
	}
	return &p, nil
}

// Save upserts the profile. A zero ID reuses the existing row when there is one.
func (r *PersonalInfoRepo) Save(ctx context.Context, p *domain.PersonalInfo) error {
	if p.ID == uuid.Nil {
		if existing, err := r.Get(ctx); err == nil {
			p.ID = existing.ID
		} else {
			p.ID = uuid.New()
		}
	}
	p.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, `INSERT INTO personal_info (id, name, title, email, phone, location, summary,
		linkedin_url, github_url, website_url, avatar_url, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, title = EXCLUDED.title, email = EXCLUDED.email,
		phone = EXCLUDED.phone, location = EXCLUDED.location, summary = EXCLUDED.summary,
		linkedin_url = EXCLUDED.linkedin_url, github_url = EXCLUDED.github_url, website_url = EXCLUDED.website_url,
		avatar_url = EXCLUDED.avatar_url, updated_at = EXCLUDED.updated_at`,
		p.ID, p.Name, p.Title, p.Email, p.Phone, p.Location, p.Summary,
		p.LinkedInURL, p.GitHubURL, p.WebsiteURL, p.AvatarURL, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save personal info: %w", err)
	}
	return nil
}
