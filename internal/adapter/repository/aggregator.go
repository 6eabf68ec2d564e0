package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio-cms/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
	"golang.org/x/sync/errgroup"
)

// queryJSON runs a SQL that returns a single json value and unmarshals it into dst.
func queryJSON(ctx context.Context, pool *pgxpool.Pool, dst interface{}, sql string, args ...interface{}) error {
	var raw []byte
	if err := pool.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// ProfileAggregator assembles a domain.ResumeProfile from the content tables.
// A missing personal_info row is not an error; the profile is rendered with
// whatever sections exist.
type ProfileAggregator struct {
	store *Store
}

func NewProfileAggregator(store *Store) *ProfileAggregator {
	return &ProfileAggregator{store: store}
}

func (a *ProfileAggregator) Load(ctx context.Context, includeProjects bool) (domain.ResumeProfile, error) {
	var p domain.ResumeProfile
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		info, err := a.store.Personal.Get(ctx)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		p.Personal = *info
		return nil
	})
	g.Go(func() (err error) {
		p.Experience, err = a.store.Experience.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		p.Education, err = a.store.Education.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		p.Skills, err = a.store.Skills.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		p.Certifications, err = a.store.Certifications.List(ctx)
		return err
	})
	if includeProjects {
		g.Go(func() (err error) {
			p.Projects, err = a.store.Projects.List(ctx)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return domain.ResumeProfile{}, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}
