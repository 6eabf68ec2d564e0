//go:build e2e

package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"portfolio-cms/internal/adapter/repository"
	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/infrastructure/migration"
	infra "portfolio-cms/pkg/infrastructure"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := infra.NewPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, migration.RunMigrations(ctx, pool))
	return repository.NewStore(pool)
}

func TestExperienceRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	end := domain.NewDate(2022, time.June, 30)
	e := &domain.Experience{
		Company:          "Acme " + uuid.NewString(),
		Title:            "Engineer",
		StartDate:        domain.NewDate(2020, time.January, 1),
		EndDate:          &end,
		IsCurrent:        true,
		Responsibilities: []string{"Ship"},
	}
	require.NoError(t, store.Experience.Create(ctx, e))
	t.Cleanup(func() { _ = store.Experience.Delete(ctx, e.ID) })

	got, err := store.Experience.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, got.IsCurrent)
	assert.Nil(t, got.EndDate, "current roles are stored without an end date")
	assert.Equal(t, []string{"Ship"}, got.Responsibilities)
	assert.Equal(t, []string{}, got.Achievements)

	require.NoError(t, store.Experience.Delete(ctx, e.ID))
	_, err = store.Experience.Get(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Experience.Delete(ctx, e.ID), domain.ErrNotFound)
}

func TestProjectSourceFieldsOnly(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	p := &domain.Project{
		Title:        "Engine " + uuid.NewString(),
		Stack:        []string{"Go"},
		Status:       domain.ProjectStatusDeployed,
		IsFeatured:   true,
		DisplayOrder: 3,
	}
	require.NoError(t, store.Projects.Create(ctx, p))
	t.Cleanup(func() { _ = store.Projects.Delete(ctx, p.ID) })

	require.NoError(t, store.Projects.UpdateSourceFields(ctx, p.ID, domain.SourceFields{
		Description: domain.StringPtr("refreshed"),
		SourceURL:   domain.StringPtr("https://github.com/ada/engine"),
	}))

	got, err := store.Projects.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "refreshed", domain.Deref(got.Description))
	assert.Nil(t, got.LiveURL)
	assert.True(t, got.IsFeatured)
	assert.Equal(t, 3, got.DisplayOrder)
	assert.Equal(t, []string{"Go"}, got.Stack)
}

func TestSkillUpsertByName(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	name := "skill-" + uuid.NewString()
	first := &domain.Skill{Name: name, Category: "Tools"}
	require.NoError(t, store.Skills.Upsert(ctx, first))
	t.Cleanup(func() { _ = store.Skills.Delete(ctx, first.ID) })

	second := &domain.Skill{Name: name, Category: "Backend", Proficiency: 80}
	require.NoError(t, store.Skills.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID)
}

func TestSyncRunsAndAbout(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	run := &domain.SyncRun{Username: "ada", Success: false, Errors: []string{"a: failed"}, StartedAt: now, FinishedAt: now}
	require.NoError(t, store.SyncRuns.Save(ctx, run))

	runs, err := store.SyncRuns.ListRecent(ctx, 50)
	require.NoError(t, err)
	var found bool
	for _, r := range runs {
		if r.ID == run.ID {
			found = true
			assert.Equal(t, []string{"a: failed"}, r.Errors)
			assert.True(t, r.StartedAt.Equal(now))
		}
	}
	assert.True(t, found)

	about := &domain.AboutContent{Headline: "Hi", KPIStats: []domain.KPIStat{{Label: "Years", Value: "8", Suffix: "+"}}}
	require.NoError(t, store.About.Save(ctx, about))
	got, err := store.About.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, about.KPIStats, got.KPIStats)
}

func TestProfileAggregator(t *testing.T) {
	store := newStore(t)
	p, err := repository.NewProfileAggregator(store).Load(context.Background(), false)
	require.NoError(t, err)
	assert.Nil(t, p.Projects)
}
