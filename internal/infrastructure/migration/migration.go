package migration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// RunMigrations creates the content tables. Every step is idempotent, so it
// runs on each startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	for _, m := range Migrations() {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migrations lists the steps in the order they run.
func Migrations() []Migration {
	return []Migration{
		exec("create_personal_info", `
			CREATE TABLE IF NOT EXISTS personal_info (
				id UUID PRIMARY KEY,
				name TEXT NOT NULL DEFAULT '',
				title TEXT NOT NULL DEFAULT '',
				email TEXT NOT NULL DEFAULT '',
				phone TEXT NOT NULL DEFAULT '',
				location TEXT NOT NULL DEFAULT '',
				summary TEXT NOT NULL DEFAULT '',
				linkedin_url TEXT NOT NULL DEFAULT '',
				github_url TEXT NOT NULL DEFAULT '',
				website_url TEXT NOT NULL DEFAULT '',
				avatar_url TEXT NOT NULL DEFAULT '',
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`),
		exec("create_experience", `
			CREATE TABLE IF NOT EXISTS experience (
				id UUID PRIMARY KEY,
				company TEXT NOT NULL,
				title TEXT NOT NULL,
				location TEXT NOT NULL DEFAULT '',
				start_date DATE NOT NULL,
				end_date DATE,
				is_current BOOLEAN NOT NULL DEFAULT false,
				description TEXT NOT NULL DEFAULT '',
				responsibilities TEXT[] NOT NULL DEFAULT '{}',
				achievements TEXT[] NOT NULL DEFAULT '{}',
				technologies TEXT[] NOT NULL DEFAULT '{}',
				display_order INT NOT NULL DEFAULT 0
			)`),
		exec("create_education", `
			CREATE TABLE IF NOT EXISTS education (
				id UUID PRIMARY KEY,
				institution TEXT NOT NULL,
				degree TEXT NOT NULL DEFAULT '',
				field_of_study TEXT NOT NULL DEFAULT '',
				start_date DATE,
				end_date DATE,
				grade TEXT NOT NULL DEFAULT '',
				description TEXT NOT NULL DEFAULT '',
				display_order INT NOT NULL DEFAULT 0
			)`),
		exec("create_projects", `
			CREATE TABLE IF NOT EXISTS projects (
				id UUID PRIMARY KEY,
				title TEXT NOT NULL,
				description TEXT,
				stack TEXT[] NOT NULL DEFAULT '{}',
				source_url TEXT,
				live_url TEXT,
				image_url TEXT,
				status TEXT NOT NULL DEFAULT '',
				is_featured BOOLEAN NOT NULL DEFAULT false,
				display_order INT NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`),
		exec("index_projects_source_url", `CREATE INDEX IF NOT EXISTS projects_source_url_idx ON projects (source_url)`),
		exec("create_skills", `
			CREATE TABLE IF NOT EXISTS skills (
				id UUID PRIMARY KEY,
				name TEXT NOT NULL UNIQUE,
				category TEXT NOT NULL DEFAULT '',
				proficiency INT NOT NULL DEFAULT 0,
				is_featured BOOLEAN NOT NULL DEFAULT false,
				display_order INT NOT NULL DEFAULT 0
			)`),
		exec("create_certifications", `
			CREATE TABLE IF NOT EXISTS certifications (
				id UUID PRIMARY KEY,
				name TEXT NOT NULL,
				issuer TEXT NOT NULL DEFAULT '',
				issue_date DATE,
				credential_url TEXT NOT NULL DEFAULT '',
				display_order INT NOT NULL DEFAULT 0
			)`),
		exec("create_roadmap_phases", `
			CREATE TABLE IF NOT EXISTS roadmap_phases (
				id UUID PRIMARY KEY,
				phase TEXT NOT NULL,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				status TEXT NOT NULL DEFAULT 'planned',
				items TEXT[] NOT NULL DEFAULT '{}',
				display_order INT NOT NULL DEFAULT 0
			)`),
		exec("create_about_content", `
			CREATE TABLE IF NOT EXISTS about_content (
				id UUID PRIMARY KEY,
				headline TEXT NOT NULL DEFAULT '',
				body TEXT NOT NULL DEFAULT '',
				kpi_stats JSONB NOT NULL DEFAULT '[]'::jsonb,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`),
		exec("create_testimonials", `
			CREATE TABLE IF NOT EXISTS testimonials (
				id UUID PRIMARY KEY,
				author TEXT NOT NULL,
				role TEXT NOT NULL DEFAULT '',
				company TEXT NOT NULL DEFAULT '',
				quote TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`),
		exec("create_technologies", `
			CREATE TABLE IF NOT EXISTS technologies (
				id UUID PRIMARY KEY,
				name TEXT NOT NULL,
				category TEXT NOT NULL DEFAULT '',
				icon_url TEXT NOT NULL DEFAULT ''
			)`),
		exec("create_sync_runs", `
			CREATE TABLE IF NOT EXISTS sync_runs (
				id UUID PRIMARY KEY,
				username TEXT NOT NULL,
				success BOOLEAN NOT NULL,
				synced INT NOT NULL DEFAULT 0,
				created INT NOT NULL DEFAULT 0,
				updated INT NOT NULL DEFAULT 0,
				errors JSONB NOT NULL DEFAULT '[]'::jsonb,
				started_at TIMESTAMPTZ NOT NULL,
				finished_at TIMESTAMPTZ NOT NULL
			)`),
	}
}

func exec(name, query string) Migration {
	return Migration{
		Name: name,
		Up: func(ctx context.Context, pool *pgxpool.Pool) error {
			_, err := pool.Exec(ctx, query)
			return err
		},
	}
}
