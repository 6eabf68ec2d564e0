package usecase

import (
	"context"
	"time"

	"portfolio-cms/internal/domain"
	"portfolio-cms/pkg/github"

	"github.com/google/uuid"
)

// ProjectStore is the slice of the projects table a sync needs.
type ProjectStore interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	UpdateSourceFields(ctx context.Context, id uuid.UUID, f domain.SourceFields) error
}

// RepoLister lists repositories from the source-control directory.
type RepoLister interface {
	ListRepositories(ctx context.Context, username, token string, opts github.ListOptions) ([]github.Repository, error)
}

type SyncRunStore interface {
	Save(ctx context.Context, run *domain.SyncRun) error
}

// ProfileLoader assembles the generation-time resume view.
type ProfileLoader interface {
	Load(ctx context.Context, includeProjects bool) (domain.ResumeProfile, error)
}

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type ReadmeSource interface {
	GetReadme(ctx context.Context, owner, repo, token string) (string, error)
}

// ReadmeCache stores README text. Get reports a miss with ok == false.
type ReadmeCache interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// SyncRequest is the input of a repository sync.
type SyncRequest struct {
	Username       string `json:"username"`
	Token          string `json:"token,omitempty"`
	MaxRepos       int    `json:"maxRepos"`
	IncludePrivate bool   `json:"includePrivate"`
}

// SyncResult summarizes a sync. Synced counts every repository processed,
// including ones whose write failed, so Created+Updated equals Synced minus
// the per-record failures.
type SyncResult struct {
	Success bool     `json:"success"`
	Synced  int      `json:"synced"`
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Errors  []string `json:"errors"`
}
