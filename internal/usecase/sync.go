package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/metrics"
	"portfolio-cms/pkg/github"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// featuredStarThreshold marks newly synced repositories as featured.
const featuredStarThreshold = 5

// SyncService reconciles source-control repositories with portfolio
// projects. It creates missing projects and refreshes the source-owned
// fields of existing ones; admin-owned fields are only ever set on create.
type SyncService struct {
	projects ProjectStore
	repos    RepoLister
	runs     SyncRunStore
	logger   *slog.Logger
	now      func() time.Time
}

func NewSyncService(projects ProjectStore, repos RepoLister, runs SyncRunStore, logger *slog.Logger) *SyncService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncService{
		projects: projects,
		repos:    repos,
		runs:     runs,
		logger:   logger.With("component", "sync"),
		now:      time.Now,
	}
}

// Sync never returns an error: every failure ends up in SyncResult.Errors.
func (s *SyncService) Sync(ctx context.Context, req SyncRequest) SyncResult {
	started := s.now()
	res := SyncResult{Errors: []string{}}
	defer func() {
		s.finish(ctx, req, started, res)
	}()

	if strings.TrimSpace(req.Username) == "" {
		res.Errors = append(res.Errors, "username is required")
		return res
	}

	var (
		existing []domain.Project
		fetched  []github.Repository
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.projects.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load existing projects: %w", err)
		}
		existing = p
		return nil
	})
	g.Go(func() error {
		r, err := s.repos.ListRepositories(gctx, req.Username, req.Token, github.ListOptions{
			MaxRepos:       req.MaxRepos,
			SortBy:         "updated",
			IncludePrivate: req.IncludePrivate,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch repositories: %w", err)
		}
		fetched = r
		return nil
	})
	if err := g.Wait(); err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res
	}

	if len(fetched) == 0 {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"no repositories found for %q; check the username, token permissions and API rate limit", req.Username))
		return res
	}

	index := NewProjectIndex(existing)
	for _, repo := range fetched {
		res.Synced++

		if p, ok := index.Resolve(repo.HTMLURL, repo.Name); ok {
			if err := s.projects.UpdateSourceFields(ctx, p.ID, sourceFields(repo)); err != nil {
				s.recordFailure(&res, repo, "update", err)
				continue
			}
			res.Updated++
			metrics.SyncRepos.WithLabelValues("updated").Inc()
			s.logger.Debug("project refreshed", "repo", repo.Name, "project_id", p.ID)
			continue
		}

		p := projectFromRepo(repo)
		if err := s.projects.Create(ctx, &p); err != nil {
			s.recordFailure(&res, repo, "create", err)
			continue
		}
		index.Add(p)
		res.Created++
		metrics.SyncRepos.WithLabelValues("created").Inc()
		s.logger.Debug("project created", "repo", repo.Name, "project_id", p.ID)
	}

	res.Success = res.Synced > 0
	return res
}

func (s *SyncService) recordFailure(res *SyncResult, repo github.Repository, op string, err error) {
	res.Errors = append(res.Errors, fmt.Sprintf("%s: failed to %s project: %v", repo.Name, op, err))
	metrics.SyncRepos.WithLabelValues("error").Inc()
	s.logger.Warn("project write failed", "repo", repo.Name, "op", op, "error", err)
}

// finish logs, counts and records the run. The audit write is best-effort.
func (s *SyncService) finish(ctx context.Context, req SyncRequest, started time.Time, res SyncResult) {
	finished := s.now()
	result := "failure"
	if res.Success {
		result = "success"
	}
	metrics.SyncRuns.WithLabelValues(result).Inc()
	metrics.SyncDuration.Observe(finished.Sub(started).Seconds())

	s.logger.Info("sync finished",
		"username", req.Username,
		"success", res.Success,
		"synced", res.Synced,
		"created", res.Created,
		"updated", res.Updated,
		"errors", len(res.Errors),
	)

	if s.runs == nil {
		return
	}
	run := &domain.SyncRun{
		ID:         uuid.New(),
		Username:   req.Username,
		Success:    res.Success,
		Synced:     res.Synced,
		Created:    res.Created,
		Updated:    res.Updated,
		Errors:     res.Errors,
		StartedAt:  started,
		FinishedAt: finished,
	}
	if err := s.runs.Save(ctx, run); err != nil {
		s.logger.Warn("unable to record sync run (non-fatal)", "error", err)
	}
}

// sourceFields is the refresh patch for an existing project. An empty
// description or homepage is stored as no value.
func sourceFields(repo github.Repository) domain.SourceFields {
	return domain.SourceFields{
		Description: domain.StringPtr(strings.TrimSpace(domain.Deref(repo.Description))),
		SourceURL:   domain.StringPtr(repo.HTMLURL),
		LiveURL:     domain.StringPtr(strings.TrimSpace(domain.Deref(repo.Homepage))),
	}
}

func projectFromRepo(repo github.Repository) domain.Project {
	f := sourceFields(repo)
	stack := []string{}
	if lang := strings.TrimSpace(domain.Deref(repo.Language)); lang != "" {
		stack = append(stack, lang)
	}
	return domain.Project{
		Title:        repo.Name,
		Description:  f.Description,
		SourceURL:    f.SourceURL,
		LiveURL:      f.LiveURL,
		Status:       domain.ProjectStatusDeployed,
		IsFeatured:   repo.StargazersCount >= featuredStarThreshold || f.LiveURL != nil,
		DisplayOrder: domain.SyncedDisplayOrder,
		Stack:        stack,
	}
}

// ProjectIndex resolves a repository to an existing project: first by exact
// source URL, then by case-insensitive title. The title fallback keeps a
// project attached to its repository after a rename upstream.
type ProjectIndex struct {
	byURL   map[string]domain.Project
	byTitle map[string]domain.Project
}

func NewProjectIndex(projects []domain.Project) *ProjectIndex {
	idx := &ProjectIndex{
		byURL:   make(map[string]domain.Project, len(projects)),
		byTitle: make(map[string]domain.Project, len(projects)),
	}
	for _, p := range projects {
		idx.Add(p)
	}
	return idx
}

// Add indexes p. The first project seen for a key wins.
func (x *ProjectIndex) Add(p domain.Project) {
	if u := domain.Deref(p.SourceURL); u != "" {
		if _, ok := x.byURL[u]; !ok {
			x.byURL[u] = p
		}
	}
	if t := titleKey(p.Title); t != "" {
		if _, ok := x.byTitle[t]; !ok {
			x.byTitle[t] = p
		}
	}
}

func (x *ProjectIndex) Resolve(sourceURL, title string) (domain.Project, bool) {
	if sourceURL != "" {
		if p, ok := x.byURL[sourceURL]; ok {
			return p, true
		}
	}
	if t := titleKey(title); t != "" {
		if p, ok := x.byTitle[t]; ok {
			return p, true
		}
	}
	return domain.Project{}, false
}

func titleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
