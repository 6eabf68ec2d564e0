package http

import (
	"context"
	"log/slog"

	"portfolio-cms/internal/config"
	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/resume"
	"portfolio-cms/internal/usecase"

	"github.com/google/uuid"
)

// Collection is a table that supports list, create and delete.
type Collection[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CRUD adds single-row reads and full updates.
type CRUD[T any] interface {
	Collection[T]
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Update(ctx context.Context, item *T) error
}

type PersonalStore interface {
	Get(ctx context.Context) (*domain.PersonalInfo, error)
	Save(ctx context.Context, p *domain.PersonalInfo) error
}

type AboutStore interface {
	Get(ctx context.Context) (*domain.AboutContent, error)
	Save(ctx context.Context, a *domain.AboutContent) error
}

type SkillStore interface {
	List(ctx context.Context) ([]domain.Skill, error)
	Upsert(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SyncRunLister interface {
	ListRecent(ctx context.Context, limit int) ([]domain.SyncRun, error)
}

// Stores is the persistence gateway as seen by the API.
type Stores struct {
	Personal       PersonalStore
	Experience     CRUD[domain.Experience]
	Education      CRUD[domain.Education]
	Projects       CRUD[domain.Project]
	Certifications CRUD[domain.Certification]
	Roadmap        CRUD[domain.RoadmapPhase]
	Skills         SkillStore
	About          AboutStore
	Testimonials   Collection[domain.Testimonial]
	Technologies   Collection[domain.Technology]
	SyncRuns       SyncRunLister
}

type Syncer interface {
	Sync(ctx context.Context, req usecase.SyncRequest) usecase.SyncResult
}

type Exporter interface {
	Variants() []resume.RoleVariant
	HTML(ctx context.Context, req usecase.ExportRequest) (*usecase.ExportResult, error)
	PDF(ctx context.Context, req usecase.ExportRequest) ([]byte, *usecase.ExportResult, error)
}

type ReadmeGetter interface {
	Get(ctx context.Context, owner, repo string) (string, error)
}

type Importer interface {
	Import(ctx context.Context, p domain.ResumeProfile) (usecase.ImportResult, error)
}

// Deps wires the handler. A nil Stores means no database is configured:
// data routes answer 503 and skills/projects fall back to seed content.
type Deps struct {
	Stores     *Stores
	Sync       Syncer
	Export     Exporter
	Readme     ReadmeGetter
	Importer   Importer
	Seed       config.SeedConfig
	GitHub     config.GitHubConfig
	AdminToken string
	Logger     *slog.Logger
}

type Handler struct {
	stores     Stores
	dbReady    bool
	sync       Syncer
	export     Exporter
	readme     ReadmeGetter
	importer   Importer
	seed       config.SeedConfig
	github     config.GitHubConfig
	adminToken string
	logger     *slog.Logger
}

func NewHandler(d Deps) *Handler {
	h := &Handler{
		sync:       d.Sync,
		export:     d.Export,
		readme:     d.Readme,
		importer:   d.Importer,
		seed:       d.Seed,
		github:     d.GitHub,
		adminToken: d.AdminToken,
		logger:     d.Logger,
	}
	if d.Stores != nil {
		h.stores = *d.Stores
		h.dbReady = true
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	return h
}
