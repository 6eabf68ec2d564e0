package repository

import (
	"errors"
	"fmt"

	"portfolio-cms/internal/domain"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Store bundles one repository per table over a shared pool.
type Store struct {
	Personal       *PersonalInfoRepo
	Experience     *ExperienceRepo
	Education      *EducationRepo
	Projects       *ProjectRepo
	Skills         *SkillRepo
	Certifications *CertificationRepo
	Roadmap        *RoadmapRepo
	About          *AboutRepo
	Testimonials   *TestimonialRepo
	Technologies   *TechnologyRepo
	SyncRuns       *SyncRunRepo
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Personal:       NewPersonalInfoRepo(pool),
		Experience:     NewExperienceRepo(pool),
		Education:      NewEducationRepo(pool),
		Projects:       NewProjectRepo(pool),
		Skills:         NewSkillRepo(pool),
		Certifications: NewCertificationRepo(pool),
		Roadmap:        NewRoadmapRepo(pool),
		About:          NewAboutRepo(pool),
		Testimonials:   NewTestimonialRepo(pool),
		Technologies:   NewTechnologyRepo(pool),
		SyncRuns:       NewSyncRunRepo(pool),
	}
}

// notFound maps pgx.ErrNoRows to domain.ErrNotFound.
func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// affected turns a zero-row write into domain.ErrNotFound.
func affected(tag pgconn.CommandTag, err error, what string) error {
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
