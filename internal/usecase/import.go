package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"portfolio-cms/internal/domain"
)

type PersonalStore interface {
	Save(ctx context.Context, p *domain.PersonalInfo) error
}

type ExperienceCreator interface {
	Create(ctx context.Context, e *domain.Experience) error
}

type EducationCreator interface {
	Create(ctx context.Context, e *domain.Education) error
}

type CertificationCreator interface {
	Create(ctx context.Context, c *domain.Certification) error
}

type SkillUpserter interface {
	Upsert(ctx context.Context, s *domain.Skill) error
}

// ImportTargets are the stores an import writes to. Nil targets are skipped.
type ImportTargets struct {
	Personal       PersonalStore
	Experience     ExperienceCreator
	Education      EducationCreator
	Certifications CertificationCreator
	Skills         SkillUpserter
	Projects       ProjectStore
}

// ImportResult counts what an import wrote.
type ImportResult struct {
	Personal        bool `json:"personal_info"`
	Experience      int  `json:"experience"`
	Education       int  `json:"education"`
	Certifications  int  `json:"certifications"`
	Skills          int  `json:"skills"`
	ProjectsCreated int  `json:"projects_created"`
	ProjectsSkipped int  `json:"projects_skipped"`
}

// ImportService loads a profile document or seed data into the stores.
// Skills are upserted by name. Projects already present (same source URL or
// title) are left untouched. Other sections are appended.
type ImportService struct {
	targets ImportTargets
	logger  *slog.Logger
}

func NewImportService(targets ImportTargets, logger *slog.Logger) *ImportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportService{targets: targets, logger: logger}
}

// Import stops at the first failed write and returns the counts so far.
func (s *ImportService) Import(ctx context.Context, p domain.ResumeProfile) (ImportResult, error) {
	var res ImportResult

	if s.targets.Personal != nil && p.Personal.Name != "" {
		if err := s.targets.Personal.Save(ctx, &p.Personal); err != nil {
			return res, fmt.Errorf("import personal info: %w", err)
		}
		res.Personal = true
	}
	if s.targets.Experience != nil {
		for i := range p.Experience {
			if err := s.targets.Experience.Create(ctx, &p.Experience[i]); err != nil {
				return res, fmt.Errorf("import experience %q: %w", p.Experience[i].Company, err)
			}
			res.Experience++
		}
	}
	if s.targets.Education != nil {
		for i := range p.Education {
			if err := s.targets.Education.Create(ctx, &p.Education[i]); err != nil {
				return res, fmt.Errorf("import education %q: %w", p.Education[i].Institution, err)
			}
			res.Education++
		}
	}
	if s.targets.Certifications != nil {
		for i := range p.Certifications {
			if err := s.targets.Certifications.Create(ctx, &p.Certifications[i]); err != nil {
				return res, fmt.Errorf("import certification %q: %w", p.Certifications[i].Name, err)
			}
			res.Certifications++
		}
	}
	if s.targets.Skills != nil {
		for i := range p.Skills {
			if err := s.targets.Skills.Upsert(ctx, &p.Skills[i]); err != nil {
				return res, fmt.Errorf("import skill %q: %w", p.Skills[i].Name, err)
			}
			res.Skills++
		}
	}
	if s.targets.Projects != nil && len(p.Projects) > 0 {
		if err := s.importProjects(ctx, p.Projects, &res); err != nil {
			return res, err
		}
	}

	s.logger.Info("profile imported",
		"experience", res.Experience,
		"education", res.Education,
		"skills", res.Skills,
		"projects_created", res.ProjectsCreated,
		"projects_skipped", res.ProjectsSkipped)
	return res, nil
}

func (s *ImportService) importProjects(ctx context.Context, projects []domain.Project, res *ImportResult) error {
	existing, err := s.targets.Projects.List(ctx)
	if err != nil {
		return fmt.Errorf("import projects: %w", err)
	}
	index := NewProjectIndex(existing)
	for i := range projects {
		p := projects[i]
		if _, ok := index.Resolve(domain.Deref(p.SourceURL), p.Title); ok {
			res.ProjectsSkipped++
			continue
		}
		if p.Stack == nil {
			p.Stack = []string{}
		}
		if err := s.targets.Projects.Create(ctx, &p); err != nil {
			return fmt.Errorf("import project %q: %w", p.Title, err)
		}
		index.Add(p)
		res.ProjectsCreated++
	}
	return nil
}
