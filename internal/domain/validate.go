package domain

import (
	"fmt"
	"strings"
)

func required(what string, fields ...[2]string) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			missing = append(missing, f[0])
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s requires %s", ErrInvalid, what, strings.Join(missing, ", "))
	}
	return nil
}

func (p *PersonalInfo) Validate() error {
	return required("personal info", [2]string{"name", p.Name})
}

func (e *Experience) Validate() error {
	if err := required("experience", [2]string{"company", e.Company}, [2]string{"title", e.Title}); err != nil {
		return err
	}
	if e.StartDate.IsZero() {
		return fmt.Errorf("%w: experience requires start_date", ErrInvalid)
	}
	if e.EndDate != nil && !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate.Time) {
		return fmt.Errorf("%w: experience end_date is before start_date", ErrInvalid)
	}
	return nil
}

func (e *Education) Validate() error {
	return required("education", [2]string{"institution", e.Institution})
}

func (p *Project) Validate() error {
	return required("project", [2]string{"title", p.Title})
}

func (s *Skill) Validate() error {
	if err := required("skill", [2]string{"name", s.Name}); err != nil {
		return err
	}
	if s.Proficiency < 0 || s.Proficiency > 100 {
		return fmt.Errorf("%w: skill proficiency must be between 0 and 100", ErrInvalid)
	}
	return nil
}

func (c *Certification) Validate() error {
	return required("certification", [2]string{"name", c.Name})
}

func (p *RoadmapPhase) Validate() error {
	return required("roadmap phase", [2]string{"phase", p.Phase}, [2]string{"title", p.Title})
}

func (t *Testimonial) Validate() error {
	return required("testimonial", [2]string{"author", t.Author}, [2]string{"quote", t.Quote})
}

func (t *Technology) Validate() error {
	return required("technology", [2]string{"name", t.Name})
}
