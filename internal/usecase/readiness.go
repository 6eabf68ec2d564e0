package usecase

import (
	"strings"

	"portfolio-cms/internal/domain"
)

// Readiness lists the profile fields a resume would be missing. Generation
// still succeeds without them; the sections are simply omitted.
type Readiness struct {
	Ready   bool     `json:"ready"`
	Missing []string `json:"missing"`
}

func CheckProfile(p domain.ResumeProfile) Readiness {
	r := Readiness{Missing: []string{}}
	missing := func(field string, empty bool) {
		if empty {
			r.Missing = append(r.Missing, field)
		}
	}

	missing("personal_info.name", strings.TrimSpace(p.Personal.Name) == "")
	missing("personal_info.title", strings.TrimSpace(p.Personal.Title) == "")
	missing("personal_info.contact", strings.TrimSpace(p.Personal.Email) == "" && strings.TrimSpace(p.Personal.Phone) == "")
	missing("personal_info.summary", strings.TrimSpace(p.Personal.Summary) == "")
	missing("experience", len(p.Experience) == 0)
	missing("skills", len(p.Skills) == 0)

	r.Ready = len(r.Missing) == 0
	return r
}
