package resume

import (
	"sort"
	"strings"
	"unicode"

	"portfolio-cms/internal/domain"
)

// RoleVariant tunes a resume for a target role.
type RoleVariant struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	// Title and Summary replace the profile's own text when set.
	Title   string `json:"title,omitempty" yaml:"title"`
	Summary string `json:"summary,omitempty" yaml:"summary"`
	// AllowedCategories limits the skills section; empty allows every category.
	AllowedCategories []string `json:"allowed_categories,omitempty" yaml:"allowed_categories"`
	ExcludedSkills    []string `json:"excluded_skills,omitempty" yaml:"excluded_skills"`
	// EmphasisKeywords move matching skills to the front of their category.
	EmphasisKeywords []string `json:"emphasis_keywords,omitempty" yaml:"emphasis_keywords"`
}

// developerKeywords promote engineering roles in variant mode.
var developerKeywords = []string{
	"developer",
	"engineer",
	"architect",
	"full-stack",
	"frontend",
	"backend",
	"software",
}

// excludedEducationTokens mark primary schooling.
var excludedEducationTokens = []string{"primary", "kcpe"}

// DefaultVariants is the built-in lookup table. Configuration may add to or
// replace entries by ID.
func DefaultVariants() []RoleVariant {
	return []RoleVariant{
		{
			ID:               "software-engineer",
			Label:            "Software Engineer",
			Title:            "Software Engineer",
			EmphasisKeywords: []string{"go", "typescript", "react", "postgresql"},
		},
		{
			ID:                "frontend",
			Label:             "Frontend Developer",
			Title:             "Frontend Developer",
			AllowedCategories: []string{"Languages", "Frontend", "Frameworks", "Tools"},
			EmphasisKeywords:  []string{"react", "typescript", "css"},
		},
		{
			ID:                "it-support",
			Label:             "IT Support",
			Title:             "IT Support Specialist",
			AllowedCategories: []string{"IT Support", "Cloud", "Tools", "Other"},
		},
	}
}

// Variants merges overrides into the built-in table. An override with an
// existing ID replaces it; new IDs are appended.
func Variants(overrides []RoleVariant) []RoleVariant {
	out := DefaultVariants()
	index := map[string]int{}
	for i, v := range out {
		index[v.ID] = i
	}
	for _, v := range overrides {
		if i, ok := index[v.ID]; ok {
			out[i] = v
			continue
		}
		index[v.ID] = len(out)
		out = append(out, v)
	}
	return out
}

// FindVariant looks a variant up by ID.
func FindVariant(variants []RoleVariant, id string) (RoleVariant, bool) {
	for _, v := range variants {
		if strings.EqualFold(v.ID, id) {
			return v, true
		}
	}
	return RoleVariant{}, false
}

// FilterEducation drops primary-school entries. Secondary and tertiary
// education is always kept.
func FilterEducation(entries []domain.Education) []domain.Education {
	out := make([]domain.Education, 0, len(entries))
	for _, e := range entries {
		if isPrimarySchool(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func isPrimarySchool(e domain.Education) bool {
	institution := strings.ToLower(e.Institution)
	field := strings.ToLower(e.FieldOfStudy)
	for _, tok := range excludedEducationTokens {
		if strings.Contains(institution, tok) || strings.Contains(field, tok) {
			return true
		}
	}
	return false
}

// RankExperience puts engineering roles first, most recent first within
// each group. The input slice is not modified.
func RankExperience(entries []domain.Experience) []domain.Experience {
	out := make([]domain.Experience, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := isDeveloperRole(out[i]), isDeveloperRole(out[j])
		if di != dj {
			return di
		}
		return out[i].StartDate.After(out[j].StartDate.Time)
	})
	return out
}

func isDeveloperRole(e domain.Experience) bool {
	title := strings.ToLower(e.Title)
	company := strings.ToLower(e.Company)
	for _, kw := range developerKeywords {
		if strings.Contains(title, kw) || strings.Contains(company, kw) {
			return true
		}
	}
	return false
}

// FilterSkills applies the variant's category allow-list, excluded names and
// keyword emphasis.
func (v RoleVariant) FilterSkills(skills []domain.Skill) []domain.Skill {
	allowed := lowerSet(v.AllowedCategories)
	excluded := lowerSet(v.ExcludedSkills)

	var emphasized, rest []domain.Skill
	for _, s := range skills {
		if len(allowed) > 0 && !allowed[strings.ToLower(strings.TrimSpace(s.Category))] {
			continue
		}
		if excluded[strings.ToLower(strings.TrimSpace(s.Name))] {
			continue
		}
		if v.emphasizes(s.Name) {
			emphasized = append(emphasized, s)
		} else {
			rest = append(rest, s)
		}
	}
	// GroupSkills keeps input order per category, so emphasized skills end
	// up at the front of their own category.
	return append(emphasized, rest...)
}

// emphasizes matches keywords against whole tokens of the skill name so that
// "go" does not match "MongoDB".
func (v RoleVariant) emphasizes(name string) bool {
	tokens := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
	for _, kw := range v.EmphasisKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), kw) {
			return true
		}
		for _, tok := range tokens {
			if tok == kw {
				return true
			}
		}
	}
	return false
}

func lowerSet(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out[v] = true
		}
	}
	return out
}
