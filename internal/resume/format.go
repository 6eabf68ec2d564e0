package resume

import (
	"net/url"
	"strings"

	"portfolio-cms/internal/domain"

	"golang.org/x/net/publicsuffix"
)

// ContactSeparator joins contact segments on a single line.
const ContactSeparator = " | "

// MaxFeaturedProjects caps the projects section.
const MaxFeaturedProjects = 4

// presentLabel ends the range of any role without an end date.
const presentLabel = "Present"

// CategoryOrder is the fixed emission order for skill categories. Unknown
// categories follow in the order they are first seen.
var CategoryOrder = []string{
	"Languages",
	"IT Support",
	"Frontend",
	"Backend",
	"Databases",
	"Cloud",
	"DevOps",
	"Tools",
	"ML",
	"Frameworks",
	"Other",
}

// FormatDate renders a date as zero-padded MM/YYYY.
func FormatDate(d domain.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("01/2006")
}

// FormatDateRange renders "start - end". The end is "Present" whenever the
// record is current or has no end date.
func FormatDateRange(start domain.Date, end *domain.Date, isCurrent bool) string {
	hasEnd := end != nil && !end.IsZero()
	if start.IsZero() && !hasEnd && !isCurrent {
		return ""
	}
	endLabel := presentLabel
	if !isCurrent && hasEnd {
		endLabel = FormatDate(*end)
	}
	if start.IsZero() {
		return endLabel
	}
	return FormatDate(start) + " - " + endLabel
}

// ContactSegments lists the contact fields that are set, in the order
// email, phone, location, LinkedIn, GitHub, website.
func ContactSegments(p domain.PersonalInfo) []string {
	var out []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	add(p.Email)
	add(p.Phone)
	add(p.Location)
	if h := profileHandle(p.LinkedInURL, "linkedin.com/in/"); h != "" {
		add("linkedin.com/in/" + h)
	}
	if h := profileHandle(p.GitHubURL, "github.com/"); h != "" {
		add("github.com/" + h)
	}
	add(stripURL(p.WebsiteURL))
	return out
}

func ContactLine(p domain.PersonalInfo) string {
	return strings.Join(ContactSegments(p), ContactSeparator)
}

// stripURL removes the scheme and any trailing slash.
func stripURL(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	return strings.TrimRight(s, "/")
}

// profileHandle extracts the account handle from a full profile URL or
// returns the value itself when it is already a bare handle.
func profileHandle(raw, prefix string) string {
	s := stripURL(raw)
	if s == "" {
		return ""
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimPrefix(s, "www.")
	lower := strings.ToLower(s)
	if i := strings.Index(lower, prefix); i >= 0 {
		s = s[i+len(prefix):]
	}
	return strings.Trim(s, "/@")
}

// SkillGroup is one category of the skills section.
type SkillGroup struct {
	Category string
	Names    []string
}

// GroupSkills buckets skills by category. Categories listed in CategoryOrder
// come first in that order; within a category input order is kept.
func GroupSkills(skills []domain.Skill) []SkillGroup {
	buckets := map[string][]string{}
	var seen []string
	for _, s := range skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		cat := strings.TrimSpace(s.Category)
		if cat == "" {
			cat = "Other"
		}
		if _, ok := buckets[cat]; !ok {
			seen = append(seen, cat)
		}
		buckets[cat] = append(buckets[cat], name)
	}

	groups := make([]SkillGroup, 0, len(buckets))
	emitted := map[string]bool{}
	for _, cat := range CategoryOrder {
		if names, ok := buckets[cat]; ok {
			groups = append(groups, SkillGroup{Category: cat, Names: names})
			emitted[cat] = true
		}
	}
	for _, cat := range seen {
		if !emitted[cat] {
			groups = append(groups, SkillGroup{Category: cat, Names: buckets[cat]})
		}
	}
	return groups
}

// ExperienceBullets is responsibilities followed by achievements. Blank
// entries are dropped; duplicates are kept.
func ExperienceBullets(e domain.Experience) []string {
	out := make([]string, 0, len(e.Responsibilities)+len(e.Achievements))
	for _, list := range [][]string{e.Responsibilities, e.Achievements} {
		for _, b := range list {
			if strings.TrimSpace(b) != "" {
				out = append(out, b)
			}
		}
	}
	return out
}

// FeaturedProjects keeps featured projects in the given order, at most
// MaxFeaturedProjects of them.
func FeaturedProjects(projects []domain.Project) []domain.Project {
	var out []domain.Project
	for _, p := range projects {
		if !p.IsFeatured {
			continue
		}
		out = append(out, p)
		if len(out) == MaxFeaturedProjects {
			break
		}
	}
	return out
}

// urlLabel shortens a credential URL to its registrable domain.
func urlLabel(raw string) string {
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return raw
	}
	host := parsed.Hostname()
	if host == "" {
		return raw
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
