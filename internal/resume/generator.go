package resume

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"strconv"
	"strings"

	"portfolio-cms/internal/domain"
)

//go:embed templates/resume.html templates/style.css
var templateFS embed.FS

var (
	resumeTemplate = template.Must(template.ParseFS(templateFS, "templates/resume.html"))
	stylesheet     = mustReadFile("templates/style.css")
)

func mustReadFile(name string) string {
	b, err := templateFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// Generate renders the default ATS layout: a single-column document with
// plain-text project links.
func Generate(p domain.ResumeProfile) string {
	return render(buildView(p, nil))
}

// GenerateVariant renders the role-targeted layout: primary schooling is
// dropped, engineering roles are ranked first, skills are filtered and
// project links become hyperlinks.
func GenerateVariant(p domain.ResumeProfile, v RoleVariant) string {
	return render(buildView(p, &v))
}

type view struct {
	CSS            template.CSS
	Name           string
	Title          string
	Contact        string
	Summary        string
	Skills         []skillView
	Experience     []experienceView
	Projects       []projectView
	Education      []educationView
	Certifications []certificationView
	Hyperlinks     bool
}

type skillView struct {
	Category string
	Joined   string
}

type experienceView struct {
	Title        string
	Company      string
	Location     string
	Range        string
	Description  string
	Bullets      []string
	Technologies string
}

type projectView struct {
	Title       string
	Description string
	Stack       string
	SourceURL   string
	LiveURL     string
	SourceText  string
	LiveText    string
}

type educationView struct {
	Institution string
	Degree      string
	Grade       string
	Range       string
	Description string
}

type certificationView struct {
	Name     string
	Issuer   string
	Year     string
	URLLabel string
}

func buildView(p domain.ResumeProfile, variant *RoleVariant) view {
	experience := p.Experience
	education := p.Education
	skills := p.Skills
	title := p.Personal.Title
	summary := p.Personal.Summary

	if variant != nil {
		experience = RankExperience(experience)
		education = FilterEducation(education)
		skills = variant.FilterSkills(skills)
		if variant.Title != "" {
			title = variant.Title
		}
		if variant.Summary != "" {
			summary = variant.Summary
		}
	}

	v := view{
		CSS:        template.CSS(stylesheet),
		Name:       strings.TrimSpace(p.Personal.Name),
		Title:      strings.TrimSpace(title),
		Contact:    ContactLine(p.Personal),
		Summary:    strings.TrimSpace(summary),
		Hyperlinks: variant != nil,
	}

	for _, g := range GroupSkills(skills) {
		v.Skills = append(v.Skills, skillView{Category: g.Category, Joined: strings.Join(g.Names, ", ")})
	}

	for _, e := range experience {
		v.Experience = append(v.Experience, experienceView{
			Title:        e.Title,
			Company:      e.Company,
			Location:     e.Location,
			Range:        FormatDateRange(e.StartDate, e.EndDate, e.IsCurrent),
			Description:  strings.TrimSpace(e.Description),
			Bullets:      ExperienceBullets(e),
			Technologies: strings.Join(e.Technologies, ", "),
		})
	}

	for _, pr := range FeaturedProjects(p.Projects) {
		source := domain.Deref(pr.SourceURL)
		live := domain.Deref(pr.LiveURL)
		v.Projects = append(v.Projects, projectView{
			Title:       pr.Title,
			Description: strings.TrimSpace(domain.Deref(pr.Description)),
			Stack:       strings.Join(pr.Stack, ", "),
			SourceURL:   source,
			LiveURL:     live,
			SourceText:  stripURL(source),
			LiveText:    stripURL(live),
		})
	}

	for _, ed := range education {
		degree := ed.Degree
		if ed.FieldOfStudy != "" {
			if degree != "" {
				degree += ", "
			}
			degree += ed.FieldOfStudy
		}
		v.Education = append(v.Education, educationView{
			Institution: ed.Institution,
			Degree:      degree,
			Grade:       ed.Grade,
			Range:       FormatDateRange(ed.StartDate, ed.EndDate, false),
			Description: strings.TrimSpace(ed.Description),
		})
	}

	for _, c := range p.Certifications {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		year := ""
		if c.IssueDate != nil && !c.IssueDate.IsZero() {
			year = strconv.Itoa(c.IssueDate.Year())
		}
		v.Certifications = append(v.Certifications, certificationView{
			Name:     c.Name,
			Issuer:   c.Issuer,
			Year:     year,
			URLLabel: urlLabel(c.CredentialURL),
		})
	}

	return v
}

// render never fails on a well-formed view; a template error is logged and
// whatever was written so far is returned.
func render(v view) string {
	var buf bytes.Buffer
	if err := resumeTemplate.Execute(&buf, v); err != nil {
		slog.Error("resume: template execution failed", "error", err)
	}
	return buf.String()
}
