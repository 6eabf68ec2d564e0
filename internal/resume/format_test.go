package resume

import (
	"testing"

	"portfolio-cms/internal/domain"

	"github.com/stretchr/testify/assert"
)

func datePtr(s string) *domain.Date {
	d := domain.MustParseDate(s)
	return &d
}

func TestFormatDateRange(t *testing.T) {
	testCases := []struct {
		name      string
		start     domain.Date
		end       *domain.Date
		isCurrent bool
		want      string
	}{
		{
			name:      "current without end date",
			start:     domain.MustParseDate("2024-02-01"),
			isCurrent: true,
			want:      "02/2024 - Present",
		},
		{
			name:  "closed range",
			start: domain.MustParseDate("2023-07-01"),
			end:   datePtr("2023-12-15"),
			want:  "07/2023 - 12/2023",
		},
		{
			name:  "missing end date without current flag",
			start: domain.MustParseDate("2021-01-10"),
			want:  "01/2021 - Present",
		},
		{
			name:      "current flag wins over end date",
			start:     domain.MustParseDate("2021-01-10"),
			end:       datePtr("2022-03-01"),
			isCurrent: true,
			want:      "01/2021 - Present",
		},
		{
			name: "no dates at all",
			want: "",
		},
		{
			name: "only end date",
			end:  datePtr("2019-06-30"),
			want: "06/2019",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDateRange(tc.start, tc.end, tc.isCurrent))
		})
	}
}

func TestContactSegments(t *testing.T) {
	t.Run("only email and location", func(t *testing.T) {
		p := domain.PersonalInfo{Email: "jane@example.com", Location: "Nairobi, Kenya"}
		assert.Equal(t, []string{"jane@example.com", "Nairobi, Kenya"}, ContactSegments(p))
		assert.Equal(t, "jane@example.com | Nairobi, Kenya", ContactLine(p))
	})

	t.Run("all fields in fixed order", func(t *testing.T) {
		p := domain.PersonalInfo{
			Email:       "jane@example.com",
			Phone:       "+254 700 000000",
			Location:    "Nairobi",
			LinkedInURL: "https://www.linkedin.com/in/jane-doe/",
			GitHubURL:   "https://github.com/janedoe/",
			WebsiteURL:  "https://janedoe.dev/",
		}
		assert.Equal(t, []string{
			"jane@example.com",
			"+254 700 000000",
			"Nairobi",
			"linkedin.com/in/jane-doe",
			"github.com/janedoe",
			"janedoe.dev",
		}, ContactSegments(p))
	})

	t.Run("bare handles", func(t *testing.T) {
		p := domain.PersonalInfo{LinkedInURL: "jane-doe", GitHubURL: "janedoe"}
		assert.Equal(t, []string{"linkedin.com/in/jane-doe", "github.com/janedoe"}, ContactSegments(p))
	})

	t.Run("empty profile", func(t *testing.T) {
		assert.Empty(t, ContactSegments(domain.PersonalInfo{}))
		assert.Equal(t, "", ContactLine(domain.PersonalInfo{}))
	})
}

func TestGroupSkills(t *testing.T) {
	skills := []domain.Skill{
		{Name: "Go", Category: "Languages"},
		{Name: "Docker", Category: "DevOps"},
		{Name: "Custom", Category: "Zeta"},
		{Name: "Python", Category: "Languages"},
		{Name: "Alpha", Category: "Aleph"},
		{Name: "Misc"},
	}
	groups := GroupSkills(skills)

	var cats []string
	for _, g := range groups {
		cats = append(cats, g.Category)
	}
	assert.Equal(t, []string{"Languages", "DevOps", "Other", "Zeta", "Aleph"}, cats)
	assert.Equal(t, []string{"Go", "Python"}, groups[0].Names)
	assert.Equal(t, []string{"Misc"}, groups[2].Names)
}

func TestExperienceBullets(t *testing.T) {
	e := domain.Experience{
		Responsibilities: []string{"Built APIs", "Ran on-call", ""},
		Achievements:     []string{"Cut latency 40%", "Built APIs"},
	}
	assert.Equal(t, []string{"Built APIs", "Ran on-call", "Cut latency 40%", "Built APIs"}, ExperienceBullets(e))
}

func TestFeaturedProjects(t *testing.T) {
	var projects []domain.Project
	for _, title := range []string{"a", "b", "c", "d", "e", "f"} {
		projects = append(projects, domain.Project{Title: title, IsFeatured: title != "b"})
	}
	got := FeaturedProjects(projects)
	var titles []string
	for _, p := range got {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"a", "c", "d", "e"}, titles)
}

func TestURLLabel(t *testing.T) {
	assert.Equal(t, "credly.com", urlLabel("https://www.credly.com/badges/abc"))
	assert.Equal(t, "example.co.uk", urlLabel("certs.example.co.uk/path"))
	assert.Equal(t, "", urlLabel(""))
}
