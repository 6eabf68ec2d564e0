package resume

import (
	"testing"

	"portfolio-cms/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankExperience(t *testing.T) {
	start := domain.MustParseDate("2022-01-01")

	t.Run("engineering role first on equal dates", func(t *testing.T) {
		in := []domain.Experience{
			{Title: "Marketing Intern", StartDate: start},
			{Title: "Software Engineer", StartDate: start},
		}
		got := RankExperience(in)
		require.Len(t, got, 2)
		assert.Equal(t, "Software Engineer", got[0].Title)
		assert.Equal(t, "Marketing Intern", got[1].Title)
		assert.Equal(t, "Marketing Intern", in[0].Title, "input must not be reordered")
	})

	t.Run("recency within groups", func(t *testing.T) {
		in := []domain.Experience{
			{Title: "Cashier", StartDate: domain.MustParseDate("2018-01-01")},
			{Title: "Backend Developer", StartDate: domain.MustParseDate("2020-01-01")},
			{Title: "Support Agent", StartDate: domain.MustParseDate("2021-01-01")},
			{Title: "Analyst", Company: "Acme Software", StartDate: domain.MustParseDate("2023-01-01")},
		}
		var titles []string
		for _, e := range RankExperience(in) {
			titles = append(titles, e.Title)
		}
		assert.Equal(t, []string{"Analyst", "Backend Developer", "Support Agent", "Cashier"}, titles)
	})
}

func TestFilterEducation(t *testing.T) {
	in := []domain.Education{
		{Institution: "Greenfield Primary School"},
		{Institution: "Greenfield Secondary School"},
		{Institution: "Hill School", FieldOfStudy: "KCPE"},
		{Institution: "University of Nairobi", Degree: "BSc"},
	}
	var names []string
	for _, e := range FilterEducation(in) {
		names = append(names, e.Institution)
	}
	assert.Equal(t, []string{"Greenfield Secondary School", "University of Nairobi"}, names)
}

func TestRoleVariant_FilterSkills(t *testing.T) {
	skills := []domain.Skill{
		{Name: "MongoDB", Category: "Databases"},
		{Name: "CSS", Category: "Frontend"},
		{Name: "React", Category: "Frontend"},
		{Name: "Go", Category: "Languages"},
		{Name: "Excel", Category: "Tools"},
	}
	v := RoleVariant{
		AllowedCategories: []string{"frontend", "Languages", "Databases"},
		ExcludedSkills:    []string{"css"},
		EmphasisKeywords:  []string{"react", "go"},
	}
	var names []string
	for _, s := range v.FilterSkills(skills) {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"React", "Go", "MongoDB"}, names)
}

func TestVariants(t *testing.T) {
	vs := Variants([]RoleVariant{
		{ID: "frontend", Label: "UI Engineer"},
		{ID: "data", Label: "Data Engineer"},
	})
	require.Len(t, vs, len(DefaultVariants())+1)

	fe, ok := FindVariant(vs, "FRONTEND")
	require.True(t, ok)
	assert.Equal(t, "UI Engineer", fe.Label)

	_, ok = FindVariant(vs, "data")
	assert.True(t, ok)
	_, ok = FindVariant(vs, "missing")
	assert.False(t, ok)
}
