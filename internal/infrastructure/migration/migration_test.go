package migration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationsAreNamedAndUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Migrations() {
		assert.NotEmpty(t, m.Name)
		assert.NotNil(t, m.Up, m.Name)
		assert.False(t, seen[m.Name], "duplicate migration %s", m.Name)
		seen[m.Name] = true
	}
}

func TestMigrationsCoverEveryTable(t *testing.T) {
	tables := []string{
		"personal_info", "experience", "education", "projects", "skills", "certifications",
		"roadmap_phases", "about_content", "testimonials", "technologies", "sync_runs",
	}
	names := make([]string, 0)
	for _, m := range Migrations() {
		names = append(names, m.Name)
	}
	joined := strings.Join(names, ",")
	for _, table := range tables {
		assert.Contains(t, joined, "create_"+table)
	}
}
