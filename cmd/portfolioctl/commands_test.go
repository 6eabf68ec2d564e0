package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVariantsCommand(t *testing.T) {
	out, err := execute(t, "variants")
	require.NoError(t, err)
	assert.Contains(t, out, "software-engineer")
	assert.Contains(t, out, "it-support")
	assert.True(t, strings.HasPrefix(out, "ID"))
}

func TestVariantsCommandMergesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resume:\n  variants:\n    - id: data\n      label: Data\n      title: Data Engineer\n"), 0o600))

	out, err := execute(t, "--config", path, "variants")
	require.NoError(t, err)
	assert.Contains(t, out, "Data Engineer")
}

func TestResumeFromProfileFile(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(profile, []byte(`{
		"variant": "frontend",
		"personal_info": {"name": "Ada Lovelace", "title": "Engineer", "email": "ada@example.com"},
		"experience": [{"company": "Acme", "title": "Developer", "start_date": "2020-01-01"}],
		"skills": [{"name": "React", "category": "Frontend"}]
	}`), 0o600))

	out, err := execute(t, "resume", "--profile", profile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Acme")

	target := filepath.Join(dir, "resume.html")
	_, err = execute(t, "resume", "--profile", profile, "--out", target)
	require.NoError(t, err)
	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(written), "Ada Lovelace")
}

func TestResumeRejectsInvalidProfile(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(profile, []byte(`{"skills": []}`), 0o600))

	_, err := execute(t, "resume", "--profile", profile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestResumeUnknownVariant(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(profile, []byte(`{"personal_info": {"name": "Ada"}}`), 0o600))

	_, err := execute(t, "resume", "--profile", profile, "--variant", "astronaut")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role variant")
}

func TestCommandsNeedDatabase(t *testing.T) {
	for _, args := range [][]string{{"migrate"}, {"seed"}, {"sync", "ada"}, {"resume"}} {
		_, err := execute(t, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "DATABASE_URL", args)
	}
}
