package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `{
		"name": "Amar Kumar",
		"skills": "React, Node.js",
		"github_stats": {"show": true, "theme": "radical"}
	}`)

	profile, warnings, err := loadProfile(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "Amar Kumar", profile.Name)
	assert.Equal(t, []string{"React", "Node.js"}, profile.SkillTokens())
	assert.True(t, profile.GithubStats.Show)
}

func TestLoadProfile_URLWarnings(t *testing.T) {
	path := writeProfile(t, `{"name": "Amar", "website": "ftp://example.com"}`)

	profile, warnings, err := loadProfile(path)
	require.NoError(t, err)
	require.NotNil(t, profile)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Website")
}

func TestLoadProfile_SchemaRejection(t *testing.T) {
	path := writeProfile(t, `{"name": 42}`)

	_, _, err := loadProfile(path)
	require.Error(t, err)
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, _, err := loadProfile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
