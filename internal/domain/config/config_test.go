package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerr "github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/errors"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Site.Title = ""
	cfg.Site.SiteURL = "not a url"
	cfg.Site.WordsPerMinute = 0
	cfg.Content.Dir = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerr.ErrInvalid)

	var ve domainerr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.GreaterOrEqual(t, len(ve.Items), 4)
}

func TestValidate_DuplicateSections(t *testing.T) {
	cfg := Default()
	cfg.Content.Sections = []string{"basics", "basics"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate section")
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	data := `
site:
  title: ويكي تجريبي
  site_url: https://wiki.test
content:
  dir: articles
  sections: [الأساسيات, متقدم]
verify:
  required_slugs: [intro, setup]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ويكي تجريبي", cfg.Site.Title)
	assert.Equal(t, "articles", cfg.Content.Dir)
	assert.Equal(t, []string{"الأساسيات", "متقدم"}, cfg.Content.Sections)
	assert.Equal(t, []string{"intro", "setup"}, cfg.Verify.RequiredSlugs)

	// untouched fields keep their defaults
	assert.Equal(t, 200, cfg.Site.WordsPerMinute)
	assert.Equal(t, ":8080", cfg.Serve.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefault_MissingFileFallsBack(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Site.Title, cfg.Site.Title)
}
