package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/content"
	domainerr "github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/errors"
)

func sampleSections() []content.Section {
	article := func(slug, section string) content.Article {
		return content.Article{
			Slug:    slug,
			Title:   "Title for " + slug,
			Section: section,
			Content: strings.Repeat("body ", 30),
		}
	}
	return []content.Section{
		{Name: "الأساسيات", Articles: []content.Article{
			article("intro", "الأساسيات"),
			article("setup", "الأساسيات"),
		}},
		{Name: "متقدم", Articles: []content.Article{
			article("prompts", "متقدم"),
		}},
	}
}

func TestNew_FlattensInSectionOrder(t *testing.T) {
	cat, err := New(sampleSections())
	require.NoError(t, err)

	var slugs []string
	for _, a := range cat.All() {
		slugs = append(slugs, a.Slug)
	}
	assert.Equal(t, []string{"intro", "setup", "prompts"}, slugs)
	assert.Equal(t, 3, cat.Len())
}

func TestNew_DeterministicFlattening(t *testing.T) {
	first, err := New(sampleSections())
	require.NoError(t, err)
	second, err := New(sampleSections())
	require.NoError(t, err)
	assert.Equal(t, first.All(), second.All())
}

func TestNew_DuplicateSlugFails(t *testing.T) {
	sections := sampleSections()
	sections[1].Articles = append(sections[1].Articles, content.Article{
		Slug: "intro", Title: "Clone", Section: "متقدم", Content: "x",
	})

	_, err := New(sections)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerr.ErrInvalid)
	assert.Contains(t, err.Error(), "duplicate slug: intro")
}

func TestArticleBySlug(t *testing.T) {
	cat, err := New(sampleSections())
	require.NoError(t, err)

	a, ok := cat.ArticleBySlug("setup")
	require.True(t, ok)
	assert.Equal(t, "Title for setup", a.Title)

	a, ok = cat.ArticleBySlug("does-not-exist-xyz")
	assert.False(t, ok)
	assert.Nil(t, a)
}

func TestPrevNext_Boundaries(t *testing.T) {
	cat, err := New(sampleSections())
	require.NoError(t, err)

	prev, next := cat.PrevNext("intro")
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "setup", next.Slug)

	prev, next = cat.PrevNext("prompts")
	require.NotNil(t, prev)
	assert.Equal(t, "setup", prev.Slug)
	assert.Nil(t, next)
}

func TestPrevNext_CrossesSectionBoundary(t *testing.T) {
	cat, err := New(sampleSections())
	require.NoError(t, err)

	// "setup" ends the first section; its next lives in the second.
	prev, next := cat.PrevNext("setup")
	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "intro", prev.Slug)
	assert.Equal(t, "prompts", next.Slug)
}

func TestPrevNext_UnknownSlug(t *testing.T) {
	cat, err := New(sampleSections())
	require.NoError(t, err)

	prev, next := cat.PrevNext("missing")
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestAll_ReturnsCopy(t *testing.T) {
	cat, err := New(sampleSections())
	require.NoError(t, err)

	all := cat.All()
	all[0].Slug = "tampered"

	a, ok := cat.ArticleBySlug("intro")
	require.True(t, ok)
	assert.Equal(t, "intro", a.Slug)
}

func TestPosition(t *testing.T) {
	cat, err := New(sampleSections())
	require.NoError(t, err)

	i, ok := cat.Position("prompts")
	require.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = cat.Position("missing")
	assert.False(t, ok)
}
