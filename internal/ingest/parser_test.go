package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontMatter_Full(t *testing.T) {
	raw := []byte(`---
title: مقدمة في الذكاء الاصطناعي
slug: intro-ai
section: الأساسيات
order: 1
code_blocks:
  - language: go
    title: hello
    code: |
      fmt.Println("hi")
diagrams:
  - file: flow.svg
    alt: سير العمل
    position: before-section
    priority: true
---
body text here`)

	fm, body, err := ParseFrontMatter(raw)
	require.NoError(t, err)
	assert.Equal(t, "مقدمة في الذكاء الاصطناعي", fm.Title)
	assert.Equal(t, "intro-ai", fm.Slug)
	assert.Equal(t, "الأساسيات", fm.Section)
	assert.Equal(t, 1, fm.Order)
	require.Len(t, fm.CodeBlocks, 1)
	assert.Equal(t, "go", fm.CodeBlocks[0].Language)
	require.Len(t, fm.Diagrams, 1)
	assert.Equal(t, "flow.svg", fm.Diagrams[0].File)
	assert.True(t, fm.Diagrams[0].Priority)
	assert.Equal(t, "body text here", string(body))
}

func TestParseFrontMatter_NoHeader(t *testing.T) {
	_, _, err := ParseFrontMatter([]byte("just a body"))
	assert.ErrorIs(t, err, errNoFrontMatter)
}

func TestParseFrontMatter_Empty(t *testing.T) {
	_, _, err := ParseFrontMatter(nil)
	assert.ErrorIs(t, err, errNoFrontMatter)
}

func TestParseFrontMatter_HeaderWithoutBody(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte("---\ntitle: Only Header\n---"))
	require.NoError(t, err)
	assert.Equal(t, "Only Header", fm.Title)
	assert.Empty(t, body)
}

func TestParseFrontMatter_Unterminated(t *testing.T) {
	_, _, err := ParseFrontMatter([]byte("---\ntitle: Broken\nbody without closing"))
	assert.ErrorIs(t, err, errInvalidFrontMatter)
}

func TestParseFrontMatter_CRLF(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte("---\r\ntitle: Windows\r\n---\r\nbody"))
	require.NoError(t, err)
	assert.Equal(t, "Windows", fm.Title)
	assert.Equal(t, "body", string(body))
}

func TestResolveSlug_Priority(t *testing.T) {
	fm := FrontMatter{Slug: "Explicit Slug", Title: "The Title"}
	assert.Equal(t, "explicit-slug", ResolveSlug(fm, "content/file.md"))

	fm = FrontMatter{Title: "The Title"}
	assert.Equal(t, "the-title", ResolveSlug(fm, "content/file.md"))

	fm = FrontMatter{}
	assert.Equal(t, "my-article", ResolveSlug(fm, "content/My Article.md"))
}
