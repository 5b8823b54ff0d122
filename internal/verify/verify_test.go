package verify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/content"
)

func fixtureArticles() []content.Article {
	return []content.Article{
		{
			Slug:    "live",
			Title:   "Live Article",
			Section: "الأساسيات",
			Content: strings.Repeat("نص ", 50),
		},
		{
			// A reserved stub: slug exists but the title was never written.
			Slug:    "stub",
			Section: "الأساسيات",
			Content: strings.Repeat("نص ", 50),
		},
	}
}

func TestRequiredStubs_ThreeBuckets(t *testing.T) {
	r := RequiredStubs(fixtureArticles(), []string{"live", "stub", "ghost"})

	assert.Equal(t, 3, r.TotalRequired)
	assert.Equal(t, 1, r.Verified)
	assert.Equal(t, []string{"ghost"}, r.Missing)
	assert.False(t, r.AllMeetRequirements)

	require.Len(t, r.Details, 3)
	assert.Equal(t, StatusComplete, r.Details["live"].Status)
	assert.Equal(t, StatusIncomplete, r.Details["stub"].Status)
	assert.Equal(t, StatusMissing, r.Details["ghost"].Status)

	stub := r.Details["stub"]
	assert.False(t, stub.HasTitle)
	assert.True(t, stub.HasContent)
	assert.True(t, stub.HasSection)
}

func TestRequiredStubs_AllComplete(t *testing.T) {
	r := RequiredStubs(fixtureArticles(), []string{"live"})
	assert.Equal(t, 1, r.Verified)
	assert.Empty(t, r.Missing)
	assert.True(t, r.AllMeetRequirements)
}

func TestRequiredStubs_EmptyRequirements(t *testing.T) {
	r := RequiredStubs(fixtureArticles(), nil)
	assert.Equal(t, 0, r.TotalRequired)
	assert.True(t, r.AllMeetRequirements)
	assert.Empty(t, r.Details)
}

func TestWriteReport(t *testing.T) {
	r := RequiredStubs(fixtureArticles(), []string{"live", "stub", "ghost"})

	var buf bytes.Buffer
	WriteReport(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "CONTENT INTEGRITY REPORT")
	assert.Contains(t, out, "required slugs : 3")
	assert.Contains(t, out, "verified       : 1")
	assert.Contains(t, out, "MISSING  ghost")
	assert.Contains(t, out, "partial  stub (missing title)")
	assert.Contains(t, out, "ok       live")
	assert.Contains(t, out, "content verification FAILED")
}

func TestWriteReport_Success(t *testing.T) {
	r := RequiredStubs(fixtureArticles(), []string{"live"})

	var buf bytes.Buffer
	WriteReport(&buf, r)
	assert.Contains(t, buf.String(), "all required content verified")
}
