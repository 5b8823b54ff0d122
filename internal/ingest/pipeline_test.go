package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir, name, frontMatter, body string) {
	t.Helper()
	data := "---\n" + frontMatter + "---\n\n" + body
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
}

func longBody() string {
	return strings.Repeat("فقرة عن البرمجة بمساعدة الذكاء الاصطناعي. ", 10)
}

func TestIngest_GroupsAndOrders(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.md", "title: Second Basics\nsection: basics\norder: 2\n", longBody())
	writeSource(t, dir, "a.md", "title: First Basics\nsection: basics\norder: 1\n", longBody())
	writeSource(t, dir, "c.md", "title: Advanced Topic\nsection: advanced\norder: 1\n", longBody())

	sections, warns, err := Ingest(dir, Options{SectionOrder: []string{"basics", "advanced"}})
	require.NoError(t, err)
	assert.Empty(t, warns)

	require.Len(t, sections, 2)
	assert.Equal(t, "basics", sections[0].Name)
	require.Len(t, sections[0].Articles, 2)
	assert.Equal(t, "first-basics", sections[0].Articles[0].Slug)
	assert.Equal(t, "second-basics", sections[0].Articles[1].Slug)
	assert.Equal(t, "advanced", sections[1].Name)
}

func TestIngest_UnconfiguredSectionsAppendedAlphabetically(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.md", "title: Known Article\nsection: known\n", longBody())
	writeSource(t, dir, "b.md", "title: Zeta Article\nsection: zeta\n", longBody())
	writeSource(t, dir, "c.md", "title: Alpha Article\nsection: alpha\n", longBody())

	sections, _, err := Ingest(dir, Options{SectionOrder: []string{"known"}})
	require.NoError(t, err)

	var names []string
	for _, s := range sections {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"known", "alpha", "zeta"}, names)
}

func TestIngest_SkipsInvalidWithWarning(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "good.md", "title: Valid Article\nsection: basics\n", longBody())
	writeSource(t, dir, "bad.md", "title: Stub Article\nsection: basics\n", "too short")

	sections, warns, err := Ingest(dir, Options{})
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Articles, 1)
	assert.Equal(t, "valid-article", sections[0].Articles[0].Slug)

	require.NotEmpty(t, warns)
	assert.Contains(t, warns[0].Path, "bad.md")
}

func TestIngest_KeepInvalidRetainsPartialStubs(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "good.md", "title: Valid Article\nsection: basics\n", longBody())
	writeSource(t, dir, "stub.md", "title: Stub Article\nsection: basics\n", "too short")

	sections, warns, err := Ingest(dir, Options{KeepInvalid: true})
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Articles, 2)

	var slugs []string
	for _, a := range sections[0].Articles {
		slugs = append(slugs, a.Slug)
	}
	assert.Contains(t, slugs, "stub-article")
	require.NotEmpty(t, warns)
	assert.Contains(t, warns[0].Path, "stub.md")
}

func TestIngest_ReadErrorReleasesWorkers(t *testing.T) {
	dir := t.TempDir()
	// More files than workers so the feeder and every worker have sends
	// pending when the unreadable file surfaces.
	for i := 0; i < 32; i++ {
		fm := fmt.Sprintf("title: Article Number %02d\nsection: bulk\n", i)
		writeSource(t, dir, fmt.Sprintf("%02d.md", i), fm, longBody())
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "no-such-target"), filepath.Join(dir, "broken.md")))

	before := runtime.NumGoroutine()
	_, _, err := Ingest(dir, Options{})
	require.Error(t, err)

	require.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before+1
	}, 2*time.Second, 10*time.Millisecond, "pipeline goroutines must exit after a read error")
}

func TestIngest_ResolvesDuplicateSlugsDeterministically(t *testing.T) {
	dir := t.TempDir()
	// Same title in both files; path order decides who keeps the base slug.
	writeSource(t, dir, "01-intro.md", "title: Intro\nsection: basics\n", longBody())
	writeSource(t, dir, "02-intro.md", "title: Intro\nsection: basics\n", longBody())

	sections, warns, err := Ingest(dir, Options{})
	require.NoError(t, err)
	require.Len(t, sections, 1)

	var slugs []string
	for _, a := range sections[0].Articles {
		slugs = append(slugs, a.Slug)
	}
	assert.ElementsMatch(t, []string{"intro", "intro-1"}, slugs)
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0].Msg, `slug "intro" already taken`)
	assert.Contains(t, warns[0].Path, "02-intro.md")
}

func TestIngest_DropsInvalidDiagramKeepsArticle(t *testing.T) {
	dir := t.TempDir()
	fm := "title: With Diagram\nsection: basics\ndiagrams:\n" +
		"  - file: ok.svg\n    alt: fine\n" +
		"  - file: broken.png\n    alt: wrong format\n"
	writeSource(t, dir, "a.md", fm, longBody())

	sections, warns, err := Ingest(dir, Options{})
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Articles, 1)

	a := sections[0].Articles[0]
	require.Len(t, a.Diagrams, 1)
	assert.Equal(t, "ok.svg", a.Diagrams[0].File)
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0].Msg, "diagram 1 dropped")
}

func TestIngest_StripsHTMLComments(t *testing.T) {
	dir := t.TempDir()
	body := longBody() + "\n<!-- TODO قسم غير مكتمل -->\n"
	writeSource(t, dir, "a.md", "title: Clean Article\nsection: basics\n", body)

	sections, _, err := Ingest(dir, Options{})
	require.NoError(t, err)
	require.Len(t, sections[0].Articles, 1)
	assert.NotContains(t, sections[0].Articles[0].Content, "TODO")
}

func TestIngest_ManyFiles(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 30; i++ {
		fm := fmt.Sprintf("title: Article Number %02d\nsection: bulk\norder: %d\n", i, i)
		writeSource(t, dir, fmt.Sprintf("%02d.md", i), fm, longBody())
	}

	sections, warns, err := Ingest(dir, Options{})
	require.NoError(t, err)
	assert.Empty(t, warns)
	require.Len(t, sections, 1)
	assert.Len(t, sections[0].Articles, 30)

	// order field is authoritative within the section
	for i, a := range sections[0].Articles {
		assert.Equal(t, i, a.Order)
	}
}
