package ingest

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/content"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/mdtext"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/slug"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/validate"
)

type Warning struct {
	Path string
	Msg  string
}

type result struct {
	path    string
	article content.Article
	warns   []Warning
	skip    bool
	err     error
}

type Options struct {
	// SectionOrder is the configured display order. Sections found in
	// content but not listed are appended alphabetically.
	SectionOrder []string

	// KeepInvalid keeps records that fail validation instead of skipping
	// them. The verifier needs the partial stubs; the build does not.
	KeepInvalid bool
}

// Ingest reads every markdown source under dir and produces the ordered
// section list the catalog is built from. Records that fail validation
// are skipped with a warning rather than aborting the whole load; only
// I/O failures are fatal.
func Ingest(dir string, opt Options) ([]content.Section, []Warning, error) {
	files, err := DiscoverSource(dir)
	if err != nil {
		return nil, nil, err
	}

	workers := runtime.GOMAXPROCS(0)
	jobs := make(chan SourceFile)
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sf := range jobs {
				results <- loadOne(sf, opt.KeepInvalid)
			}
		}()
	}

	go func() {
		for _, f := range files {
			jobs <- f
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	// Drain results fully even after an error so the workers and the
	// feeder are never left blocked on their sends.
	var loaded []result
	var warns []Warning
	var firstErr error
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		warns = append(warns, r.warns...)
		if r.skip {
			continue
		}
		loaded = append(loaded, r)
	}
	if firstErr != nil {
		return nil, nil, firstErr
	}

	// Worker completion order is nondeterministic; source path order is
	// the tie-break everything downstream depends on.
	sort.Slice(loaded, func(i, j int) bool { return loaded[i].path < loaded[j].path })

	articles := make([]content.Article, 0, len(loaded))
	seen := make(map[string]struct{}, len(loaded))
	for _, r := range loaded {
		a := r.article
		if _, dup := seen[a.Slug]; dup {
			resolved := slug.Unique(a.Slug, func(s string) bool {
				_, taken := seen[s]
				return taken
			})
			warns = append(warns, Warning{
				Path: r.path,
				Msg:  fmt.Sprintf("slug %q already taken, using %q", a.Slug, resolved),
			})
			a.Slug = resolved
		}
		seen[a.Slug] = struct{}{}
		articles = append(articles, a)
	}

	return groupSections(articles, opt.SectionOrder), warns, nil
}

func loadOne(sf SourceFile, keepInvalid bool) result {
	raw, err := os.ReadFile(sf.Path)
	if err != nil {
		return result{err: err}
	}

	fm, body, fmErr := ParseFrontMatter(raw)
	if fmErr != nil {
		return result{
			path:  sf.Path,
			warns: []Warning{{Path: sf.Path, Msg: "failed to parse front matter: " + fmErr.Error()}},
			skip:  true,
		}
	}

	var warns []Warning
	a := content.Article{
		Slug:    ResolveSlug(fm, sf.Path),
		Title:   fm.Title,
		Section: fm.Section,
		Order:   fm.Order,
		Content: mdtext.RemoveComments(string(body)),
	}
	for _, cb := range fm.CodeBlocks {
		a.CodeBlocks = append(a.CodeBlocks, content.CodeBlock{
			Language: cb.Language,
			Code:     cb.Code,
			Title:    cb.Title,
		})
	}
	for i, ds := range fm.Diagrams {
		d, errs := content.NewDiagram(ds.File, ds.Alt, ds.Caption, ds.Position, ds.Priority)
		if len(errs) > 0 {
			for _, fe := range errs {
				warns = append(warns, Warning{
					Path: sf.Path,
					Msg:  fmt.Sprintf("diagram %d dropped, %s", i, fe.Error()),
				})
			}
			continue
		}
		a.Diagrams = append(a.Diagrams, d)
	}
	a.Normalize()

	if errs := validate.Article(a); len(errs) > 0 {
		for _, fe := range errs {
			warns = append(warns, Warning{Path: sf.Path, Msg: fe.Error()})
		}
		return result{path: sf.Path, article: a, warns: warns, skip: !keepInvalid}
	}
	return result{path: sf.Path, article: a, warns: warns}
}

// groupSections orders sections by the configured list first, then any
// remaining sections alphabetically. Within a section articles sort by
// their order field, slug as tie-break.
func groupSections(articles []content.Article, configured []string) []content.Section {
	bySection := make(map[string][]content.Article)
	for _, a := range articles {
		bySection[a.Section] = append(bySection[a.Section], a)
	}

	var names []string
	taken := make(map[string]struct{})
	for _, n := range configured {
		n = strings.TrimSpace(n)
		if _, ok := bySection[n]; !ok {
			continue
		}
		if _, dup := taken[n]; dup {
			continue
		}
		taken[n] = struct{}{}
		names = append(names, n)
	}
	var extra []string
	for n := range bySection {
		if _, ok := taken[n]; !ok {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	names = append(names, extra...)

	out := make([]content.Section, 0, len(names))
	for _, n := range names {
		arts := bySection[n]
		sort.Slice(arts, func(i, j int) bool {
			if arts[i].Order != arts[j].Order {
				return arts[i].Order < arts[j].Order
			}
			return arts[i].Slug < arts[j].Slug
		})
		out = append(out, content.Section{Name: n, Articles: arts})
	}
	return out
}
