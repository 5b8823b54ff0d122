// Package catalog holds the immutable, ordered article collection built
// once at startup. Readers share one catalog value without locking; a
// content change produces a new catalog, never an in-place edit.
package catalog

import (
	"strings"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/content"
	domainerr "github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/errors"
)

type Catalog struct {
	sections []content.Section

	// flat is the canonical sequence: section order, then article order
	// within the section. Previous/next navigation crosses section
	// boundaries by walking this slice.
	flat []content.Article
	pos  map[string]int
}

// New flattens the ordered sections into a catalog. Duplicate slugs are a
// build error, reported together for every offending slug.
func New(sections []content.Section) (*Catalog, error) {
	c := &Catalog{
		sections: sections,
		pos:      make(map[string]int),
	}

	var ve domainerr.ValidationError
	for _, sec := range sections {
		for _, a := range sec.Articles {
			slug := strings.TrimSpace(a.Slug)
			if slug == "" {
				ve.Add("slug", "empty slug in section "+sec.Name)
				continue
			}
			if _, ok := c.pos[slug]; ok {
				ve.Add("slug", "duplicate slug: "+slug)
				continue
			}
			c.pos[slug] = len(c.flat)
			c.flat = append(c.flat, a)
		}
	}
	if ve.HasAny() {
		return nil, ve
	}
	return c, nil
}

// ArticleBySlug is a direct lookup. A miss is an expected outcome (bad
// URL), so it is reported through the bool, not an error.
func (c *Catalog) ArticleBySlug(slug string) (*content.Article, bool) {
	i, ok := c.pos[slug]
	if !ok {
		return nil, false
	}
	return &c.flat[i], true
}

// PrevNext returns the catalog-order neighbours of slug. The first
// article has no prev, the last has no next, and an unknown slug yields
// nil for both.
func (c *Catalog) PrevNext(slug string) (prev, next *content.Article) {
	i, ok := c.pos[slug]
	if !ok {
		return nil, nil
	}
	if i > 0 {
		prev = &c.flat[i-1]
	}
	if i < len(c.flat)-1 {
		next = &c.flat[i+1]
	}
	return prev, next
}

// All returns the flattened sequence in canonical order. The slice is a
// copy; the catalog itself never changes after New.
func (c *Catalog) All() []content.Article {
	out := make([]content.Article, len(c.flat))
	copy(out, c.flat)
	return out
}

func (c *Catalog) Sections() []content.Section {
	return c.sections
}

func (c *Catalog) Len() int {
	return len(c.flat)
}

// Position returns the canonical index of slug, for consumers that
// persist the ordering.
func (c *Catalog) Position(slug string) (int, bool) {
	i, ok := c.pos[slug]
	return i, ok
}
