package content

import "strings"

// CodeBlock is a reference snippet attached to an article, independent of
// any fenced code inside the body itself.
type CodeBlock struct {
	Language string
	Code     string
	Title    string
}

// Heading is one table-of-contents entry derived from the article body.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// Article is the central authored record. Slug is unique across the whole
// catalog, not just within its section.
type Article struct {
	Slug    string
	Title   string
	Section string

	// Order controls placement within the section. Articles sharing an
	// order value fall back to slug ordering.
	Order int

	Content    string
	CodeBlocks []CodeBlock
	Diagrams   []Diagram
}

func (a *Article) Normalize() {
	a.Slug = strings.TrimSpace(a.Slug)
	a.Title = strings.TrimSpace(a.Title)
	a.Section = strings.TrimSpace(a.Section)
	if a.Order < 0 {
		a.Order = 0
	}
	for i := range a.CodeBlocks {
		a.CodeBlocks[i].Language = strings.ToLower(strings.TrimSpace(a.CodeBlocks[i].Language))
		a.CodeBlocks[i].Title = strings.TrimSpace(a.CodeBlocks[i].Title)
	}
}

// Section is a named, ordered grouping of articles. Catalog display order
// is the order sections appear in the slice handed to the catalog.
type Section struct {
	Name     string
	Articles []Article
}
