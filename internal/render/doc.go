// The doc types are the JSON documents the page-rendering layer
// consumes: one per article, plus section listings.
package render

import (
	"fmt"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/catalog"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/content"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/mdtext"
)

type ArticleRef struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type TocEntry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

type CodeBlockDoc struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Title    string `json:"title,omitempty"`
}

type DiagramDoc struct {
	File     string `json:"file"`
	Alt      string `json:"alt"`
	Caption  string `json:"caption,omitempty"`
	Position string `json:"position"`
	Priority bool   `json:"priority"`
}

type ArticleDoc struct {
	Slug           string         `json:"slug"`
	Title          string         `json:"title"`
	Section        string         `json:"section"`
	HTML           string         `json:"html"`
	TOC            []TocEntry     `json:"toc"`
	ReadingMinutes int            `json:"reading_minutes"`
	CodeBlocks     []CodeBlockDoc `json:"code_blocks,omitempty"`
	Diagrams       []DiagramDoc   `json:"diagrams,omitempty"`
	Prev           *ArticleRef    `json:"prev"`
	Next           *ArticleRef    `json:"next"`
}

type SectionDoc struct {
	Name     string       `json:"name"`
	Count    int          `json:"count"`
	Articles []ArticleRef `json:"articles"`
}

// BuildArticleBody renders one article into its document payload: HTML,
// TOC, code blocks and diagrams. Reading time and neighbours are the
// caller's to fill in; the build path derives them from the catalog,
// the server reads them back from the persisted index.
func BuildArticleBody(md *MarkdownRenderer, a content.Article) (ArticleDoc, error) {
	htmlBytes, err := md.Render([]byte(a.Content))
	if err != nil {
		return ArticleDoc{}, fmt.Errorf("render %s: %w", a.Slug, err)
	}

	doc := ArticleDoc{
		Slug:    a.Slug,
		Title:   a.Title,
		Section: a.Section,
		HTML:    string(htmlBytes),
	}
	for _, h := range mdtext.ExtractHeadings(a.Content) {
		doc.TOC = append(doc.TOC, TocEntry{ID: h.ID, Text: h.Text, Level: h.Level})
	}
	for _, cb := range a.CodeBlocks {
		doc.CodeBlocks = append(doc.CodeBlocks, CodeBlockDoc{
			Language: cb.Language,
			Code:     cb.Code,
			Title:    cb.Title,
		})
	}
	for _, d := range a.Diagrams {
		doc.Diagrams = append(doc.Diagrams, DiagramDoc{
			File:     d.File,
			Alt:      d.Alt,
			Caption:  d.Caption,
			Position: string(d.Position),
			Priority: d.Priority,
		})
	}
	return doc, nil
}

// BuildArticleDoc assembles the full per-article payload with reading
// time and catalog-order neighbours resolved from the catalog. The bool
// mirrors the catalog lookup; a miss is not an error.
func BuildArticleDoc(md *MarkdownRenderer, cat *catalog.Catalog, slug string, wpm int) (ArticleDoc, bool, error) {
	a, ok := cat.ArticleBySlug(slug)
	if !ok {
		return ArticleDoc{}, false, nil
	}

	doc, err := BuildArticleBody(md, *a)
	if err != nil {
		return ArticleDoc{}, true, err
	}
	doc.ReadingMinutes = mdtext.ReadingTime(a.Content, wpm)

	prev, next := cat.PrevNext(slug)
	if prev != nil {
		doc.Prev = &ArticleRef{Slug: prev.Slug, Title: prev.Title}
	}
	if next != nil {
		doc.Next = &ArticleRef{Slug: next.Slug, Title: next.Title}
	}
	return doc, true, nil
}

// BuildSectionDocs lists every section with its article refs in catalog
// order.
func BuildSectionDocs(cat *catalog.Catalog) []SectionDoc {
	sections := cat.Sections()
	out := make([]SectionDoc, 0, len(sections))
	for _, sec := range sections {
		doc := SectionDoc{Name: sec.Name, Count: len(sec.Articles)}
		for _, a := range sec.Articles {
			doc.Articles = append(doc.Articles, ArticleRef{Slug: a.Slug, Title: a.Title})
		}
		out = append(out, doc)
	}
	return out
}
