package build

import (
	"encoding/xml"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/content"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/site"
)

type urlEntry struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// Sitemap emits one URL entry per article in canonical catalog order.
func Sitemap(siteURL string, articles []content.Article) ([]byte, error) {
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]urlEntry, 0, len(articles)),
	}
	for _, a := range articles {
		set.URLs = append(set.URLs, urlEntry{Loc: site.ArticleURL(siteURL, a.Slug)})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
