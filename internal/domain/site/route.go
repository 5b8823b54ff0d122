package site

import (
	"fmt"
	"strings"
)

type RouteKind string

const (
	RouteArticle  RouteKind = "article"
	RouteIndex    RouteKind = "index"
	RouteSections RouteKind = "sections"
	RouteSitemap  RouteKind = "sitemap"
)

// Route is one planned build output: which artifact, for which slug, and
// where it lands under the public dir.
type Route struct {
	Kind    RouteKind
	Slug    string
	OutPath string
}

func (r Route) String() string {
	var parts []string
	parts = append(parts, string(r.Kind))
	if r.Slug != "" {
		parts = append(parts, "slug="+r.Slug)
	}
	if r.OutPath != "" {
		parts = append(parts, "out="+r.OutPath)
	}
	return strings.Join(parts, " ")
}

// ArticleURL is the public page URL for a slug, used by the sitemap.
func ArticleURL(siteURL, slug string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(siteURL, "/"), slug)
}
