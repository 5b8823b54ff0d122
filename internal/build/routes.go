package build

import (
	"path/filepath"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/catalog"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/site"
)

// PlanRoutes enumerates every artifact a build emits: one JSON document
// per article, the flat article index, the section listing and the
// sitemap.
func PlanRoutes(cat *catalog.Catalog) []site.Route {
	var routes []site.Route

	for _, a := range cat.All() {
		routes = append(routes, site.Route{
			Kind:    site.RouteArticle,
			Slug:    a.Slug,
			OutPath: filepath.Join("api", "articles", a.Slug+".json"),
		})
	}
	routes = append(routes,
		site.Route{Kind: site.RouteIndex, OutPath: filepath.Join("api", "articles.json")},
		site.Route{Kind: site.RouteSections, OutPath: filepath.Join("api", "sections.json")},
		site.Route{Kind: site.RouteSitemap, OutPath: "sitemap.xml"},
	)
	return routes
}
