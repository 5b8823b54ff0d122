// Package build turns the authored content tree into the static
// artifacts the site consumes: per-article JSON documents, listings, a
// sitemap, and the persisted bbolt index.
package build

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/catalog"
	domainbuild "github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/build"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/config"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/site"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/index"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/ingest"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/render"
)

type Builder struct {
	Cfg config.Config
	Log *zap.Logger
}

type Result struct {
	Articles int
	Routes   int
	Warnings []ingest.Warning
	Skipped  bool
}

func (b *Builder) Run(ctx context.Context) (*Result, error) {
	log := b.Log
	if log == nil {
		log = zap.NewNop()
	}

	sections, warns, err := ingest.Ingest(b.Cfg.Content.Dir, ingest.Options{
		SectionOrder: b.Cfg.Content.Sections,
	})
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	for _, w := range warns {
		log.Warn("ingest", zap.String("path", w.Path), zap.String("msg", w.Msg))
	}

	cat, err := catalog.New(sections)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	st, err := index.Open(index.OpenOptions{Path: b.Cfg.Build.IndexPath})
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	defer st.Close()

	fp := domainbuild.Fingerprint{
		Content: domainbuild.ContentHash(cat.All()),
		Config:  domainbuild.ConfigHash(b.Cfg),
	}
	sum := fp.Sum()
	if !b.Cfg.Build.Force {
		if stored, err := st.Fingerprint(); err == nil && stored == sum {
			log.Info("content unchanged, skipping build", zap.String("fingerprint", sum[:12]))
			return &Result{Articles: cat.Len(), Warnings: warns, Skipped: true}, nil
		}
	}

	if err := st.Rebuild(cat, index.RebuildOptions{
		WordsPerMinute: b.Cfg.Site.WordsPerMinute,
	}); err != nil {
		return nil, fmt.Errorf("rebuild index: %w", err)
	}

	routes := PlanRoutes(cat)
	md := render.NewMarkdownRenderer()
	for _, rt := range routes {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if err := b.emit(rt, cat, md); err != nil {
			return nil, fmt.Errorf("emit %s: %w", rt, err)
		}
	}

	if err := st.SetFingerprint(sum); err != nil {
		return nil, fmt.Errorf("store fingerprint: %w", err)
	}

	log.Info("build complete",
		zap.Int("articles", cat.Len()),
		zap.Int("routes", len(routes)))
	return &Result{Articles: cat.Len(), Routes: len(routes), Warnings: warns}, nil
}

func (b *Builder) emit(rt site.Route, cat *catalog.Catalog, md *render.MarkdownRenderer) error {
	switch rt.Kind {
	case site.RouteArticle:
		doc, ok, err := render.BuildArticleDoc(md, cat, rt.Slug, b.Cfg.Site.WordsPerMinute)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("planned article %s not in catalog", rt.Slug)
		}
		return writeJSONFile(b.Cfg.Build.PublicDir, rt.OutPath, doc)

	case site.RouteIndex:
		refs := make([]render.ArticleRef, 0, cat.Len())
		for _, a := range cat.All() {
			refs = append(refs, render.ArticleRef{Slug: a.Slug, Title: a.Title})
		}
		return writeJSONFile(b.Cfg.Build.PublicDir, rt.OutPath, refs)

	case site.RouteSections:
		return writeJSONFile(b.Cfg.Build.PublicDir, rt.OutPath, render.BuildSectionDocs(cat))

	case site.RouteSitemap:
		body, err := Sitemap(b.Cfg.Site.SiteURL, cat.All())
		if err != nil {
			return err
		}
		return writeFile(b.Cfg.Build.PublicDir, rt.OutPath, body)
	}
	return fmt.Errorf("unknown route kind %q", rt.Kind)
}

func writeJSONFile(root, rel string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(root, rel, append(data, '\n'))
}

func writeFile(root, rel string, data []byte) error {
	full := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}
