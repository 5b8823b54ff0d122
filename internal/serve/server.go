// Package serve exposes the catalog as a read-only JSON content API.
// The page-rendering frontend is a separate system; it consumes these
// documents.
package serve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/build"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/catalog"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/config"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/index"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/ingest"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/render"
)

type Server struct {
	cfg config.Config
	log *zap.Logger

	idx *index.Store
	md  *render.MarkdownRenderer

	// snap is the immutable catalog snapshot. A content change builds a
	// whole new catalog and swaps the pointer; readers never see a
	// half-updated state.
	snap atomic.Pointer[catalog.Catalog]

	watcher   *fsnotify.Watcher
	watchOnce sync.Once
}

func New(cfg config.Config, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	st, err := index.Open(index.OpenOptions{Path: cfg.Build.IndexPath})
	if err != nil {
		return nil, fmt.Errorf("serve: open index: %w", err)
	}
	return &Server{
		cfg: cfg,
		log: log,
		idx: st,
		md:  render.NewMarkdownRenderer(),
	}, nil
}

func (s *Server) Close() error {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	if s.idx != nil {
		return s.idx.Close()
	}
	return nil
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if err := s.rebuild(); err != nil {
		return err
	}
	if s.cfg.Serve.Watch {
		if err := s.startWatch(ctx); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("listening", zap.String("addr", addr))
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/articles", s.handleArticles)
	mux.HandleFunc("/api/articles/", s.handleArticle)
	mux.HandleFunc("/api/sections", s.handleSections)
	mux.HandleFunc("/api/sections/", s.handleSection)
	mux.HandleFunc("/sitemap.xml", s.handleSitemap)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// rebuild ingests the content tree, builds a fresh catalog, refreshes
// the persisted index and swaps the snapshot. On failure the previous
// snapshot stays live.
func (s *Server) rebuild() error {
	sections, warns, err := ingest.Ingest(s.cfg.Content.Dir, ingest.Options{
		SectionOrder: s.cfg.Content.Sections,
	})
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	for _, w := range warns {
		s.log.Warn("ingest", zap.String("path", w.Path), zap.String("msg", w.Msg))
	}

	cat, err := catalog.New(sections)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if err := s.idx.Rebuild(cat, index.RebuildOptions{
		WordsPerMinute: s.cfg.Site.WordsPerMinute,
	}); err != nil {
		return fmt.Errorf("index rebuild: %w", err)
	}

	s.snap.Store(cat)
	s.log.Info("catalog rebuilt", zap.Int("articles", cat.Len()))
	return nil
}

func (s *Server) startWatch(ctx context.Context) error {
	var err error
	s.watchOnce.Do(func() {
		w, e := fsnotify.NewWatcher()
		if e != nil {
			err = e
			return
		}
		s.watcher = w

		go s.watchLoop(ctx)

		err = filepath.Walk(s.cfg.Content.Dir, func(path string, info os.FileInfo, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if info.IsDir() {
				return w.Add(path)
			}
			return nil
		})
	})
	return err
}

func (s *Server) watchLoop(ctx context.Context) {
	s.log.Info("watching content dir", zap.String("dir", s.cfg.Content.Dir))
	// One-shot timer: a burst of events collapses into a single rebuild
	// 200ms after the last one, and the timer stays quiet until the next
	// event re-arms it.
	debounce := time.NewTimer(time.Hour)
	if !debounce.Stop() {
		<-debounce.C
	}

	trigger := func() {
		if !debounce.Stop() {
			select {
			case <-debounce.C:
			default:
			}
		}
		debounce.Reset(200 * time.Millisecond)
	}

	for {
		select {
		case <-ctx.Done():
			debounce.Stop()
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				trigger()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("watcher error", zap.Error(err))
		case <-debounce.C:
			if err := s.rebuild(); err != nil {
				s.log.Error("rebuild failed, keeping previous snapshot", zap.Error(err))
			}
		}
	}
}

func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	metas, err := s.idx.ListAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list query failed")
		return
	}
	writeJSON(w, http.StatusOK, metas)
}

func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	slug := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/articles/"), "/")
	if slug == "" {
		s.handleArticles(w, r)
		return
	}

	cat := s.snap.Load()
	if cat == nil {
		writeError(w, http.StatusServiceUnavailable, "catalog not ready")
		return
	}

	a, ok := cat.ArticleBySlug(slug)
	if !ok {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}
	doc, err := render.BuildArticleBody(s.md, *a)
	if err != nil {
		s.log.Error("render article", zap.String("slug", slug), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}

	// Reading time and neighbours come from the persisted index, which
	// rebuild() refreshes before the snapshot swap.
	meta, err := s.idx.GetMeta(slug)
	if err != nil {
		s.log.Error("meta query", zap.String("slug", slug), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "meta query failed")
		return
	}
	doc.ReadingMinutes = meta.ReadMin

	prev, next, err := s.idx.PrevNext(slug)
	if err != nil {
		s.log.Error("neighbour query", zap.String("slug", slug), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "neighbour query failed")
		return
	}
	if prev != nil {
		doc.Prev = &render.ArticleRef{Slug: prev.Slug, Title: prev.Title}
	}
	if next != nil {
		doc.Next = &render.ArticleRef{Slug: next.Slug, Title: next.Title}
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/sections/"), "/")
	if name == "" {
		s.handleSections(w, r)
		return
	}
	metas, err := s.idx.ListBySection(name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "section query failed")
		return
	}
	if len(metas) == 0 {
		writeError(w, http.StatusNotFound, "section not found")
		return
	}
	writeJSON(w, http.StatusOK, metas)
}

func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.idx.SectionSummaries()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "section query failed")
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	cat := s.snap.Load()
	if cat == nil {
		writeError(w, http.StatusServiceUnavailable, "catalog not ready")
		return
	}
	body, err := build.Sitemap(s.cfg.Site.SiteURL, cat.All())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sitemap failed")
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	articles := 0
	if cat := s.snap.Load(); cat != nil {
		articles = cat.Len()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"articles": articles,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
