// Package server implements the datawalk HTTP API: walk listings, digit
// and point retrieval, mapping and category metadata, plus health and
// metrics endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sevenpixels/datawalk/pkg/config"
	"github.com/sevenpixels/datawalk/pkg/convert"
	"github.com/sevenpixels/datawalk/pkg/pipeline"
	"github.com/sevenpixels/datawalk/pkg/store"
)

// Server wires the pipeline runner, the walk store and the source
// manifest behind a chi router.
type Server struct {
	Runner   *pipeline.Runner
	Store    store.Store
	Manifest *config.Manifest
	Settings config.Settings
	Logger   *log.Logger

	router chi.Router
}

// New creates a configured server.
func New(runner *pipeline.Runner, st store.Store, manifest *config.Manifest, settings config.Settings, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if manifest == nil {
		manifest = config.Default()
	}

	s := &Server{
		Runner:   runner,
		Store:    st,
		Manifest: manifest,
		Settings: settings,
		Logger:   logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/walks", s.handleListWalks)
		r.Get("/walks/{id}", s.handleGetWalk)
		r.Get("/walks/{id}/points", s.handleGetPoints)
		r.Get("/mappings", s.handleListMappings)
		r.Get("/categories", s.handleListCategories)
		r.Get("/config", s.handleGetConfig)
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/healthz", s.handleHealthz)

	return r
}

// Seed converts every manifest source it can satisfy locally and stores
// the resulting walks. Generated math sources always succeed; file
// sources are skipped unless their data file exists under the data dir.
// A failing source is logged and skipped, never fatal.
func (s *Server) Seed(ctx context.Context) error {
	seeded := 0
	for _, src := range s.Manifest.Sources {
		opts := pipeline.Options{
			SourceID:  src.ID,
			Converter: src.Converter,
			Logger:    s.Logger,
		}
		if !convert.IsGenerated(src.Converter) {
			opts.DataFile = filepath.Join(s.Settings.DataDir, src.ID+dataExt(src.Converter))
		}

		digits, err := s.Runner.Convert(ctx, opts)
		if err != nil {
			s.Logger.Warn("skipping source", "source", src.ID, "err", err)
			continue
		}

		w := store.Walk{
			ID:          src.ID,
			Name:        src.Name,
			Category:    src.Category,
			Subcategory: src.Subcategory,
			Mapping:     src.Mapping,
			URL:         src.URL,
			Base12:      digits,
			UpdatedAt:   time.Now().UTC(),
		}
		if err := s.Store.Put(ctx, w); err != nil {
			return fmt.Errorf("seed %s: %w", src.ID, err)
		}
		seeded++
	}
	s.Logger.Info("seeded walk store", "walks", seeded, "sources", len(s.Manifest.Sources))
	return nil
}

// dataExt maps a file converter to its conventional data file extension.
func dataExt(converter string) string {
	switch converter {
	case pipeline.ConverterDNA:
		return ".fasta"
	case pipeline.ConverterAudio:
		return ".wav"
	case pipeline.ConverterFinance:
		return ".json"
	case pipeline.ConverterCosmos:
		return ".txt.gz"
	}
	return ""
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Settings.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
