package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sevenpixels/datawalk/pkg/buildinfo"
	"github.com/sevenpixels/datawalk/pkg/errors"
	"github.com/sevenpixels/datawalk/pkg/pipeline"
	"github.com/sevenpixels/datawalk/pkg/render"
	"github.com/sevenpixels/datawalk/pkg/store"
	"github.com/sevenpixels/datawalk/pkg/walk"
)

// walkSummary is the listing form of a walk: metadata without the digit
// payload.
type walkSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Mapping     string `json:"mapping"`
	URL         string `json:"url,omitempty"`
	DigitCount  int    `json:"digit_count"`
}

func (s *Server) handleListWalks(w http.ResponseWriter, r *http.Request) {
	walks, err := s.Store.List(r.Context())
	if err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "list walks"))
		return
	}

	out := make([]walkSummary, 0, len(walks))
	for _, wk := range walks {
		out = append(out, walkSummary{
			ID:          wk.ID,
			Name:        wk.Name,
			Category:    wk.Category,
			Subcategory: wk.Subcategory,
			Mapping:     wk.Mapping,
			URL:         wk.URL,
			DigitCount:  len(wk.Base12),
		})
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"walks": out})
}

func (s *Server) handleGetWalk(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateSourceID(id); err != nil {
		s.respondError(w, r, err)
		return
	}

	wk, err := s.Store.Get(r.Context(), id)
	if stderrors.Is(err, store.ErrNotFound) {
		s.respondError(w, r, errors.New(errors.ErrCodeWalkNotFound, "no walk with id %q", id))
		return
	}
	if err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "get walk"))
		return
	}
	s.respondJSON(w, http.StatusOK, wk)
}

func (s *Server) handleGetPoints(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateSourceID(id); err != nil {
		s.respondError(w, r, err)
		return
	}

	wk, err := s.Store.Get(r.Context(), id)
	if stderrors.Is(err, store.ErrNotFound) {
		s.respondError(w, r, errors.New(errors.ErrCodeWalkNotFound, "no walk with id %q", id))
		return
	}
	if err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "get walk"))
		return
	}

	q := r.URL.Query()

	mappingName := q.Get("mapping")
	if mappingName == "" {
		mappingName = wk.Mapping
	}
	mapping := s.Manifest.Mapping(mappingName)

	maxPoints := 0
	if v := q.Get("max_points"); v != "" {
		maxPoints, err = strconv.Atoi(v)
		if err != nil {
			s.respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "max_points must be an integer"))
			return
		}
	}

	// Digits come from the store; only the walk stage runs here.
	opts := pipeline.Options{
		SourceID:  wk.ID,
		Mapping:   mapping,
		MaxPoints: maxPoints,
		Logger:    s.Logger,
	}
	points, err := s.Runner.Walk(r.Context(), wk.Base12, opts)
	if err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "walk %s", id))
		return
	}

	switch q.Get("format") {
	case "", "json":
		data, err := render.RenderJSON(points,
			render.WithJSONSource(wk.ID, wk.Name),
			render.WithJSONMapping(mappingName),
		)
		if err != nil {
			s.respondError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "render points"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)

	case "svg":
		var svgOpts []render.SVGOption
		if plane := q.Get("plane"); plane != "" {
			svgOpts = append(svgOpts, render.WithPlane(plane))
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(render.RenderSVG(points, svgOpts...))

	default:
		s.respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "format must be json or svg"))
	}
}

func (s *Server) handleListMappings(w http.ResponseWriter, r *http.Request) {
	out := make(map[string][12]uint8)
	for _, name := range walk.Names() {
		out[name] = [12]uint8(walk.Named(name))
	}
	// Manifest tables shadow presets with the same name.
	for name := range s.Manifest.Mappings {
		out[name] = [12]uint8(s.Manifest.Mapping(name))
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"mappings": out})
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{"categories": s.Manifest.Categories})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"version":            buildinfo.Version,
		"commit":             buildinfo.Commit,
		"default_n_digits":   pipeline.DefaultNDigits,
		"default_max_points": pipeline.DefaultMaxPoints,
		"sources":            len(s.Manifest.Sources),
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.Logger.Error("encode response", "err", err)
	}
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed",
			"path", r.URL.Path,
			"err", err,
			"request_id", RequestID(r.Context()))
	}

	var body errorBody
	body.Error.Code = string(code)
	if body.Error.Code == "" {
		body.Error.Code = string(errors.ErrCodeInternal)
	}
	body.Error.Message = errors.UserMessage(err)
	s.respondJSON(w, status, body)
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSource,
		errors.ErrCodeInvalidConverter, errors.ErrCodeInvalidMapping,
		errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeWalkNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeConversion:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
