package server

import (
	"errors"
	"net/http"

	"github.com/jiten-dev/jiten/internal/interfaces"
	"github.com/jiten-dev/jiten/internal/services/glossary"
)

// handleTermList handles GET /api/terms with filter and pagination params.
func (s *Server) handleTermList(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	opts := interfaces.ListOptions{
		Category:   q.Get("category"),
		Difficulty: q.Get("difficulty"),
		Search:     q.Get("search"),
		Limit:      intParam(r, "limit", glossary.DefaultLimit),
		Offset:     intParam(r, "offset", 0),
	}

	list, err := s.app.GlossaryService.ListTerms(r.Context(), opts)
	if err != nil {
		s.writeInternalError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, list)
}

// handleTermDetail handles GET /api/terms/{id}.
func (s *Server) handleTermDetail(w http.ResponseWriter, r *http.Request, termID string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	detail, err := s.app.GlossaryService.GetTerm(r.Context(), termID)
	if err != nil {
		if errors.Is(err, glossary.ErrTermNotFound) {
			WriteError(w, http.StatusNotFound, "Term not found")
			return
		}
		s.writeInternalError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, detail)
}

// handleCategories handles GET /api/categories.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	categories, err := s.app.GlossaryService.ListCategories(r.Context())
	if err != nil {
		s.writeInternalError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, categories)
}

// handleStats handles GET /api/stats.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	stats, err := s.app.GlossaryService.Stats(r.Context())
	if err != nil {
		s.writeInternalError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

// handleStatsChart handles GET /api/stats/chart, answering with a PNG.
func (s *Server) handleStatsChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	png, err := s.app.GlossaryService.RenderStatsChart(r.Context())
	if err != nil {
		s.writeInternalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// handleRandom handles GET /api/random with an optional count param.
func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	count := intParam(r, "count", glossary.DefaultRandomCount)
	terms, err := s.app.GlossaryService.RandomTerms(r.Context(), count)
	if err != nil {
		s.writeInternalError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, terms)
}

// writeInternalError answers 500. Outside production the underlying error
// is included to ease debugging; in production the envelope stays opaque.
func (s *Server) writeInternalError(w http.ResponseWriter, err error) {
	s.logger.Error().Err(err).Msg("Handler failed")
	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteErrorDetail(w, http.StatusInternalServerError, "Internal server error", err.Error())
}
