package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/jiten-dev/jiten/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)
	mux.HandleFunc("/debug/memstats", s.handleMemstats)

	// Glossary
	mux.HandleFunc("/api/terms/", s.routeTerms)
	mux.HandleFunc("/api/terms", s.handleTermList)
	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/stats/chart", s.handleStatsChart)
	mux.HandleFunc("/api/random", s.handleRandom)

	// Unmatched API paths get a JSON 404 instead of the mux default
	mux.HandleFunc("/api/", s.handleAPINotFound)

	// Static assets
	mux.HandleFunc("/", s.handleRoot)
}

// routeTerms dispatches /api/terms/{id} to the term detail handler.
func (s *Server) routeTerms(w http.ResponseWriter, r *http.Request) {
	termID := strings.TrimPrefix(r.URL.Path, "/api/terms/")
	if termID == "" {
		s.handleTermList(w, r)
		return
	}
	if strings.Contains(termID, "/") {
		s.handleAPINotFound(w, r)
		return
	}
	s.handleTermDetail(w, r, termID)
}

// handleAPINotFound is the catch-all for unmatched /api/* paths.
func (s *Server) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, "API endpoint not found")
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":       s.app.Config.Environment,
		"logging_level":     s.app.Config.Logging.Level,
		"static_dir":        s.app.Config.Server.StaticDir,
		"ratelimit_enabled": s.app.Config.RateLimit.Enabled,
		"ratelimit_rps":     s.app.Config.RateLimit.RPS,
		"ratelimit_burst":   s.app.Config.RateLimit.Burst,
		"terms":             s.app.Catalog.TermCount(),
		"categories":        s.app.Catalog.CategoryCount(),
		"uptime":            time.Since(s.app.StartupTime).Round(time.Second).String(),
	})
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}

func (s *Server) handleMemstats(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"heap_alloc_bytes": m.HeapAlloc,
		"heap_inuse_bytes": m.HeapInuse,
		"sys_bytes":        m.Sys,
		"num_gc":           m.NumGC,
		"heap_alloc_mb":    float64(m.HeapAlloc) / 1024 / 1024,
		"sys_mb":           float64(m.Sys) / 1024 / 1024,
	})
}

// --- Static assets ---

// handleRoot serves static assets from the configured directory. The /api/
// fallback owns API paths; everything else lands here.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}

	dir := s.app.Config.Server.StaticDir
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			s.serveStatic(w, r, dir)
			return
		}
	}

	// No static dir deployed: answer the root with a small service index
	if r.URL.Path != "/" {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"service":    "jiten",
		"version":    common.GetVersion(),
		"terms":      s.app.Catalog.TermCount(),
		"categories": s.app.Catalog.CategoryCount(),
	})
}

// serveStatic resolves the request path inside dir. Unknown paths fall back
// to index.html so client-side routing keeps working after a reload.
func (s *Server) serveStatic(w http.ResponseWriter, r *http.Request, dir string) {
	rel := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if rel == "" {
		rel = "index.html"
	}
	full := filepath.Join(dir, filepath.FromSlash(rel))

	if info, err := os.Stat(full); err != nil || info.IsDir() {
		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			WriteError(w, http.StatusNotFound, "Not found")
			return
		}
		http.ServeFile(w, r, index)
		return
	}
	http.ServeFile(w, r, full)
}
