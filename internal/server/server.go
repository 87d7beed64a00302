// Package server provides the HTTP REST API for the poster studio.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/poster-studio/internal/db"
	"github.com/jonathan/poster-studio/internal/export"
	"github.com/jonathan/poster-studio/internal/poster"
	"github.com/jonathan/poster-studio/internal/server/ratelimit"
)

// Rasterizer converts rendered documents into binary artifacts. Satisfied by
// *export.Rasterizer; tests substitute a fake.
type Rasterizer interface {
	PDF(ctx context.Context, html string) ([]byte, error)
	PNG(ctx context.Context, html string, widthPx int) ([]byte, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	rasterizer  Rasterizer
	rateLimiter *ratelimit.Limiter
	validate    *validator.Validate

	defaultTemplate string
	viewportWidth   int
}

// Config holds server configuration
type Config struct {
	Port            int
	DatabaseURL     string
	ChromePath      string
	DefaultTemplate string
	ViewportWidth   int
	ExportTimeout   time.Duration
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	defaultTemplate := cfg.DefaultTemplate
	if defaultTemplate == "" {
		defaultTemplate = poster.DefaultTemplateID
	}

	s := &Server{
		db:              database,
		rasterizer:      export.NewRasterizer(cfg.ChromePath, cfg.ExportTimeout),
		rateLimiter:     ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		validate:        validator.New(),
		defaultTemplate: defaultTemplate,
		viewportWidth:   cfg.ViewportWidth,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // rasterization can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Rendering endpoints
	mux.HandleFunc("POST /render", s.handleRender)
	mux.HandleFunc("POST /preview", s.handlePreview)
	mux.HandleFunc("GET /templates", s.handleListTemplates)

	// Stateless export endpoints
	mux.HandleFunc("POST /export/pdf", s.handleExportPDF)
	mux.HandleFunc("POST /export/png", s.handleExportPNG)

	// Poster CRUD endpoints
	mux.HandleFunc("POST /posters", s.handleCreatePoster)
	mux.HandleFunc("GET /posters", s.handleListPosters)
	mux.HandleFunc("GET /posters/{id}", s.handleGetPoster)
	mux.HandleFunc("PUT /posters/{id}", s.handleUpdatePoster)
	mux.HandleFunc("DELETE /posters/{id}", s.handleDeletePoster)

	// Stored-poster rendering and export history
	mux.HandleFunc("GET /posters/{id}/render", s.handleRenderPoster)
	mux.HandleFunc("POST /posters/{id}/export", s.handleExportPoster)
	mux.HandleFunc("GET /posters/{id}/exports", s.handleListPosterExports)

	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path)
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
		}

		if !allowed {
			retryAfter := int(time.Until(info.ResetTime).Seconds())
			if retryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			}
			log.Printf("[rate-limit] limit exceeded for %s on %s", clientID, r.URL.Path)
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For handling belongs to a
// trusted proxy layer in front of this server.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// parseQueryInt parses an integer query parameter with a default and an
// optional maximum (0 means no cap)
func parseQueryInt(r *http.Request, name string, def, max int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	if max > 0 && v > max {
		return max
	}
	return v
}
