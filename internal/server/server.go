// Package server provides the HTTP REST API for the CV builder.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/suggestions"
)

// Server represents the HTTP server
type Server struct {
	httpServer      *http.Server
	sessions        *SessionStore
	suggester       suggestions.Client
	suggestGroup    singleflight.Group
	defaultTemplate string
}

// Config holds server configuration
type Config struct {
	Port            int
	Suggestions     *suggestions.Config
	DefaultTemplate string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	defaultTemplate := cfg.DefaultTemplate
	if defaultTemplate == "" {
		defaultTemplate = rendering.DefaultTemplateID
	}
	if !rendering.IsValid(defaultTemplate) {
		return nil, fmt.Errorf("unknown default template %q", defaultTemplate)
	}

	s := &Server{
		sessions:        NewSessionStore(),
		defaultTemplate: defaultTemplate,
	}

	// The suggestion client is optional: without an API key the endpoint
	// degrades to 503 instead of refusing to start.
	client, err := suggestions.NewClient(cfg.Suggestions)
	switch {
	case errors.Is(err, suggestions.ErrUnavailable):
		log.Println("Suggestions disabled: no API key configured")
	case err != nil:
		return nil, fmt.Errorf("failed to create suggestion client: %w", err)
	default:
		s.suggester = client
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Session endpoints
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("PUT /sessions/{id}/personal-details", s.handleUpdatePersonalDetails)

	// List section endpoints (experience, education, projects)
	mux.HandleFunc("POST /sessions/{id}/{section}", s.handleAddItem)
	mux.HandleFunc("PUT /sessions/{id}/{section}/{index}", s.handleUpdateItem)
	mux.HandleFunc("DELETE /sessions/{id}/{section}/{index}", s.handleRemoveItem)
	mux.HandleFunc("POST /sessions/{id}/{section}/{index}/move", s.handleMoveItem)

	// Skill endpoints. Literal segments take precedence over the {section}
	// wildcards above in Go 1.22+ ServeMux precedence rules.
	mux.HandleFunc("POST /sessions/{id}/skills/categories", s.handleAddCategory)
	mux.HandleFunc("DELETE /sessions/{id}/skills/categories", s.handleRemoveCategory)
	mux.HandleFunc("PUT /sessions/{id}/skills/categories/active", s.handleSelectCategory)
	mux.HandleFunc("POST /sessions/{id}/skills", s.handleAddSkill)
	mux.HandleFunc("DELETE /sessions/{id}/skills/{index}", s.handleRemoveSkill)
	mux.HandleFunc("PUT /sessions/{id}/skills/{index}/level", s.handleSetSkillLevel)

	// Validation and rendering
	mux.HandleFunc("GET /sessions/{id}/validate", s.handleValidateSession)
	mux.HandleFunc("GET /sessions/{id}/render", s.handleRenderSession)
	mux.HandleFunc("POST /render", s.handleRender)
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("POST /validate", s.handleValidate)

	// Suggestions
	mux.HandleFunc("POST /suggestions", s.handleSuggestions)
	mux.HandleFunc("POST /sessions/{id}/suggestions", s.handleSessionSuggestions)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Suggestion requests wait on the provider
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
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

	if s.suggester != nil {
		_ = s.suggester.Close()
	}

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
