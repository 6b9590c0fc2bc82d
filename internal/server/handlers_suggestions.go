package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/cv-builder/internal/prompts"
	"github.com/jonathan/cv-builder/internal/suggestions"
	"github.com/jonathan/cv-builder/internal/types"
)

// ---------------------------------------------------------------------
// Suggestion Handlers
// ---------------------------------------------------------------------

// SuggestionsResponse carries the advisor text on success.
type SuggestionsResponse struct {
	Suggestions string `json:"suggestions"`
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var cv types.CVData
	if err := json.NewDecoder(r.Body).Decode(&cv); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if s.suggester == nil {
		s.errorResponse(w, HTTPStatus(suggestions.ErrUnavailable),
			prompts.MustGet("suggestions.json", "cv-advisor-unavailable"))
		return
	}

	text, err := s.suggester.RequestSuggestions(r.Context(), &cv)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SuggestionsResponse{Suggestions: text})
}

// handleSessionSuggestions requests suggestions for a session snapshot.
// Concurrent triggers for the same session collapse into one in-flight
// provider request; every caller gets the shared result.
func (s *Server) handleSessionSuggestions(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	if s.suggester == nil {
		s.errorResponse(w, HTTPStatus(suggestions.ErrUnavailable),
			prompts.MustGet("suggestions.json", "cv-advisor-unavailable"))
		return
	}

	result, err, _ := s.suggestGroup.Do(id.String(), func() (any, error) {
		return s.suggester.RequestSuggestions(r.Context(), sess.Snapshot())
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SuggestionsResponse{Suggestions: result.(string)})
}
