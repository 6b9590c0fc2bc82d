package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/validation"
)

// ---------------------------------------------------------------------
// Validation and Rendering Handlers
// ---------------------------------------------------------------------

// RenderRequest is a stateless render: a full document plus a template id.
type RenderRequest struct {
	CV       *types.CVData `json:"cv"`
	Template string        `json:"template"`
}

func (s *Server) handleValidateSession(w http.ResponseWriter, r *http.Request) {
	_, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	report := validation.CheckDocument(sess.Snapshot())
	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleRenderSession(w http.ResponseWriter, r *http.Request) {
	_, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	templateID := r.URL.Query().Get("template")
	if templateID == "" {
		templateID = s.defaultTemplate
	}

	s.renderHTML(w, sess.Snapshot(), templateID)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CV == nil {
		s.errorResponse(w, http.StatusBadRequest, "cv is required")
		return
	}

	templateID := req.Template
	if templateID == "" {
		templateID = s.defaultTemplate
	}

	s.renderHTML(w, req.CV, templateID)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": rendering.Catalog(),
		"default":   s.defaultTemplate,
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := schemas.ValidateCVData(body); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			s.jsonResponse(w, HTTPStatus(err), map[string]any{
				"valid":  false,
				"errors": validationErr.Errors,
			})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"valid": true})
}

// renderHTML renders cv with templateID and writes the document as HTML.
// Unknown template ids fall back inside the renderer.
func (s *Server) renderHTML(w http.ResponseWriter, cv *types.CVData, templateID string) {
	html, err := rendering.Render(cv, templateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Render failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
