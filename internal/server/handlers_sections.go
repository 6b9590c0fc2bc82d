package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/cv-builder/internal/editor"
)

// ---------------------------------------------------------------------
// List Section Handlers (experience, education, projects)
// ---------------------------------------------------------------------

const (
	sectionExperience = "experience"
	sectionEducation  = "education"
	sectionProjects   = "projects"
)

// MoveRequest is the body of a move endpoint.
type MoveRequest struct {
	To int `json:"to"`
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	switch r.PathValue("section") {
	case sectionExperience:
		sess.AddExperience()
	case sectionEducation:
		sess.AddEducation()
	case sectionProjects:
		sess.AddProject()
	default:
		s.unknownSection(w, r)
		return
	}

	s.sessionResponse(w, http.StatusCreated, id, sess)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	index, ok := s.index(w, r)
	if !ok {
		return
	}

	// Out-of-range updates are no-ops: the document is returned unchanged.
	switch r.PathValue("section") {
	case sectionExperience:
		var patch editor.ExperiencePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		sess.UpdateExperience(index, patch)
	case sectionEducation:
		var patch editor.EducationPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		sess.UpdateEducation(index, patch)
	case sectionProjects:
		var patch editor.ProjectPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		sess.UpdateProject(index, patch)
	default:
		s.unknownSection(w, r)
		return
	}

	s.sessionResponse(w, http.StatusOK, id, sess)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	index, ok := s.index(w, r)
	if !ok {
		return
	}

	switch r.PathValue("section") {
	case sectionExperience:
		sess.RemoveExperience(index)
	case sectionEducation:
		sess.RemoveEducation(index)
	case sectionProjects:
		sess.RemoveProject(index)
	default:
		s.unknownSection(w, r)
		return
	}

	s.sessionResponse(w, http.StatusOK, id, sess)
}

func (s *Server) handleMoveItem(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	index, ok := s.index(w, r)
	if !ok {
		return
	}

	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch r.PathValue("section") {
	case sectionExperience:
		sess.MoveExperience(index, req.To)
	case sectionEducation:
		sess.MoveEducation(index, req.To)
	case sectionProjects:
		sess.MoveProject(index, req.To)
	default:
		s.unknownSection(w, r)
		return
	}

	s.sessionResponse(w, http.StatusOK, id, sess)
}

// index parses the {index} path value. A non-numeric index is a malformed
// request, unlike an out-of-range one, which the editor treats as a no-op.
func (s *Server) index(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return 0, false
	}
	return index, true
}

func (s *Server) unknownSection(w http.ResponseWriter, r *http.Request) {
	err := &ErrUnknownSection{Section: r.PathValue("section")}
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
