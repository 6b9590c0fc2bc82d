package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/types"
)

// ---------------------------------------------------------------------
// Session Handlers
// ---------------------------------------------------------------------

// SessionResponse is returned by every endpoint that creates or mutates a
// session: the full document plus the view state, so the live preview
// always reflects current input.
type SessionResponse struct {
	ID       string           `json:"id"`
	Document *types.CVData    `json:"document"`
	View     editor.ViewState `json:"view"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	id, sess := s.sessions.Create()
	s.jsonResponse(w, http.StatusCreated, SessionResponse{
		ID:       id.String(),
		Document: sess.Snapshot(),
		View:     sess.View(),
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.sessionResponse(w, http.StatusOK, id, sess)
}

func (s *Server) handleUpdatePersonalDetails(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var patch editor.PersonalDetailsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess.UpdatePersonalDetails(patch)
	s.sessionResponse(w, http.StatusOK, id, sess)
}

// session resolves the {id} path value to a live session, writing the
// error response itself when the id is malformed or unknown.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (uuid.UUID, *editor.Session, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session ID")
		return uuid.Nil, nil, false
	}

	sess := s.sessions.Get(id)
	if sess == nil {
		err := &ErrSessionNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return uuid.Nil, nil, false
	}

	return id, sess, true
}

// sessionResponse writes the current document and view state for a session.
func (s *Server) sessionResponse(w http.ResponseWriter, status int, id uuid.UUID, sess *editor.Session) {
	s.jsonResponse(w, status, SessionResponse{
		ID:       id.String(),
		Document: sess.Snapshot(),
		View:     sess.View(),
	})
}
