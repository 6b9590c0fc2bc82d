package server

import (
	"encoding/json"
	"net/http"
)

// ---------------------------------------------------------------------
// Skill Handlers
// ---------------------------------------------------------------------

// CategoryRequest names a skill category to create.
type CategoryRequest struct {
	Name string `json:"name"`
}

// SkillRequest names a skill to add to the active category.
type SkillRequest struct {
	Name string `json:"name"`
}

// SkillLevelRequest carries a proficiency level for one skill.
type SkillLevelRequest struct {
	Level int `json:"level"`
}

// SelectCategoryRequest picks the active skill category by index.
type SelectCategoryRequest struct {
	Index int `json:"index"`
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Blank names are no-ops.
	sess.AddCategory(req.Name)
	s.sessionResponse(w, http.StatusCreated, id, sess)
}

func (s *Server) handleRemoveCategory(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	sess.RemoveCategory()
	s.sessionResponse(w, http.StatusOK, id, sess)
}

func (s *Server) handleSelectCategory(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req SelectCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess.SelectCategory(req.Index)
	s.sessionResponse(w, http.StatusOK, id, sess)
}

func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess.AddSkill(req.Name)
	s.sessionResponse(w, http.StatusCreated, id, sess)
}

func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	index, ok := s.index(w, r)
	if !ok {
		return
	}

	sess.RemoveSkill(index)
	s.sessionResponse(w, http.StatusOK, id, sess)
}

func (s *Server) handleSetSkillLevel(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	index, ok := s.index(w, r)
	if !ok {
		return
	}

	var req SkillLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess.SetSkillLevel(index, req.Level)
	s.sessionResponse(w, http.StatusOK, id, sess)
}
