package editor

import (
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

// Skills editor: an ordered list of categories, each owning an ordered
// list of skills. Skill operations are scoped to the active category; the
// active selection lives in view state and never points past the end of
// the list.

// AddCategory appends a category with an empty skill list and makes it
// active. Blank names (after trimming) are a no-op.
func (s *Session) AddCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cv.Skills = append(s.cv.Skills, types.SkillCategory{
		ID:     NewID(),
		Name:   name,
		Skills: []types.Skill{},
	})
	s.view.ActiveCategory = len(s.cv.Skills) - 1
	return true
}

// RemoveCategory removes the active category. The selection falls back to
// the first remaining category, or to none when the list becomes empty.
func (s *Session) RemoveCategory() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.view.ActiveCategory
	if i < 0 || i >= len(s.cv.Skills) {
		return false
	}
	s.cv.Skills = append(s.cv.Skills[:i], s.cv.Skills[i+1:]...)
	if len(s.cv.Skills) == 0 {
		s.view.ActiveCategory = NoSelection
	} else {
		s.view.ActiveCategory = 0
	}
	return true
}

// SelectCategory makes the category at index i active.
func (s *Session) SelectCategory(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.cv.Skills) {
		return false
	}
	s.view.ActiveCategory = i
	return true
}

// MoveCategory reorders the category at from to position to. The active
// selection follows the moved category.
func (s *Session) MoveCategory(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !moveItem(s.cv.Skills, from, to) {
		return false
	}
	s.view.ActiveCategory = moveIndex(s.view.ActiveCategory, from, to)
	return true
}

// AddSkill appends a skill with the default level to the active category.
// No-op when no category is active or the name is blank after trimming.
func (s *Session) AddSkill(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cat := s.activeCategory()
	if cat == nil {
		return false
	}
	cat.Skills = append(cat.Skills, types.Skill{
		ID:    NewID(),
		Name:  name,
		Level: types.DefaultSkillLevel,
	})
	return true
}

// RemoveSkill removes the skill at index i from the active category.
func (s *Session) RemoveSkill(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat := s.activeCategory()
	if cat == nil || i < 0 || i >= len(cat.Skills) {
		return false
	}
	cat.Skills = append(cat.Skills[:i], cat.Skills[i+1:]...)
	return true
}

// SetSkillLevel sets the level of the skill at index i in the active
// category, clamped to the valid 1-5 range.
func (s *Session) SetSkillLevel(i, level int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat := s.activeCategory()
	if cat == nil || i < 0 || i >= len(cat.Skills) {
		return false
	}
	cat.Skills[i].Level = types.ClampLevel(level)
	return true
}

// MoveSkill reorders the skill at from to position to within the active
// category.
func (s *Session) MoveSkill(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat := s.activeCategory()
	if cat == nil {
		return false
	}
	return moveItem(cat.Skills, from, to)
}

// activeCategory returns the active category, or nil when the selection
// points at nothing. Callers must hold s.mu.
func (s *Session) activeCategory() *types.SkillCategory {
	i := s.view.ActiveCategory
	if i < 0 || i >= len(s.cv.Skills) {
		return nil
	}
	return &s.cv.Skills[i]
}
