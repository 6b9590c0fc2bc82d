package editor

import "github.com/jonathan/cv-builder/internal/types"

// List editor operations for the experience, education, and projects
// sections. Each Add appends an item with empty fields and a fresh ID and
// marks it expanded. Remove, Update, and Move with out-of-range indices
// are no-ops; the document never enters a partially-updated state from a
// bad index.

// AddExperience appends an empty experience entry and expands it.
func (s *Session) AddExperience() types.Experience {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := types.Experience{ID: NewID()}
	s.cv.Experience = append(s.cv.Experience, exp)
	s.view.ExpandedExperience = len(s.cv.Experience) - 1
	return exp
}

// UpdateExperience merges the patch into the entry at index i.
func (s *Session) UpdateExperience(i int, patch ExperiencePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.cv.Experience) {
		return false
	}
	patch.apply(&s.cv.Experience[i])
	return true
}

// RemoveExperience deletes the entry at index i.
func (s *Session) RemoveExperience(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.cv.Experience) {
		return false
	}
	s.cv.Experience = append(s.cv.Experience[:i], s.cv.Experience[i+1:]...)
	s.view.ExpandedExperience = removeIndex(s.view.ExpandedExperience, i)
	return true
}

// MoveExperience reorders the entry at from to position to.
func (s *Session) MoveExperience(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !moveItem(s.cv.Experience, from, to) {
		return false
	}
	s.view.ExpandedExperience = moveIndex(s.view.ExpandedExperience, from, to)
	return true
}

// AddEducation appends an empty education entry and expands it.
func (s *Session) AddEducation() types.Education {
	s.mu.Lock()
	defer s.mu.Unlock()
	edu := types.Education{ID: NewID()}
	s.cv.Education = append(s.cv.Education, edu)
	s.view.ExpandedEducation = len(s.cv.Education) - 1
	return edu
}

// UpdateEducation merges the patch into the entry at index i.
func (s *Session) UpdateEducation(i int, patch EducationPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.cv.Education) {
		return false
	}
	patch.apply(&s.cv.Education[i])
	return true
}

// RemoveEducation deletes the entry at index i.
func (s *Session) RemoveEducation(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.cv.Education) {
		return false
	}
	s.cv.Education = append(s.cv.Education[:i], s.cv.Education[i+1:]...)
	s.view.ExpandedEducation = removeIndex(s.view.ExpandedEducation, i)
	return true
}

// MoveEducation reorders the entry at from to position to.
func (s *Session) MoveEducation(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !moveItem(s.cv.Education, from, to) {
		return false
	}
	s.view.ExpandedEducation = moveIndex(s.view.ExpandedEducation, from, to)
	return true
}

// AddProject appends an empty project entry and expands it.
func (s *Session) AddProject() types.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	proj := types.Project{ID: NewID(), Skills: []string{}}
	s.cv.Projects = append(s.cv.Projects, proj)
	s.view.ExpandedProject = len(s.cv.Projects) - 1
	return proj
}

// UpdateProject merges the patch into the entry at index i.
func (s *Session) UpdateProject(i int, patch ProjectPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.cv.Projects) {
		return false
	}
	patch.apply(&s.cv.Projects[i])
	return true
}

// RemoveProject deletes the entry at index i.
func (s *Session) RemoveProject(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.cv.Projects) {
		return false
	}
	s.cv.Projects = append(s.cv.Projects[:i], s.cv.Projects[i+1:]...)
	s.view.ExpandedProject = removeIndex(s.view.ExpandedProject, i)
	return true
}

// MoveProject reorders the entry at from to position to.
func (s *Session) MoveProject(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !moveItem(s.cv.Projects, from, to) {
		return false
	}
	s.view.ExpandedProject = moveIndex(s.view.ExpandedProject, from, to)
	return true
}
