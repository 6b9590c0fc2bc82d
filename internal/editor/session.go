package editor

import (
	"sync"

	"github.com/jonathan/cv-builder/internal/types"
)

// NoSelection marks an expanded index or active category that points at
// nothing.
const NoSelection = -1

// ViewState is transient UI state kept alongside, not inside, the document:
// which item of each list section is expanded for editing, and which skill
// category is active. It is never serialized with CVData.
type ViewState struct {
	ExpandedExperience int `json:"expandedExperience"`
	ExpandedEducation  int `json:"expandedEducation"`
	ExpandedProject    int `json:"expandedProject"`
	ActiveCategory     int `json:"activeCategory"`
}

// Session owns one CV document for the duration of an editing session.
// All operations are serialized by the session mutex; the document is a
// single-writer structure by construction.
type Session struct {
	mu   sync.Mutex
	cv   *types.CVData
	view ViewState
}

// NewSession creates a session seeded with the default sample document.
func NewSession() *Session {
	return NewSessionWith(types.DefaultCV())
}

// NewSessionWith creates a session over an existing document. The session
// takes ownership of cv.
func NewSessionWith(cv *types.CVData) *Session {
	s := &Session{cv: cv}
	s.view = ViewState{
		ExpandedExperience: NoSelection,
		ExpandedEducation:  NoSelection,
		ExpandedProject:    NoSelection,
		ActiveCategory:     NoSelection,
	}
	if len(cv.Skills) > 0 {
		s.view.ActiveCategory = 0
	}
	return s
}

// Snapshot returns a deep copy of the current document. Readers such as
// the renderer and the suggestion gateway work on snapshots so that
// continued editing never races their reads.
func (s *Session) Snapshot() *types.CVData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cv.Clone()
}

// View returns a copy of the transient view state.
func (s *Session) View() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// UpdatePersonalDetails merges the set fields of the patch into the
// personal-details record. Invalid values are still written; validation is
// advisory and the live preview always reflects current input.
func (s *Session) UpdatePersonalDetails(patch PersonalDetailsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.apply(&s.cv.PersonalDetails)
}

// moveIndex reports where a selection index lands after the item at from
// moves to to. The selected logical item stays selected.
func moveIndex(selected, from, to int) int {
	switch {
	case selected == NoSelection:
		return NoSelection
	case selected == from:
		return to
	case from < selected && to >= selected:
		return selected - 1
	case from > selected && to <= selected:
		return selected + 1
	default:
		return selected
	}
}

// removeIndex reports where a selection index lands after the item at
// removed is deleted. Removing the selected item clears the selection;
// removing an earlier item shifts the selection down by one.
func removeIndex(selected, removed int) int {
	switch {
	case selected == NoSelection || selected == removed:
		return NoSelection
	case removed < selected:
		return selected - 1
	default:
		return selected
	}
}

// moveItem reinserts the item at from at position to, preserving the
// relative order of all other items. It reports false, leaving items
// untouched, when either index is out of [0, len).
func moveItem[T any](items []T, from, to int) bool {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return false
	}
	if from == to {
		return true
	}
	item := items[from]
	if from < to {
		copy(items[from:to], items[from+1:to+1])
	} else {
		copy(items[to+1:from+1], items[to:from])
	}
	items[to] = item
	return true
}
