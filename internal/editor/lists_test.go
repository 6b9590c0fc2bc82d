package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/types"
)

func newEmptySession() *Session {
	return NewSessionWith(&types.CVData{})
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestAddExperience_AppendsWithUniqueID(t *testing.T) {
	s := newEmptySession()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		exp := s.AddExperience()
		require.NotEmpty(t, exp.ID)
		assert.False(t, seen[exp.ID], "id %s reused", exp.ID)
		seen[exp.ID] = true

		cv := s.Snapshot()
		assert.Len(t, cv.Experience, i+1)
		// The new item is the one expanded for editing.
		assert.Equal(t, i, s.View().ExpandedExperience)
	}
}

func TestUpdateExperience_MergesOnlySetFields(t *testing.T) {
	s := newEmptySession()
	s.AddExperience()
	s.UpdateExperience(0, ExperiencePatch{
		Company:   strPtr("Acme"),
		Position:  strPtr("Engineer"),
		StartDate: strPtr("Jan 2020"),
		EndDate:   strPtr("Dec 2022"),
	})

	// A patch touching one field leaves the rest alone.
	ok := s.UpdateExperience(0, ExperiencePatch{Location: strPtr("Remote")})
	require.True(t, ok)

	exp := s.Snapshot().Experience[0]
	assert.Equal(t, "Acme", exp.Company)
	assert.Equal(t, "Engineer", exp.Position)
	assert.Equal(t, "Remote", exp.Location)
	assert.Equal(t, "Dec 2022", exp.EndDate)
}

func TestUpdateExperience_CurrentClearsEndDate(t *testing.T) {
	s := newEmptySession()
	s.AddExperience()
	s.UpdateExperience(0, ExperiencePatch{EndDate: strPtr("Dec 2022")})

	s.UpdateExperience(0, ExperiencePatch{Current: boolPtr(true)})

	exp := s.Snapshot().Experience[0]
	assert.True(t, exp.Current)
	assert.Empty(t, exp.EndDate)
	assert.Equal(t, "Present", exp.EffectiveEndDate())
}

func TestUpdateExperience_OutOfRangeIsNoOp(t *testing.T) {
	s := newEmptySession()
	s.AddExperience()
	before := s.Snapshot()

	assert.False(t, s.UpdateExperience(-1, ExperiencePatch{Company: strPtr("x")}))
	assert.False(t, s.UpdateExperience(1, ExperiencePatch{Company: strPtr("x")}))
	assert.Equal(t, before, s.Snapshot())
}

func TestRemoveExperience_PreservesOrderOfOthers(t *testing.T) {
	s := newEmptySession()
	var ids []string
	for i := 0; i < 4; i++ {
		ids = append(ids, s.AddExperience().ID)
	}

	require.True(t, s.RemoveExperience(1))

	cv := s.Snapshot()
	require.Len(t, cv.Experience, 3)
	got := []string{cv.Experience[0].ID, cv.Experience[1].ID, cv.Experience[2].ID}
	assert.Equal(t, []string{ids[0], ids[2], ids[3]}, got)
	assert.NotContains(t, got, ids[1])
}

func TestRemoveExperience_ExpandedIndexRules(t *testing.T) {
	tests := []struct {
		name         string
		expanded     int
		remove       int
		wantExpanded int
	}{
		{"removing the expanded item clears expansion", 2, 2, NoSelection},
		{"removing before the expanded item shifts it down", 2, 0, 1},
		{"removing after the expanded item leaves it", 1, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newEmptySession()
			for i := 0; i < 4; i++ {
				s.AddExperience()
			}
			s.view.ExpandedExperience = tt.expanded

			require.True(t, s.RemoveExperience(tt.remove))
			assert.Equal(t, tt.wantExpanded, s.View().ExpandedExperience)
		})
	}
}

func TestMoveExperience_IsPermutation(t *testing.T) {
	s := newEmptySession()
	var ids []string
	for i := 0; i < 4; i++ {
		ids = append(ids, s.AddExperience().ID)
	}

	for from := 0; from < 4; from++ {
		for to := 0; to < 4; to++ {
			require.True(t, s.MoveExperience(from, to), "move %d->%d", from, to)

			cv := s.Snapshot()
			require.Len(t, cv.Experience, 4)
			seen := make(map[string]int)
			for _, exp := range cv.Experience {
				seen[exp.ID]++
			}
			for _, id := range ids {
				assert.Equal(t, 1, seen[id], "move %d->%d lost or duplicated %s", from, to, id)
			}
		}
	}
}

func TestMoveExperience_ReordersAsRemoveThenInsert(t *testing.T) {
	s := newEmptySession()
	var ids []string
	for i := 0; i < 4; i++ {
		ids = append(ids, s.AddExperience().ID)
	}

	require.True(t, s.MoveExperience(0, 2))

	cv := s.Snapshot()
	got := []string{cv.Experience[0].ID, cv.Experience[1].ID, cv.Experience[2].ID, cv.Experience[3].ID}
	assert.Equal(t, []string{ids[1], ids[2], ids[0], ids[3]}, got)
}

func TestMoveExperience_OutOfRangeLeavesListUnchanged(t *testing.T) {
	s := newEmptySession()
	for i := 0; i < 3; i++ {
		s.AddExperience()
	}
	before := s.Snapshot()

	assert.False(t, s.MoveExperience(0, -1))
	assert.False(t, s.MoveExperience(0, 3))
	assert.False(t, s.MoveExperience(-1, 0))
	assert.False(t, s.MoveExperience(3, 0))
	assert.Equal(t, before, s.Snapshot())
}

func TestMoveExperience_ExpandedFollowsMovedItem(t *testing.T) {
	s := newEmptySession()
	for i := 0; i < 4; i++ {
		s.AddExperience()
	}
	s.view.ExpandedExperience = 0

	require.True(t, s.MoveExperience(0, 3))
	assert.Equal(t, 3, s.View().ExpandedExperience)

	// Moving another item across the expanded one keeps the same logical
	// item focused.
	require.True(t, s.MoveExperience(0, 3))
	assert.Equal(t, 2, s.View().ExpandedExperience)
}

func TestMoveExperience_OnEmptyListIsNoOp(t *testing.T) {
	s := newEmptySession()
	assert.False(t, s.MoveExperience(0, 0))
	assert.Empty(t, s.Snapshot().Experience)
}

func TestEducationEditor_Contract(t *testing.T) {
	s := newEmptySession()

	edu := s.AddEducation()
	require.NotEmpty(t, edu.ID)
	assert.Equal(t, 0, s.View().ExpandedEducation)

	require.True(t, s.UpdateEducation(0, EducationPatch{
		Institution: strPtr("UC Berkeley"),
		Degree:      strPtr("Master's"),
		EndDate:     strPtr("2016"),
	}))
	require.True(t, s.UpdateEducation(0, EducationPatch{Current: boolPtr(true)}))

	got := s.Snapshot().Education[0]
	assert.Equal(t, "UC Berkeley", got.Institution)
	assert.Empty(t, got.EndDate)
	assert.Equal(t, "Present", got.EffectiveEndDate())

	s.AddEducation()
	require.True(t, s.MoveEducation(0, 1))
	assert.Equal(t, "UC Berkeley", s.Snapshot().Education[1].Institution)

	require.True(t, s.RemoveEducation(1))
	assert.Len(t, s.Snapshot().Education, 1)
}

func TestProjectEditor_Contract(t *testing.T) {
	s := newEmptySession()

	proj := s.AddProject()
	require.NotEmpty(t, proj.ID)
	assert.Equal(t, 0, s.View().ExpandedProject)

	tags := []string{"Go", "PostgreSQL"}
	require.True(t, s.UpdateProject(0, ProjectPatch{
		Name:   strPtr("CV Builder"),
		Skills: &tags,
		Link:   strPtr("https://example.com/cv-builder"),
	}))

	// The patch copies the tag slice; mutating the caller's slice must not
	// reach the document.
	tags[0] = "Rust"

	got := s.Snapshot().Projects[0]
	assert.Equal(t, "CV Builder", got.Name)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, got.Skills)

	assert.False(t, s.RemoveProject(5))
	require.True(t, s.RemoveProject(0))
	assert.Empty(t, s.Snapshot().Projects)
	assert.Equal(t, NoSelection, s.View().ExpandedProject)
}

func TestUpdatePersonalDetails_Merges(t *testing.T) {
	s := NewSession()

	s.UpdatePersonalDetails(PersonalDetailsPatch{Name: strPtr("Jamie Doe")})
	s.UpdatePersonalDetails(PersonalDetailsPatch{Email: strPtr("not-an-email")})

	pd := s.Snapshot().PersonalDetails
	assert.Equal(t, "Jamie Doe", pd.Name)
	// Invalid values are still written; validation is advisory.
	assert.Equal(t, "not-an-email", pd.Email)
	// Untouched fields survive the merge.
	assert.Equal(t, "Senior Software Engineer", pd.Title)
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
