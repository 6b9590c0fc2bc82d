// Package types provides type definitions for the CV document model shared
// across the editor, renderer, and suggestion gateway.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Level bounds for skills. Levels outside the range are clamped on write.
const (
	MinSkillLevel     = 1
	MaxSkillLevel     = 5
	DefaultSkillLevel = 3
)

// PresentLabel is the display value used for the end date of a position
// or degree that is still ongoing.
const PresentLabel = "Present"

// PersonalDetails is the flat header record of a CV. All fields are plain
// strings; dates and phone numbers are free-form.
type PersonalDetails struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	Summary  string `json:"summary"`
}

// Experience is a single work-history entry. IDs are assigned at creation
// and never reused within a document.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EffectiveEndDate returns the end date as it should be displayed.
// A current position always reads "Present" regardless of the stored value.
func (e Experience) EffectiveEndDate() string {
	if e.Current {
		return PresentLabel
	}
	return e.EndDate
}

// Education is a single education entry; same shape and invariants as
// Experience with institution/degree/field in place of company/position.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EffectiveEndDate returns the end date as it should be displayed.
func (e Education) EffectiveEndDate() string {
	if e.Current {
		return PresentLabel
	}
	return e.EndDate
}

// Skill is a named skill with a 1-5 proficiency level. Level is advisory
// only; it drives the width of the rendered skill bar.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillCategory groups an ordered list of skills under a heading.
// A category with zero skills is a valid transient state.
type SkillCategory struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Skills []Skill `json:"skills"`
}

// Project is a portfolio entry. Skills are free-text tags with no
// cross-reference to SkillCategory.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Link        string   `json:"link"`
	Date        string   `json:"date"`
}

// CVData is the root aggregate: one complete CV document. It is owned by
// exactly one editing session and holds no references to external state.
type CVData struct {
	PersonalDetails PersonalDetails `json:"personalDetails"`
	Experience      []Experience    `json:"experience"`
	Education       []Education     `json:"education"`
	Skills          []SkillCategory `json:"skills"`
	Projects        []Project       `json:"projects"`
}

// Clone returns a deep copy of the document. Snapshots handed to the
// suggestion gateway or renderer must not alias editor-owned slices.
func (cv *CVData) Clone() *CVData {
	out := &CVData{
		PersonalDetails: cv.PersonalDetails,
		Experience:      make([]Experience, len(cv.Experience)),
		Education:       make([]Education, len(cv.Education)),
		Skills:          make([]SkillCategory, len(cv.Skills)),
		Projects:        make([]Project, len(cv.Projects)),
	}
	copy(out.Experience, cv.Experience)
	copy(out.Education, cv.Education)
	for i, cat := range cv.Skills {
		skills := make([]Skill, len(cat.Skills))
		copy(skills, cat.Skills)
		out.Skills[i] = SkillCategory{ID: cat.ID, Name: cat.Name, Skills: skills}
	}
	for i, p := range cv.Projects {
		tags := make([]string, len(p.Skills))
		copy(tags, p.Skills)
		out.Projects[i] = p
		out.Projects[i].Skills = tags
	}
	return out
}

// ClampLevel coerces a skill level into the valid 1-5 range.
func ClampLevel(level int) int {
	if level < MinSkillLevel {
		return MinSkillLevel
	}
	if level > MaxSkillLevel {
		return MaxSkillLevel
	}
	return level
}
