package editor

import "github.com/jonathan/cv-builder/internal/types"

// Patch types carry partial updates: only non-nil fields are merged into
// the target item. They double as the JSON bodies of the update endpoints.

// PersonalDetailsPatch is a partial update of the personal-details record.
type PersonalDetailsPatch struct {
	Name     *string `json:"name,omitempty"`
	Title    *string `json:"title,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Website  *string `json:"website,omitempty"`
	Summary  *string `json:"summary,omitempty"`
}

func (p PersonalDetailsPatch) apply(d *types.PersonalDetails) {
	setString(&d.Name, p.Name)
	setString(&d.Title, p.Title)
	setString(&d.Email, p.Email)
	setString(&d.Phone, p.Phone)
	setString(&d.Location, p.Location)
	setString(&d.Website, p.Website)
	setString(&d.Summary, p.Summary)
}

// ExperiencePatch is a partial update of one experience entry. Setting
// Current to true clears the stored end date.
type ExperiencePatch struct {
	Company     *string `json:"company,omitempty"`
	Position    *string `json:"position,omitempty"`
	Location    *string `json:"location,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     *bool   `json:"current,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p ExperiencePatch) apply(e *types.Experience) {
	setString(&e.Company, p.Company)
	setString(&e.Position, p.Position)
	setString(&e.Location, p.Location)
	setString(&e.StartDate, p.StartDate)
	setString(&e.EndDate, p.EndDate)
	setString(&e.Description, p.Description)
	if p.Current != nil {
		e.Current = *p.Current
		if e.Current {
			e.EndDate = ""
		}
	}
}

// EducationPatch is a partial update of one education entry. Setting
// Current to true clears the stored end date.
type EducationPatch struct {
	Institution *string `json:"institution,omitempty"`
	Degree      *string `json:"degree,omitempty"`
	Field       *string `json:"field,omitempty"`
	Location    *string `json:"location,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     *bool   `json:"current,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p EducationPatch) apply(e *types.Education) {
	setString(&e.Institution, p.Institution)
	setString(&e.Degree, p.Degree)
	setString(&e.Field, p.Field)
	setString(&e.Location, p.Location)
	setString(&e.StartDate, p.StartDate)
	setString(&e.EndDate, p.EndDate)
	setString(&e.Description, p.Description)
	if p.Current != nil {
		e.Current = *p.Current
		if e.Current {
			e.EndDate = ""
		}
	}
}

// ProjectPatch is a partial update of one project entry.
type ProjectPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Skills      *[]string `json:"skills,omitempty"`
	Link        *string   `json:"link,omitempty"`
	Date        *string   `json:"date,omitempty"`
}

func (p ProjectPatch) apply(pr *types.Project) {
	setString(&pr.Name, p.Name)
	setString(&pr.Description, p.Description)
	setString(&pr.Link, p.Link)
	setString(&pr.Date, p.Date)
	if p.Skills != nil {
		tags := make([]string, len(*p.Skills))
		copy(tags, *p.Skills)
		pr.Skills = tags
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
