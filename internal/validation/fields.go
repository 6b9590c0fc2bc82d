// Package validation provides advisory field-level validation for the CV
// document. Checks flag problems for display; they never block a write or
// stop the live preview from reflecting current input.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-builder/internal/types"
)

// Length bounds per section.
const (
	MinDescriptionLen        = 10
	MaxDescriptionLen        = 1000
	MaxProjectDescriptionLen = 500
	MaxSummaryLen            = 2000
)

var validate = validator.New()

// FieldError flags a single field for inline display.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CheckPersonalDetails validates the personal-details record.
// Name, title, and email are required; email must be well-formed; website,
// when set, must be a well-formed URL or domain; summary is length-bounded.
func CheckPersonalDetails(d types.PersonalDetails) []FieldError {
	var errs []FieldError
	errs = appendRequired(errs, "name", d.Name)
	errs = appendRequired(errs, "title", d.Title)
	if strings.TrimSpace(d.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if validate.Var(d.Email, "email") != nil {
		errs = append(errs, FieldError{Field: "email", Message: "email must be a valid address"})
	}
	if d.Website != "" && !wellFormedURL(d.Website) {
		errs = append(errs, FieldError{Field: "website", Message: "website must be a valid URL"})
	}
	if len(d.Summary) > MaxSummaryLen {
		errs = append(errs, FieldError{
			Field:   "summary",
			Message: fmt.Sprintf("summary must be at most %d characters", MaxSummaryLen),
		})
	}
	return errs
}

// CheckExperience validates one experience entry.
func CheckExperience(e types.Experience) []FieldError {
	var errs []FieldError
	errs = appendRequired(errs, "company", e.Company)
	errs = appendRequired(errs, "position", e.Position)
	errs = appendDescription(errs, e.Description, MaxDescriptionLen)
	return errs
}

// CheckEducation validates one education entry.
func CheckEducation(e types.Education) []FieldError {
	var errs []FieldError
	errs = appendRequired(errs, "institution", e.Institution)
	errs = appendRequired(errs, "degree", e.Degree)
	errs = appendDescription(errs, e.Description, MaxDescriptionLen)
	return errs
}

// CheckProject validates one project entry. The link, when set, must be a
// well-formed URL.
func CheckProject(p types.Project) []FieldError {
	var errs []FieldError
	errs = appendRequired(errs, "name", p.Name)
	errs = appendDescription(errs, p.Description, MaxProjectDescriptionLen)
	if p.Link != "" && !wellFormedURL(p.Link) {
		errs = append(errs, FieldError{Field: "link", Message: "link must be a valid URL"})
	}
	return errs
}

// Report collects advisory errors for a whole document, indexed by item
// position within each list section.
type Report struct {
	PersonalDetails []FieldError   `json:"personalDetails,omitempty"`
	Experience      [][]FieldError `json:"experience,omitempty"`
	Education       [][]FieldError `json:"education,omitempty"`
	Projects        [][]FieldError `json:"projects,omitempty"`
}

// Clean reports whether no field was flagged anywhere in the document.
func (r *Report) Clean() bool {
	if len(r.PersonalDetails) > 0 {
		return false
	}
	for _, errs := range r.Experience {
		if len(errs) > 0 {
			return false
		}
	}
	for _, errs := range r.Education {
		if len(errs) > 0 {
			return false
		}
	}
	for _, errs := range r.Projects {
		if len(errs) > 0 {
			return false
		}
	}
	return true
}

// CheckDocument runs every section check over the document.
func CheckDocument(cv *types.CVData) *Report {
	report := &Report{
		PersonalDetails: CheckPersonalDetails(cv.PersonalDetails),
	}
	for _, e := range cv.Experience {
		report.Experience = append(report.Experience, CheckExperience(e))
	}
	for _, e := range cv.Education {
		report.Education = append(report.Education, CheckEducation(e))
	}
	for _, p := range cv.Projects {
		report.Projects = append(report.Projects, CheckProject(p))
	}
	return report
}

func appendRequired(errs []FieldError, field, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, FieldError{Field: field, Message: field + " is required"})
	}
	return errs
}

// appendDescription bounds a non-empty description. An empty description
// is not flagged; required-ness is a per-field rule, not a length rule.
func appendDescription(errs []FieldError, description string, maxLen int) []FieldError {
	if description == "" {
		return errs
	}
	if len(description) < MinDescriptionLen {
		return append(errs, FieldError{
			Field:   "description",
			Message: fmt.Sprintf("description must be at least %d characters", MinDescriptionLen),
		})
	}
	if len(description) > maxLen {
		return append(errs, FieldError{
			Field:   "description",
			Message: fmt.Sprintf("description must be at most %d characters", maxLen),
		})
	}
	return errs
}

// wellFormedURL accepts full URLs as well as bare domains ("example.dev"),
// which the website field allows.
func wellFormedURL(value string) bool {
	if validate.Var(value, "url") == nil {
		return true
	}
	return validate.Var(value, "fqdn") == nil
}
