package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// funcs are the helpers shared by every layout.
var funcs = template.FuncMap{
	"dateRange":  dateRange,
	"levelWidth": levelWidth,
	"join":       strings.Join,
}

// layouts holds every parsed layout, keyed by "<id>.tmpl".
var layouts = template.Must(
	template.New("cv").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"),
)

// Render maps (cv, templateID) to a rendered HTML document. It is a pure
// function of its inputs: the document is never mutated and rendering has
// no side effects. An unrecognized templateID falls back to the default
// layout rather than failing.
func Render(cv *types.CVData, templateID string) (string, error) {
	if cv == nil {
		return "", &RenderError{Message: "nil document"}
	}
	if !IsValid(templateID) {
		templateID = DefaultTemplateID
	}

	var result strings.Builder
	if err := layouts.ExecuteTemplate(&result, templateID+".tmpl", cv); err != nil {
		return "", &RenderError{
			Message: fmt.Sprintf("failed to execute layout %q", templateID),
			Cause:   err,
		}
	}
	return result.String(), nil
}

// dateRange formats a start/end date pair for display. Current positions
// always read "Present" regardless of the stored end date, and missing
// pieces never leave a dangling separator.
func dateRange(start, end string, current bool) string {
	if current {
		end = types.PresentLabel
	}
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	default:
		return start + " - " + end
	}
}

// levelWidth converts a 1-5 skill level into the rendered bar width.
func levelWidth(level int) string {
	return fmt.Sprintf("%d%%", types.ClampLevel(level)*20)
}
