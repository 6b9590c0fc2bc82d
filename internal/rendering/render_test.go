package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/types"
)

func TestRender_AllTemplates(t *testing.T) {
	cv := types.DefaultCV()

	for _, info := range Catalog() {
		t.Run(info.ID, func(t *testing.T) {
			html, err := Render(cv, info.ID)
			require.NoError(t, err)
			assert.Contains(t, html, "Alex Johnson")
			assert.Contains(t, html, "Senior Software Engineer")
			assert.Contains(t, html, "Tech Innovations Inc.")
		})
	}
}

func TestRender_UnknownTemplateFallsBackToDefault(t *testing.T) {
	cv := types.DefaultCV()

	fallback, err := Render(cv, "nonexistent-id")
	require.NoError(t, err)

	professional, err := Render(cv, DefaultTemplateID)
	require.NoError(t, err)

	assert.Equal(t, professional, fallback)
}

func TestRender_EmptySectionsRenderNothing(t *testing.T) {
	cv := &types.CVData{
		PersonalDetails: types.PersonalDetails{
			Name:  "Jamie Doe",
			Title: "Engineer",
			Email: "jamie@example.com",
		},
	}

	for _, info := range Catalog() {
		t.Run(info.ID, func(t *testing.T) {
			html, err := Render(cv, info.ID)
			require.NoError(t, err)

			assert.Contains(t, html, "Jamie Doe")
			// No section headers for empty sections.
			assert.NotContains(t, html, "Experience")
			assert.NotContains(t, html, "Education")
			assert.NotContains(t, html, "Skills")
			assert.NotContains(t, html, "Projects")
			assert.NotContains(t, html, "Portfolio")
		})
	}
}

func TestRender_CurrentPositionReadsPresent(t *testing.T) {
	cv := &types.CVData{
		PersonalDetails: types.PersonalDetails{Name: "Jamie Doe"},
		Experience: []types.Experience{
			{
				ID:        "1",
				Company:   "Acme",
				Position:  "Engineer",
				StartDate: "Jan 2020",
				EndDate:   "",
				Current:   true,
			},
		},
	}

	for _, info := range Catalog() {
		t.Run(info.ID, func(t *testing.T) {
			html, err := Render(cv, info.ID)
			require.NoError(t, err)

			assert.Contains(t, html, "Engineer")
			assert.Contains(t, html, "Acme")
			assert.Contains(t, html, "Jan 2020 - Present")
			// No dangling separator from the empty stored end date.
			assert.NotContains(t, html, "Jan 2020 - <")
		})
	}
}

func TestRender_CurrentOverridesStoredEndDate(t *testing.T) {
	cv := &types.CVData{
		Experience: []types.Experience{
			{ID: "1", Company: "Acme", Position: "Engineer", StartDate: "Jan 2020", EndDate: "Dec 2022", Current: true},
		},
	}

	html, err := Render(cv, DefaultTemplateID)
	require.NoError(t, err)
	assert.Contains(t, html, "Jan 2020 - Present")
	assert.NotContains(t, html, "Dec 2022")
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	cv := types.DefaultCV()
	before := cv.Clone()

	_, err := Render(cv, "modern")
	require.NoError(t, err)
	assert.Equal(t, before, cv)
}

func TestRender_NilDocument(t *testing.T) {
	_, err := Render(nil, DefaultTemplateID)
	assert.Error(t, err)
}

func TestRender_EscapesHTMLInFields(t *testing.T) {
	cv := &types.CVData{
		PersonalDetails: types.PersonalDetails{Name: "<script>alert(1)</script>"},
	}

	html, err := Render(cv, DefaultTemplateID)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		current bool
		want    string
	}{
		{"both dates", "Jan 2020", "Dec 2022", false, "Jan 2020 - Dec 2022"},
		{"current overrides end", "Jan 2020", "Dec 2022", true, "Jan 2020 - Present"},
		{"current with empty end", "Jan 2020", "", true, "Jan 2020 - Present"},
		{"only start", "Jan 2020", "", false, "Jan 2020"},
		{"only end", "", "Dec 2022", false, "Dec 2022"},
		{"neither", "", "", false, ""},
		{"current with no start", "", "", true, "Present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dateRange(tt.start, tt.end, tt.current))
		})
	}
}

func TestLevelWidth(t *testing.T) {
	assert.Equal(t, "20%", levelWidth(1))
	assert.Equal(t, "60%", levelWidth(3))
	assert.Equal(t, "100%", levelWidth(5))
	// Out-of-range levels are clamped, never rendered raw.
	assert.Equal(t, "20%", levelWidth(0))
	assert.Equal(t, "100%", levelWidth(9))
}

func TestCatalog(t *testing.T) {
	infos := Catalog()
	require.Len(t, infos, 8)
	assert.Equal(t, "professional", infos[0].ID)

	ids := make(map[string]bool)
	for _, info := range infos {
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
		assert.NotEmpty(t, info.Color)
		assert.NotEmpty(t, info.Category)
		assert.False(t, ids[info.ID])
		ids[info.ID] = true
		assert.True(t, IsValid(info.ID))
	}

	assert.False(t, IsValid("nonexistent-id"))
	assert.False(t, IsValid(""))
}
