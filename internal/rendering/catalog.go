package rendering

// TemplateInfo describes one layout in the template catalog.
type TemplateInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Category    string `json:"category"`
}

// DefaultTemplateID is the layout used when an unknown template identifier
// is requested.
const DefaultTemplateID = "professional"

// catalog lists every layout in display order. All layouts accept the
// identical CVData shape; switching templates never loses or transforms
// the underlying data.
var catalog = []TemplateInfo{
	{
		ID:          "professional",
		Name:        "Professional",
		Description: "A clean and traditional template ideal for corporate jobs and formal industries.",
		Color:       "#2563eb",
		Category:    "Business",
	},
	{
		ID:          "modern",
		Name:        "Modern",
		Description: "A contemporary design with a two-column layout, perfect for tech and creative roles.",
		Color:       "#0891b2",
		Category:    "Technology",
	},
	{
		ID:          "creative",
		Name:        "Creative",
		Description: "A bold and distinctive template with unique styling for design and marketing positions.",
		Color:       "#d97706",
		Category:    "Creative",
	},
	{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "A clean, minimalist design that puts your content front and center.",
		Color:       "#4b5563",
		Category:    "General",
	},
	{
		ID:          "executive",
		Name:        "Executive",
		Description: "An elegant template designed for senior management and executive positions.",
		Color:       "#1e293b",
		Category:    "Business",
	},
	{
		ID:          "startup",
		Name:        "Startup",
		Description: "A dynamic template that showcases innovation and entrepreneurial spirit.",
		Color:       "#6366f1",
		Category:    "Technology",
	},
	{
		ID:          "academic",
		Name:        "Academic",
		Description: "Perfect for researchers, professors, and academic professionals.",
		Color:       "#7c3aed",
		Category:    "Education",
	},
	{
		ID:          "portfolio",
		Name:        "Portfolio",
		Description: "Showcase your work with this visually appealing template.",
		Color:       "#ec4899",
		Category:    "Creative",
	},
}

// Catalog returns the template catalog in display order.
func Catalog() []TemplateInfo {
	out := make([]TemplateInfo, len(catalog))
	copy(out, catalog)
	return out
}

// IsValid reports whether id names a known layout.
func IsValid(id string) bool {
	for _, info := range catalog {
		if info.ID == id {
			return true
		}
	}
	return false
}
