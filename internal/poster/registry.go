package poster

import (
	"sort"

	"github.com/jonathan/poster-studio/internal/types"
)

// TemplateDescriptor identifies one registered poster design. The registry
// exclusively owns the id-to-theme mapping; themes do not know their own id.
type TemplateDescriptor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultTemplateID is the fallback design used for unknown template ids
const DefaultTemplateID = "template-1"

var themeRegistry = map[string]Theme{
	"template-1": classicTheme,
	"template-2": gradientTheme,
	"template-3": modernTheme,
	"template-4": boldTheme,
	"template-5": minimalTheme,
}

func init() {
	// A registry without its default is a deployment misconfiguration, not a
	// per-render condition.
	if _, ok := themeRegistry[DefaultTemplateID]; !ok {
		panic("poster: default template missing from registry")
	}
}

// Render dispatches to the theme registered under templateID and returns the
// finished document. Unknown ids fall back to the default template; nil
// posting or style yields the placeholder document. Render never fails for
// data-shape problems.
func Render(templateID string, posting *types.JobPosting, style *types.StyleConfig) string {
	theme, ok := themeRegistry[templateID]
	if !ok {
		theme = themeRegistry[DefaultTemplateID]
	}
	return renderTheme(theme, posting, style)
}

// HasTemplate reports whether an id is registered
func HasTemplate(id string) bool {
	_, ok := themeRegistry[id]
	return ok
}

// Templates returns the registered designs sorted by id
func Templates() []TemplateDescriptor {
	out := make([]TemplateDescriptor, 0, len(themeRegistry))
	for id, theme := range themeRegistry {
		out = append(out, TemplateDescriptor{ID: id, Name: theme.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
