package poster

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/jonathan/poster-studio/internal/types"
)

// documentTemplate is static; a parse failure is a programming error, so
// Must is the right call here.
var documentTemplate = template.Must(template.New("poster").Parse(posterDocument))

// placeholderDocument stands in when the caller has no posting or style yet.
// Renderers run in UI contexts where an error would blank the page, so a
// degraded-but-valid document is always returned instead.
const placeholderDocument = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Job Poster</title>
<style>
@page { size: A4; margin: 0; }
body { margin: 0; font-family: sans-serif; -webkit-print-color-adjust: exact; print-color-adjust: exact; }
.page { width: 210mm; height: 297mm; display: flex; align-items: center; justify-content: center; color: #888888; }
</style>
</head>
<body>
<div class="page">Loading...</div>
</body>
</html>
`

// Style defaults applied when a field is empty. These keep a sparse style
// config renderable; they are not brand choices.
const (
	defaultBackground = "#ffffff"
	defaultText       = "#1f2430"
	defaultPrimary    = "#d97706"
	defaultSecondary  = "#6b7280"
	defaultFontFamily = "Georgia, 'Times New Roman', serif"
)

// documentData is everything the document template interpolates. All user
// text is pre-escaped and all sizes are pre-formatted px strings.
type documentData struct {
	contentView

	Background string
	Text       string
	Primary    string
	Secondary  string
	FontFamily string

	TitleSize        string
	ListingTitleSize string
	DetailSize       string
	ContactSize      string
	CardPadding      string
	SectionGap       string

	Tagline  string
	ShowCTA  bool
	CTAText  string
	DecorCSS string
}

// renderTheme produces the complete document for one theme. It is total:
// every input, including nil posting or style, yields a valid document.
func renderTheme(theme Theme, posting *types.JobPosting, style *types.StyleConfig) string {
	if posting == nil || style == nil {
		return placeholderDocument
	}

	content := normalizePosting(posting)
	plan := ComputeScaling(posting.TotalListingCount(), theme.Constants)

	data := documentData{
		contentView: content,

		Background: orDefault(style.BackgroundColor, defaultBackground),
		Text:       orDefault(style.TextColor, defaultText),
		Primary:    orDefault(style.PrimaryColor, defaultPrimary),
		Secondary:  orDefault(style.SecondaryColor, defaultSecondary),
		FontFamily: orDefault(style.FontFamily, defaultFontFamily),

		TitleSize:        px(plan.TitleSize),
		ListingTitleSize: px(plan.ListingTitleSize),
		DetailSize:       px(plan.DetailSize),
		ContactSize:      px(plan.ContactSize),
		CardPadding:      px(plan.CardPadding),
		SectionGap:       px(plan.SectionGap),

		Tagline:  theme.Tagline,
		ShowCTA:  plan.ShowCTA && theme.CTAText != "",
		CTAText:  theme.CTAText,
		DecorCSS: theme.DecorCSS,
	}

	var buf strings.Builder
	if err := documentTemplate.Execute(&buf, data); err != nil {
		// Cannot happen with a static template over plain structs; degrade
		// anyway rather than propagate.
		return placeholderDocument
	}
	return buf.String()
}

// px formats a derived magnitude as a CSS pixel value
func px(v float64) string {
	return fmt.Sprintf("%gpx", v)
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
