package poster

// Theme is a named bundle of scaling constants and decorative chrome defining
// one poster design. All themes share the same document structure and scaling
// algorithm; they differ only in these values.
type Theme struct {
	Name      string
	Constants ScaleConstants

	// Tagline is the hero badge text above the headline
	Tagline string

	// CTAText is the optional call-to-action panel text, dropped for dense
	// posters per Constants.CTAThreshold
	CTAText string

	// DecorCSS is appended to the base stylesheet. This is the one place a
	// theme may hardcode colors, for its own fixed chrome (gradients,
	// ribbons); content colors always come from the style config.
	DecorCSS string
}

// posterDocument is the shared A4 document template. Every theme renders
// through it; all user text arrives pre-escaped from the normalizer and all
// pixel values are precomputed by the scaling calculator.
const posterDocument = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Job Poster</title>
<style>
@page { size: A4; margin: 0; }
* { box-sizing: border-box; -webkit-print-color-adjust: exact; print-color-adjust: exact; }
body { margin: 0; padding: 0; }
.page {
  width: 210mm;
  height: 297mm;
  overflow: hidden;
  display: flex;
  flex-direction: column;
  background: {{.Background}};
  color: {{.Text}};
  font-family: {{.FontFamily}};
}
.hero { padding: {{.SectionGap}} {{.CardPadding}}; text-align: center; }
.hero-badge {
  display: inline-block;
  font-size: {{.DetailSize}};
  letter-spacing: 2px;
  text-transform: uppercase;
  color: {{.Secondary}};
}
.headline { margin: 6px 0 0; font-size: {{.TitleSize}}; font-weight: 700; color: {{.Primary}}; }
.listings { flex: 1; display: flex; flex-direction: column; gap: {{.SectionGap}}; padding: 0 {{.CardPadding}}; }
.listing-card { padding: {{.CardPadding}}; border-left: 4px solid {{.Primary}}; }
.position { margin: 0; font-size: {{.ListingTitleSize}}; color: {{.Text}}; }
.openings { margin: 4px 0 0; font-size: {{.DetailSize}}; }
.openings-count { font-weight: 700; color: {{.Primary}}; }
.experience { margin: 4px 0 0; font-size: {{.DetailSize}}; color: {{.Secondary}}; }
.requirements { margin: 6px 0 0; padding-left: 18px; font-size: {{.DetailSize}}; }
.requirements li { margin: 2px 0; }
.cta { padding: {{.CardPadding}}; text-align: center; font-size: {{.DetailSize}}; color: {{.Secondary}}; }
.contact { padding: {{.CardPadding}}; text-align: center; font-size: {{.ContactSize}}; border-top: 1px solid {{.Secondary}}; }
.contact div { margin: 2px 0; }
{{.DecorCSS}}
</style>
</head>
<body>
<div class="page">
<header class="hero">
<div class="hero-badge">{{.Tagline}}</div>
{{if .Title}}<p class="headline">{{.Title}}</p>{{end}}
</header>
<main class="listings">
{{range .Listings}}<section class="listing-card">
{{if .PositionTitle}}<h2 class="position">{{.PositionTitle}}</h2>{{end}}
<p class="openings"><span class="openings-count">{{.Openings}}</span> <span class="openings-unit">{{.UnitLabel}}</span></p>
{{if .Experience}}<p class="experience">Experience: {{.Experience}}</p>{{end}}
{{if .Requirements}}<ul class="requirements">{{range .Requirements}}<li>{{.}}</li>{{end}}</ul>{{end}}
</section>
{{end}}</main>
{{if .ShowCTA}}<aside class="cta">{{.CTAText}}</aside>{{end}}
{{if .HasContact}}<footer class="contact">
{{if .OrgName}}<div class="contact-name">{{.OrgName}}</div>{{end}}
{{if .OrgAddress}}<div class="contact-location">{{.OrgAddress}}</div>{{end}}
{{if .OrgEmail}}<div class="contact-mail">{{.OrgEmail}}</div>{{end}}
{{if .OrgPhone}}<div class="contact-phone">{{.OrgPhone}}</div>{{end}}
</footer>
{{end}}</div>
</body>
</html>
`
