package variants

import (
	"html/template"
	"strings"

	"github.com/iis-mfg/precision-site/internal/composer"
)

var ctaTmpl = template.Must(template.New("cta").Parse(`<section class="cta">
  <h2 class="cta__title">{{.Title}}</h2>
{{- if .Subtitle}}
  <p class="cta__subtitle">{{.Subtitle}}</p>
{{- end}}
{{- if .Buttons}}
  <div class="cta__buttons">
{{- range .Buttons}}
    <a class="button button--{{.Variant}}" href="{{.Href}}">{{.Label}}</a>
{{- end}}
  </div>
{{- end}}
</section>
`))

type ctaData struct {
	Title    string
	Subtitle string
	Buttons  []Button
}

// CTA renders the closing call-to-action band.
type CTA struct{}

// Variant implements composer.Renderer.
func (CTA) Variant() string { return "cta" }

// Defaults implements composer.Renderer.
func (CTA) Defaults() composer.Fields {
	return composer.Fields{
		"title":    "Start Your Precision Manufacturing Project",
		"subtitle": `From prototype to production, we deliver AS9100D-certified precision components with tolerances to ±0.0001" for aerospace, defense, and medical applications.`,
		"buttons": []any{
			map[string]any{"text": "Get Quote", "href": "/contact", "variant": "primary"},
			map[string]any{"text": "Technical Specifications", "href": "/compliance/supplier-requirements", "variant": "secondary"},
		},
	}
}

// Suppress hides the band only when every field was explicitly blanked.
func (CTA) Suppress(fields composer.Fields) bool {
	if strings.TrimSpace(fields.String("title")) != "" {
		return false
	}
	if strings.TrimSpace(fields.String("subtitle")) != "" {
		return false
	}
	return len(fields.Slice("buttons")) == 0
}

// Render implements composer.Renderer.
func (CTA) Render(fields composer.Fields) (string, error) {
	data := ctaData{
		Title:    fields.String("title"),
		Subtitle: fields.String("subtitle"),
		Buttons:  parseButtons(fields.Maps("buttons")),
	}

	var sb strings.Builder
	if err := ctaTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
