package variants

import (
	"html/template"
	"strings"

	"github.com/iis-mfg/precision-site/internal/composer"
)

var statsTmpl = template.Must(template.New("stats").Parse(`<section class="stats">
  <header class="stats__header">
    <p class="stats__subtitle">{{.Subtitle}}</p>
    <h2 class="stats__title">{{.Title}}</h2>
  </header>
  <dl class="stats__grid">
{{- range .Items}}
    <div class="stats__item"{{if .IconName}} data-icon="{{.IconName}}"{{end}}>
      <dt class="stats__label">{{.Label}}</dt>
      <dd class="stats__value">{{.Value}}</dd>
{{- if .Description}}
      <dd class="stats__description">{{.Description}}</dd>
{{- end}}
    </div>
{{- end}}
  </dl>
</section>
`))

type statItem struct {
	Value       string
	Label       string
	Description string
	IconName    string
}

type statsData struct {
	Title    string
	Subtitle string
	Items    []statItem
}

// Stats renders the headline-metrics section.
type Stats struct{}

// Variant implements composer.Renderer.
func (Stats) Variant() string { return "stats" }

// Defaults implements composer.Renderer.
func (Stats) Defaults() composer.Fields {
	return composer.Fields{
		"title":    "Manufacturing Excellence",
		"subtitle": "Performance Metrics",
	}
}

// Suppress hides the section when there are no statistics to show, or when
// an editor explicitly blanked the title or subtitle.
func (Stats) Suppress(fields composer.Fields) bool {
	if len(fields.Slice("items")) == 0 {
		return true
	}
	return strings.TrimSpace(fields.String("title")) == "" || strings.TrimSpace(fields.String("subtitle")) == ""
}

// Render implements composer.Renderer.
func (Stats) Render(fields composer.Fields) (string, error) {
	data := statsData{
		Title:    fields.String("title"),
		Subtitle: fields.String("subtitle"),
	}
	for _, item := range fields.Maps("items") {
		data.Items = append(data.Items, statItem{
			Value:       item.String("value"),
			Label:       item.String("label"),
			Description: item.String("description"),
			IconName:    item.TrimmedString("iconName"),
		})
	}

	var sb strings.Builder
	if err := statsTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
