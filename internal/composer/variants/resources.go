package variants

import (
	"html/template"
	"strings"

	"github.com/iis-mfg/precision-site/internal/composer"
)

var resourcesTmpl = template.Must(template.New("resources").Parse(`<section class="resources">
{{- if .Title}}
  <h2 class="resources__title">{{.Title}}</h2>
{{- end}}
{{- if .Description}}
  <p class="resources__description">{{.Description}}</p>
{{- end}}
  <ul class="resources__list">
{{- range .Items}}
    <li class="resource-card">
{{- if .Category}}
      <span class="resource-card__category">{{.Category}}</span>
{{- end}}
      <a class="resource-card__link" href="{{.Href}}">{{.Title}}</a>
    </li>
{{- end}}
  </ul>
{{- if .Buttons}}
  <div class="resources__cta">
{{- range .Buttons}}
    <a class="button button--{{.Variant}}" href="{{.Href}}">{{.Label}}</a>
{{- end}}
  </div>
{{- end}}
</section>
`))

type resourceItem struct {
	Title    string
	Category string
	Href     string
}

type resourcesData struct {
	Title       string
	Description string
	Items       []resourceItem
	Buttons     []Button
}

// Resources renders the technical-resources listing.
type Resources struct{}

func (Resources) Variant() string { return "resources" }

func (Resources) Defaults() composer.Fields {
	return composer.Fields{"title": "Technical Resources"}
}

// Suppress hides the listing when no resources are present.
func (Resources) Suppress(fields composer.Fields) bool {
	return len(fields.Slice("resources")) == 0
}

func (Resources) Render(fields composer.Fields) (string, error) {
	data := resourcesData{
		Title:       fields.String("title"),
		Description: fields.String("description"),
	}
	for _, item := range fields.Maps("resources") {
		title := item.TrimmedString("title")
		href := item.TrimmedString("href")
		if title == "" || href == "" {
			continue
		}
		data.Items = append(data.Items, resourceItem{
			Title:    title,
			Category: item.String("category"),
			Href:     href,
		})
	}
	if cta := fields.Map("cta"); cta != nil {
		data.Buttons = parseButtons(cta.Maps("buttons"))
	}

	var sb strings.Builder
	if err := resourcesTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
