package variants

import (
	"html/template"
	"strings"

	"github.com/iis-mfg/precision-site/internal/composer"
)

var servicesTmpl = template.Must(template.New("services").Parse(`<section class="services">
{{- if .Title}}
  <h2 class="services__title">{{.Title}}</h2>
{{- end}}
{{- if .Subtitle}}
  <p class="services__subtitle">{{.Subtitle}}</p>
{{- end}}
  <div class="services__grid">
{{- range .Items}}
    <article class="service-card"{{if .IconName}} data-icon="{{.IconName}}"{{end}}>
      <h3 class="service-card__title">{{.Title}}</h3>
{{- if .Description}}
      <p class="service-card__description">{{.Description}}</p>
{{- end}}
{{- if .Href}}
      <a class="service-card__link" href="{{.Href}}">Learn more</a>
{{- end}}
    </article>
{{- end}}
  </div>
</section>
`))

type serviceItem struct {
	Title       string
	Description string
	Href        string
	IconName    string
}

type servicesData struct {
	Title    string
	Subtitle string
	Items    []serviceItem
}

// Services renders the service-offering card grid.
type Services struct{}

func (Services) Variant() string { return "services" }

func (Services) Defaults() composer.Fields {
	return composer.Fields{"title": "Our Services"}
}

// Suppress hides the grid when no services are listed.
func (Services) Suppress(fields composer.Fields) bool {
	return len(fields.Slice("services")) == 0
}

func (Services) Render(fields composer.Fields) (string, error) {
	data := servicesData{
		Title:    fields.String("title"),
		Subtitle: fields.String("subtitle"),
	}
	for _, item := range fields.Maps("services") {
		data.Items = append(data.Items, serviceItem{
			Title:       item.String("title"),
			Description: item.String("description"),
			Href:        item.TrimmedString("href"),
			IconName:    item.TrimmedString("iconName"),
		})
	}

	var sb strings.Builder
	if err := servicesTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
