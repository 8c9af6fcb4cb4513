package variants

import (
	"html/template"
	"strings"

	"github.com/iis-mfg/precision-site/internal/composer"
)

var industriesTmpl = template.Must(template.New("industries").Parse(`<section class="industries">
{{- if .Title}}
  <h2 class="industries__title">{{.Title}}</h2>
{{- end}}
{{- if .Description}}
  <p class="industries__description">{{.Description}}</p>
{{- end}}
  <div class="industries__grid">
{{- range .Items}}
    <article class="industry-card">
{{- if .ImageURL}}
      <img class="industry-card__image" src="{{.ImageURL}}" alt="{{.Name}}">
{{- end}}
      <h3 class="industry-card__name">{{.Name}}</h3>
{{- if .Description}}
      <p class="industry-card__description">{{.Description}}</p>
{{- end}}
{{- if .Href}}
      <a class="industry-card__link" href="{{.Href}}">Explore</a>
{{- end}}
    </article>
{{- end}}
  </div>
</section>
`))

type industryItem struct {
	Name        string
	Description string
	Href        string
	ImageURL    string
}

type industriesData struct {
	Title       string
	Description string
	Items       []industryItem
}

// Industries renders the served-industries card grid.
type Industries struct{}

func (Industries) Variant() string { return "industries" }

func (Industries) Defaults() composer.Fields {
	return composer.Fields{"title": "Industries We Serve"}
}

// Suppress hides the grid when no industries are listed.
func (Industries) Suppress(fields composer.Fields) bool {
	return len(fields.Slice("industries")) == 0
}

func (Industries) Render(fields composer.Fields) (string, error) {
	data := industriesData{
		Title:       fields.String("title"),
		Description: fields.String("description"),
	}
	for _, item := range fields.Maps("industries") {
		data.Items = append(data.Items, industryItem{
			Name:        item.String("name"),
			Description: item.String("description"),
			Href:        item.TrimmedString("href"),
			ImageURL:    item.TrimmedString("imageUrl"),
		})
	}

	var sb strings.Builder
	if err := industriesTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
