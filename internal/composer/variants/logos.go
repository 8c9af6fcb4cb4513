package variants

import (
	"html/template"
	"strings"

	"github.com/iis-mfg/precision-site/internal/composer"
)

var logosTmpl = template.Must(template.New("logos").Parse(`<section class="client-logos">
{{- if .Title}}
  <h2 class="client-logos__title">{{.Title}}</h2>
{{- end}}
  <ul class="client-logos__strip">
{{- range .Logos}}
    <li class="client-logos__item"><img src="{{.URL}}" alt="{{.Name}}"></li>
{{- end}}
  </ul>
</section>
`))

type logoItem struct {
	Name string
	URL  string
}

type logosData struct {
	Title string
	Logos []logoItem
}

// Logos renders the client-logo strip. Unlike other variants the section
// itself carries an enabled toggle: editors stage logo sets before showing
// them.
type Logos struct{}

func (Logos) Variant() string { return "logos" }

func (Logos) Defaults() composer.Fields { return composer.Fields{} }

// Suppress hides the strip unless the section is switched on and at least
// one logo has an image.
func (Logos) Suppress(fields composer.Fields) bool {
	if !fields.Bool("enabled", false) {
		return true
	}
	for _, logo := range fields.Maps("logos") {
		if logo.TrimmedString("url") != "" {
			return false
		}
	}
	return true
}

func (Logos) Render(fields composer.Fields) (string, error) {
	data := logosData{Title: fields.String("title")}
	for _, logo := range fields.Maps("logos") {
		url := logo.TrimmedString("url")
		if url == "" {
			continue
		}
		data.Logos = append(data.Logos, logoItem{
			Name: logo.String("name"),
			URL:  url,
		})
	}

	var sb strings.Builder
	if err := logosTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
