package variants

import (
	"html/template"
	"strings"

	"github.com/iis-mfg/precision-site/internal/composer"
)

var techSpecsTmpl = template.Must(template.New("techSpecs").Parse(`<section class="tech-specs">
{{- if .Title}}
  <h2 class="tech-specs__title">{{.Title}}</h2>
{{- end}}
  <table class="tech-specs__table">
    <tbody>
{{- range .Specs}}
      <tr>
        <th scope="row">{{.Label}}</th>
        <td>{{.Value}}</td>
{{- if .Tolerance}}
        <td class="tech-specs__tolerance">{{.Tolerance}}</td>
{{- end}}
      </tr>
{{- end}}
    </tbody>
  </table>
</section>
`))

type techSpec struct {
	Label     string
	Value     string
	Tolerance string
}

type techSpecsData struct {
	Title string
	Specs []techSpec
}

// TechSpecs renders the machining-capability table.
type TechSpecs struct{}

func (TechSpecs) Variant() string { return "techSpecs" }

func (TechSpecs) Defaults() composer.Fields {
	return composer.Fields{"title": "Technical Specifications"}
}

// Suppress hides the table when there are no specification rows.
func (TechSpecs) Suppress(fields composer.Fields) bool {
	return len(fields.Slice("specs")) == 0
}

func (TechSpecs) Render(fields composer.Fields) (string, error) {
	data := techSpecsData{Title: fields.String("title")}
	for _, spec := range fields.Maps("specs") {
		data.Specs = append(data.Specs, techSpec{
			Label:     spec.String("label"),
			Value:     spec.String("value"),
			Tolerance: spec.String("tolerance"),
		})
	}

	var sb strings.Builder
	if err := techSpecsTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
