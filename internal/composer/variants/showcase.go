package variants

import (
	"html/template"
	"strings"

	"github.com/iis-mfg/precision-site/internal/composer"
)

var showcaseTmpl = template.Must(template.New("showcase").Parse(`<section class="showcase">
{{- if .Title}}
  <h2 class="showcase__title">{{.Title}}</h2>
{{- end}}
  <div class="showcase__gallery">
{{- range .Images}}
    <figure class="showcase__figure">
      <img class="showcase__image" src="{{.URL}}" alt="{{.Alt}}">
{{- if .Caption}}
      <figcaption class="showcase__caption">{{.Caption}}</figcaption>
{{- end}}
    </figure>
{{- end}}
  </div>
</section>
`))

type showcaseImage struct {
	URL     string
	Alt     string
	Caption string
}

type showcaseData struct {
	Title  string
	Images []showcaseImage
}

// Showcase renders the image-gallery section.
type Showcase struct{}

func (Showcase) Variant() string { return "showcase" }

func (Showcase) Defaults() composer.Fields { return composer.Fields{} }

// Suppress hides the gallery when no image carries a usable URL.
func (Showcase) Suppress(fields composer.Fields) bool {
	for _, image := range fields.Maps("images") {
		if image.TrimmedString("url") != "" {
			return false
		}
	}
	return true
}

func (Showcase) Render(fields composer.Fields) (string, error) {
	data := showcaseData{Title: fields.String("title")}
	for _, image := range fields.Maps("images") {
		url := image.TrimmedString("url")
		if url == "" {
			continue
		}
		data.Images = append(data.Images, showcaseImage{
			URL:     url,
			Alt:     image.String("alt"),
			Caption: image.String("caption"),
		})
	}

	var sb strings.Builder
	if err := showcaseTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
