package variants

import (
	"html/template"
	"strings"

	"github.com/iis-mfg/precision-site/internal/composer"
)

var heroTmpl = template.Must(template.New("hero").Parse(`<section class="hero hero--{{.Height}} hero--{{.Alignment}}">
{{- if .BackgroundImage}}
  <img class="hero__background" src="{{.BackgroundImage}}" alt="{{.ImageAlt}}">
{{- end}}
  <div class="hero__content">
{{- if .Badge}}
    <span class="hero__badge"{{if .BadgeIcon}} data-icon="{{.BadgeIcon}}"{{end}}>{{.Badge}}</span>
{{- end}}
    <h1 class="hero__title">{{.Title}}{{if .TitleHighlight}} <span class="hero__title-highlight">{{.TitleHighlight}}</span>{{end}}</h1>
{{- if .Description}}
    <p class="hero__description">{{.Description}}</p>
{{- end}}
{{- if .Buttons}}
    <div class="hero__buttons">
{{- range .Buttons}}
      <a class="button button--{{.Variant}}" href="{{.Href}}">{{.Label}}</a>
{{- end}}
    </div>
{{- end}}
  </div>
</section>
`))

type heroData struct {
	Title           string
	TitleHighlight  string
	Description     string
	Badge           string
	BadgeIcon       string
	BackgroundImage string
	ImageAlt        string
	Height          string
	Alignment       string
	Buttons         []Button
}

// Hero renders the full-bleed page header section.
type Hero struct{}

// Variant implements composer.Renderer.
func (Hero) Variant() string { return "hero" }

// Defaults implements composer.Renderer.
func (Hero) Defaults() composer.Fields {
	return composer.Fields{
		"height":    "large",
		"alignment": "center",
	}
}

// Suppress hides a hero that carries neither a title nor any imagery.
func (Hero) Suppress(fields composer.Fields) bool {
	if fields.TrimmedString("title") != "" {
		return false
	}
	if fields.TrimmedString("backgroundImage") != "" {
		return false
	}
	return len(fields.Slice("slides")) == 0
}

// Render implements composer.Renderer.
func (Hero) Render(fields composer.Fields) (string, error) {
	data := heroData{
		Title:           fields.String("title"),
		TitleHighlight:  fields.TrimmedString("titleHighlight"),
		Description:     fields.TrimmedString("description"),
		Badge:           fields.TrimmedString("badge"),
		BadgeIcon:       fields.TrimmedString("badgeIconName"),
		BackgroundImage: fields.TrimmedString("backgroundImage"),
		ImageAlt:        fields.String("imageAlt"),
		Height:          fields.String("height"),
		Alignment:       fields.String("alignment"),
		Buttons:         parseButtons(fields.Maps("buttons")),
	}

	// Slides fall back to the first usable image when no background is set.
	if data.BackgroundImage == "" {
		for _, slide := range fields.Maps("slides") {
			src := slide.TrimmedString("image")
			if src == "" {
				continue
			}
			data.BackgroundImage = src
			if data.ImageAlt == "" {
				data.ImageAlt = slide.String("alt")
			}
			break
		}
	}

	var sb strings.Builder
	if err := heroTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
