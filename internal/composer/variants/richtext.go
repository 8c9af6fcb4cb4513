package variants

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/iis-mfg/precision-site/internal/composer"
)

var richTextTmpl = template.Must(template.New("richText").Parse(`<section class="rich-text rich-text--{{.Container}}{{if .Padding}} rich-text--pad-{{.Padding}}{{end}}">
  <div class="rich-text__body">{{.Content}}</div>
</section>
`))

// richTextPolicy sanitizes CMS-authored markup before it reaches a page.
// UGC policy allows the formatting tags editors actually use while stripping
// scripts and event handlers.
var richTextPolicy = bluemonday.UGCPolicy()

type richTextData struct {
	Container string
	Padding   string
	Content   template.HTML
}

// RichText renders editor-authored prose blocks.
type RichText struct{}

// Variant implements composer.Renderer.
func (RichText) Variant() string { return "richText" }

// Defaults implements composer.Renderer.
func (RichText) Defaults() composer.Fields {
	return composer.Fields{
		"container": "default",
	}
}

// Suppress hides the section when the content is empty after sanitization.
func (RichText) Suppress(fields composer.Fields) bool {
	content := richTextPolicy.Sanitize(fields.String("content"))
	return strings.TrimSpace(content) == ""
}

// Render implements composer.Renderer.
func (RichText) Render(fields composer.Fields) (string, error) {
	sanitized := richTextPolicy.Sanitize(fields.String("content"))
	data := richTextData{
		Container: fields.String("container"),
		Padding:   fields.TrimmedString("padding"),
		Content:   template.HTML(sanitized),
	}

	var sb strings.Builder
	if err := richTextTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
