// Package variants provides the section renderers for the precision-site
// page composer: one renderer per CMS section variant, each declaring its own
// defaults and suppression predicate.
package variants

import "github.com/iis-mfg/precision-site/internal/composer"

// Default returns a registry containing every section variant the site
// renders. Callers that need different behavior (tests, previews) build
// their own registry instead of mutating this one.
func Default() *composer.Registry {
	return composer.NewRegistry(
		Hero{},
		Stats{},
		CTA{},
		RichText{},
		Services{},
		Industries{},
		Resources{},
		Showcase{},
		TechSpecs{},
		Logos{},
	)
}

// Button is a call-to-action link inside a section.
type Button struct {
	Label   string
	Href    string
	Variant string
}

// parseButtons extracts buttons from an item array. Both "label" and "text"
// name the button caption, matching how different section schemas spell it.
// Buttons without a caption or target are dropped.
func parseButtons(items []composer.Fields) []Button {
	buttons := make([]Button, 0, len(items))
	for _, item := range items {
		label := item.TrimmedString("label")
		if label == "" {
			label = item.TrimmedString("text")
		}
		href := item.TrimmedString("href")
		if label == "" || href == "" {
			continue
		}
		variant := item.String("variant")
		if variant == "" {
			variant = "primary"
		}
		buttons = append(buttons, Button{Label: label, Href: href, Variant: variant})
	}
	return buttons
}
