// Package composer turns an ordered list of CMS-authored sections into
// rendered page output. It owns variant dispatch, per-variant defaulting,
// suppression of empty sections and filtering of disabled items; the actual
// markup comes from renderers registered per variant.
package composer

import (
	"fmt"
	"log"
	"sort"

	"github.com/iis-mfg/precision-site/internal/types"
)

// Renderer produces output for one section variant. Implementations declare
// their own defaults and suppression predicate so that the composer never has
// to guess what counts as "empty enough to hide" for a given variant.
type Renderer interface {
	Variant() string
	Defaults() Fields
	Suppress(fields Fields) bool
	Render(fields Fields) (string, error)
}

// Registry maps variant discriminators to renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates a registry containing the given renderers.
func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{renderers: make(map[string]Renderer, len(renderers))}
	for _, ren := range renderers {
		r.Register(ren)
	}
	return r
}

// Register adds a renderer, replacing any existing renderer for the variant.
func (r *Registry) Register(ren Renderer) {
	r.renderers[ren.Variant()] = ren
}

// Lookup returns the renderer for a variant.
func (r *Registry) Lookup(variant string) (Renderer, bool) {
	ren, ok := r.renderers[variant]
	return ren, ok
}

// Variants returns the registered variant names in sorted order.
func (r *Registry) Variants() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Diagnostic reasons recorded during composition.
const (
	ReasonUnknownVariant = "unknown_variant"
	ReasonRenderError    = "render_error"
)

// Diagnostic records a section that produced no output for a reason other
// than suppression. Diagnostics are data, never errors: an unknown variant or
// a broken renderer must not blank the page.
type Diagnostic struct {
	Index   int    `json:"index"`
	Variant string `json:"variant"`
	Reason  string `json:"reason"`
	Detail  string `json:"detail,omitempty"`
}

// RenderedSection is one composed section. Index is the section's position in
// the input list; output order is always a subsequence of input order.
type RenderedSection struct {
	Index   int    `json:"index"`
	Variant string `json:"variant"`
	HTML    string `json:"html"`
}

// Result is the output of one composition.
type Result struct {
	Sections    []RenderedSection `json:"sections"`
	Diagnostics []Diagnostic      `json:"diagnostics,omitempty"`
}

// Compose renders sections in list order. For each section it looks up the
// variant's renderer, merges declared defaults under the authored fields,
// applies the variant's suppression predicate, drops disabled nested items
// and invokes the renderer. Sections with no registered renderer are skipped
// with a diagnostic; a renderer error or panic omits that one section.
// Identical input always composes to identical output.
func Compose(sections []types.Section, registry *Registry) Result {
	var result Result
	for i, section := range sections {
		renderer, ok := registry.Lookup(section.Variant)
		if !ok {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Index:   i,
				Variant: section.Variant,
				Reason:  ReasonUnknownVariant,
			})
			continue
		}

		fields := MergeDefaults(Fields(section.Fields), renderer.Defaults())
		if renderer.Suppress(fields) {
			continue
		}
		fields = FilterDisabled(fields)

		html, err := renderSection(renderer, fields)
		if err != nil {
			log.Printf("[composer] render failed for section %d (%s): %v", i, section.Variant, err)
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Index:   i,
				Variant: section.Variant,
				Reason:  ReasonRenderError,
				Detail:  err.Error(),
			})
			continue
		}

		result.Sections = append(result.Sections, RenderedSection{
			Index:   i,
			Variant: section.Variant,
			HTML:    html,
		})
	}
	return result
}

// renderSection invokes the renderer, converting a panic into an error so a
// broken renderer omits one section instead of taking down the page.
func renderSection(renderer Renderer, fields Fields) (html string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("renderer panic: %v", r)
		}
	}()
	return renderer.Render(fields)
}
