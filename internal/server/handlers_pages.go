package server

import (
	"net/http"
	"strings"

	"github.com/iis-mfg/precision-site/internal/composer"
	"github.com/iis-mfg/precision-site/internal/types"
)

// handleGetPage returns the stored page document for a slug
func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	slug := normalizeSlug(r.PathValue("slug"))
	if slug == "" {
		s.errorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	page, err := s.content.GetPage(r.Context(), slug)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load page")
		return
	}
	if page == nil {
		err := &ErrPageNotFound{Slug: slug}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, page)
}

// composedPage is the response shape for a composed page render.
type composedPage struct {
	Slug        string                     `json:"slug"`
	Title       string                     `json:"title"`
	SEO         types.SEO                  `json:"seo"`
	Sections    []composer.RenderedSection `json:"sections"`
	Diagnostics []composer.Diagnostic      `json:"diagnostics,omitempty"`
}

// handleComposePage runs the page composer over a stored page and returns
// the ordered rendered sections
func (s *Server) handleComposePage(w http.ResponseWriter, r *http.Request) {
	slug := normalizeSlug(r.PathValue("slug"))
	if slug == "" {
		s.errorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	page, err := s.content.GetPage(r.Context(), slug)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load page")
		return
	}
	if page == nil {
		err := &ErrPageNotFound{Slug: slug}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := composer.Compose(page.Sections, s.registry)
	s.jsonResponse(w, http.StatusOK, composedPage{
		Slug:        page.Slug,
		Title:       page.Title,
		SEO:         page.SEO,
		Sections:    result.Sections,
		Diagnostics: result.Diagnostics,
	})
}

// handleNavigation returns the navigation document. The surface query
// parameter (header or mobile) filters items by their visibility toggles.
func (s *Server) handleNavigation(w http.ResponseWriter, r *http.Request) {
	nav, err := s.content.GetNavigation(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load navigation")
		return
	}

	surface := r.URL.Query().Get("surface")
	if surface != "" && surface != "header" && surface != "mobile" {
		s.errorResponse(w, http.StatusBadRequest, "surface must be header or mobile")
		return
	}

	nav.Items = prepareNavItems(nav.Items, surface)
	s.jsonResponse(w, http.StatusOK, nav)
}

// prepareNavItems normalizes hrefs and applies per-surface visibility,
// recursing into dropdown children.
func prepareNavItems(items []types.NavItem, surface string) []types.NavItem {
	out := make([]types.NavItem, 0, len(items))
	for _, item := range items {
		switch surface {
		case "header":
			if !item.HeaderVisible() {
				continue
			}
		case "mobile":
			if !item.MobileVisible() {
				continue
			}
		}
		item.Href = normalizeHref(item.Href)
		item.Children = prepareNavItems(item.Children, surface)
		out = append(out, item)
	}
	return out
}

// normalizeHref ensures internal links are root-relative. Absolute URLs and
// fragment/mail links pass through untouched.
func normalizeHref(href string) string {
	if href == "" {
		return "/"
	}
	if strings.Contains(href, "://") || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		return "/" + href
	}
	return href
}

// normalizeSlug trims surrounding slashes from a multi-segment slug wildcard.
func normalizeSlug(slug string) string {
	return strings.Trim(strings.TrimSpace(slug), "/")
}
