// Package types provides type definitions for structured data used throughout the precision-site system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Section is one CMS-authored content block within a page. The Variant
// discriminator selects which renderer handles it; Fields carries the
// variant-specific content as decoded by the content store.
type Section struct {
	Variant string         `json:"variant"`
	Fields  map[string]any `json:"fields"`
}

// SEO holds page-level metadata for document assembly.
type SEO struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	OGImage     string `json:"og_image,omitempty"`
	NoIndex     bool   `json:"no_index,omitempty"`
}

// Page is an ordered sequence of sections plus page-level metadata.
// A page with zero sections is valid; callers add chrome around it.
type Page struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	SEO       SEO       `json:"seo"`
	Sections  []Section `json:"sections"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NavItem is one entry in the site navigation document. Items may nest one
// level (dropdown groups). Visibility toggles default to shown.
type NavItem struct {
	Name         string    `json:"name"`
	Href         string    `json:"href"`
	Description  string    `json:"description,omitempty"`
	OpenInNewTab bool      `json:"open_in_new_tab,omitempty"`
	IconName     string    `json:"icon_name,omitempty"`
	ShowInHeader *bool     `json:"show_in_header,omitempty"`
	ShowInMobile *bool     `json:"show_in_mobile,omitempty"`
	Children     []NavItem `json:"children,omitempty"`
}

// Navigation is the singleton navigation document.
type Navigation struct {
	Items     []NavItem `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HeaderVisible reports whether the item should appear in the desktop header.
func (n NavItem) HeaderVisible() bool {
	return n.ShowInHeader == nil || *n.ShowInHeader
}

// MobileVisible reports whether the item should appear in the mobile menu.
func (n NavItem) MobileVisible() bool {
	return n.ShowInMobile == nil || *n.ShowInMobile
}
