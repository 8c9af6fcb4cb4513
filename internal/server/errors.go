package server

import (
	"fmt"
	"net/http"
)

// ErrPageNotFound indicates no page exists for a slug
type ErrPageNotFound struct {
	Slug string
}

func (e *ErrPageNotFound) Error() string {
	return fmt.Sprintf("page not found: %s", e.Slug)
}

// ErrInvalidPreviewToken indicates a preview token failed validation
type ErrInvalidPreviewToken struct {
	Reason string
}

func (e *ErrInvalidPreviewToken) Error() string {
	return fmt.Sprintf("invalid preview token: %s", e.Reason)
}

// ErrPreviewSecretMismatch indicates the preview secret did not match
type ErrPreviewSecretMismatch struct{}

func (e *ErrPreviewSecretMismatch) Error() string {
	return "preview secret mismatch"
}

// ErrPreviewDisabled indicates previews are not configured on this server
type ErrPreviewDisabled struct{}

func (e *ErrPreviewDisabled) Error() string {
	return "previews are not enabled"
}

// ErrUnknownDocument indicates a preview request named a document the site
// cannot resolve to a path
type ErrUnknownDocument struct {
	Collection string
	Slug       string
}

func (e *ErrUnknownDocument) Error() string {
	if e.Collection != "" {
		return fmt.Sprintf("unknown document: %s/%s", e.Collection, e.Slug)
	}
	return fmt.Sprintf("unknown document: %s", e.Slug)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrPageNotFound, *ErrUnknownDocument:
		return http.StatusNotFound
	case *ErrInvalidPreviewToken, *ErrPreviewSecretMismatch:
		return http.StatusUnauthorized
	case *ErrPreviewDisabled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
