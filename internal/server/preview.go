package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iis-mfg/precision-site/internal/config"
)

// globalPaths maps standalone site documents to their public paths.
var globalPaths = map[string]string{
	"homepage":              "/",
	"about":                 "/about",
	"contact":               "/contact",
	"careers":               "/careers",
	"terms":                 "/compliance/terms",
	"supplier-requirements": "/compliance/supplier-requirements",
}

// previewCollections are the document collections whose entries resolve to
// /<collection>/<slug> paths.
var previewCollections = map[string]bool{
	"services":   true,
	"industries": true,
	"resources":  true,
}

// PreviewClaims represents preview token claims naming the draft document.
type PreviewClaims struct {
	Collection string `json:"collection,omitempty"`
	Slug       string `json:"slug,omitempty"`
	Global     string `json:"global,omitempty"`
	jwt.RegisteredClaims
}

// PreviewService mints and validates signed draft-preview tokens.
type PreviewService struct {
	config *config.PreviewConfig
}

// NewPreviewService creates a preview service with the given configuration.
func NewPreviewService(cfg *config.PreviewConfig) *PreviewService {
	return &PreviewService{config: cfg}
}

// GenerateToken signs a preview token for the named document.
func (s *PreviewService) GenerateToken(claims PreviewClaims) (string, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(s.config.ExpirationMinutes) * time.Minute)

	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a preview token and returns its claims.
func (s *PreviewService) ValidateToken(tokenString string) (*PreviewClaims, error) {
	if tokenString == "" {
		return nil, &ErrInvalidPreviewToken{Reason: "token is empty"}
	}

	claims := &PreviewClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, &ErrInvalidPreviewToken{Reason: "token expired"}
		case errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, &ErrInvalidPreviewToken{Reason: "invalid signature"}
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, &ErrInvalidPreviewToken{Reason: "malformed token"}
		default:
			return nil, &ErrInvalidPreviewToken{Reason: err.Error()}
		}
	}

	if !token.Valid {
		return nil, &ErrInvalidPreviewToken{Reason: "token is not valid"}
	}
	return claims, nil
}

// ResolvePath resolves validated claims to the site path being previewed.
func ResolvePath(claims *PreviewClaims) (string, error) {
	if claims.Global != "" {
		path, ok := globalPaths[claims.Global]
		if !ok {
			return "", &ErrUnknownDocument{Slug: claims.Global}
		}
		return path, nil
	}

	if claims.Collection != "" && claims.Slug != "" {
		if !previewCollections[claims.Collection] {
			return "", &ErrUnknownDocument{Collection: claims.Collection, Slug: claims.Slug}
		}
		return "/" + claims.Collection + "/" + claims.Slug, nil
	}

	return "", &ErrInvalidPreviewToken{Reason: "token names no document"}
}

// handlePreview validates a preview token from the query string and returns
// the resolved preview path
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	if s.preview == nil {
		err := &ErrPreviewDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	claims, err := s.preview.ValidateToken(r.URL.Query().Get("token"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	path, err := ResolvePath(claims)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	response := map[string]string{"path": path}
	if claims.ExpiresAt != nil {
		response["expires_at"] = claims.ExpiresAt.Format(time.RFC3339)
	}
	s.jsonResponse(w, http.StatusOK, response)
}

// mintTokenRequest is the body for POST /preview/token.
type mintTokenRequest struct {
	Secret     string `json:"secret"`
	Collection string `json:"collection,omitempty"`
	Slug       string `json:"slug,omitempty"`
	Global     string `json:"global,omitempty"`
}

// handleMintPreviewToken mints a preview token for editors holding the
// preview secret
func (s *Server) handleMintPreviewToken(w http.ResponseWriter, r *http.Request) {
	if s.preview == nil {
		err := &ErrPreviewDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req mintTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(s.preview.config.Secret)) != 1 {
		err := &ErrPreviewSecretMismatch{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	claims := PreviewClaims{
		Collection: strings.TrimSpace(req.Collection),
		Slug:       strings.TrimSpace(req.Slug),
		Global:     strings.TrimSpace(req.Global),
	}

	// Reject unresolvable documents up front so editors get the error at
	// mint time instead of on first use.
	if _, err := ResolvePath(&claims); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := s.preview.GenerateToken(claims)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"token": token})
}
