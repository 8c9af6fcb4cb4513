package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iis-mfg/precision-site/internal/composer/variants"
	"github.com/iis-mfg/precision-site/internal/config"
	"github.com/iis-mfg/precision-site/internal/server/ratelimit"
)

// newTestServer builds a server with in-memory collaborators and no database.
// Handlers that hit the content store are covered by integration tests.
func newTestServer() *Server {
	return &Server{
		registry:  variants.Default(),
		appConfig: &config.Config{ContactPhone: "(503) 231-9093"},
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestWithCORS(t *testing.T) {
	s := newTestServer()
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/contact", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("normal requests pass through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pages/about", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestWithRateLimit(t *testing.T) {
	s := newTestServer()
	s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []ratelimit.EndpointConfig{
			{Path: "/contact", Method: "POST", Limit: 2, Window: time.Minute, Burst: 2},
		},
	})
	defer s.rateLimiter.Stop()

	handler := s.withRateLimit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = "1.2.3.4:55001"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	first := send()
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))

	send()
	third := send()
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
	assert.Contains(t, third.Body.String(), "rate_limit_exceeded")
}

func TestExtractClientID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:43120"
	assert.Equal(t, "192.0.2.7", s.extractClientID(req))

	req.RemoteAddr = "no-port-here"
	assert.Equal(t, "no-port-here", s.extractClientID(req))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrPageNotFound{Slug: "x"}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrUnknownDocument{Slug: "x"}))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrInvalidPreviewToken{Reason: "expired"}))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrPreviewSecretMismatch{}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&ErrPreviewDisabled{}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
