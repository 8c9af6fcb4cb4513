package server

import (
	"context"
	"net/http"
	"time"
)

// integrationStatus describes one external dependency in the health report.
type integrationStatus struct {
	Status  string   `json:"status"`
	Detail  string   `json:"detail,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// handleIntegrations reports the health of external integrations. The
// database is probed; SMTP is reported from configuration since probing a
// mail relay on every health check would trip its connection limits.
func (s *Server) handleIntegrations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	integrations := make(map[string]integrationStatus)
	healthy := true

	if err := s.content.Ping(ctx); err != nil {
		healthy = false
		integrations["database"] = integrationStatus{Status: "down", Detail: err.Error()}
	} else {
		integrations["database"] = integrationStatus{Status: "ok"}
	}

	if s.appConfig.SMTP.Configured() {
		integrations["smtp"] = integrationStatus{Status: "configured"}
	} else {
		// Not fatal: the intake pipeline degrades to console logging.
		integrations["smtp"] = integrationStatus{
			Status:  "not_configured",
			Missing: s.appConfig.SMTP.MissingCredentials(),
		}
	}

	if s.preview != nil {
		integrations["preview"] = integrationStatus{Status: "enabled"}
	} else {
		integrations["preview"] = integrationStatus{Status: "disabled"}
	}

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	s.jsonResponse(w, status, map[string]any{
		"status":       overall,
		"integrations": integrations,
	})
}
