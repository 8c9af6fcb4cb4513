package auditlog

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iis-mfg/precision-site/internal/types"
)

func testSubmission() types.ContactSubmission {
	return types.ContactSubmission{
		ID:          uuid.New(),
		SubmittedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Form: types.ContactForm{
			Name:     "Jane Doe",
			Email:    "jane@acme.com",
			Company:  "Acme Aerospace",
			Interest: "quote",
			Message:  "We need 500 titanium brackets machined to print.",
		},
		EmailSuccess:   true,
		SMTPConfigured: true,
	}
}

func TestConsoleLog_AppendWritesOneJSONLine(t *testing.T) {
	var buf bytes.Buffer
	console := &ConsoleLog{Out: &buf}

	err := console.Append(context.Background(), testSubmission())
	require.NoError(t, err)

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "[CONTACT SUBMISSION] "))
	assert.Equal(t, 1, strings.Count(line, "\n"))

	var entry map[string]any
	payload := strings.TrimPrefix(strings.TrimSpace(line), "[CONTACT SUBMISSION] ")
	require.NoError(t, json.Unmarshal([]byte(payload), &entry))
	assert.Equal(t, "Acme Aerospace", entry["company"])
	assert.Equal(t, "2026-03-14T09:30:00Z", entry["timestamp"])
	assert.Equal(t, true, entry["emailSuccess"])
	assert.NotContains(t, entry, "emailError", "empty error is omitted")
}

func TestConsoleLog_AppendRecordsFailureDetails(t *testing.T) {
	var buf bytes.Buffer
	console := &ConsoleLog{Out: &buf}

	sub := testSubmission()
	sub.EmailSuccess = false
	sub.EmailError = "dial tcp: connection refused"
	sub.SMTPConfigured = false

	err := console.Append(context.Background(), sub)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"emailSuccess":false`)
	assert.Contains(t, buf.String(), "connection refused")
}

// failingWriter errors on every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestConsoleLog_WriteFailureSurfaces(t *testing.T) {
	console := &ConsoleLog{Out: failingWriter{}}

	err := console.Append(context.Background(), testSubmission())
	assert.Error(t, err)
}
