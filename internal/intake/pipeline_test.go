package intake

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iis-mfg/precision-site/internal/email"
	"github.com/iis-mfg/precision-site/internal/types"
)

// mockMailer records Send calls and returns a canned result.
type mockMailer struct {
	calls  int
	result email.Result
	panics bool
}

func (m *mockMailer) Send(_ context.Context, _ types.ContactForm) email.Result {
	m.calls++
	if m.panics {
		panic("mailer blew up")
	}
	return m.result
}

// mockAudit records Append calls and returns a canned error.
type mockAudit struct {
	calls   int
	lastSub types.ContactSubmission
	err     error
}

func (m *mockAudit) Append(_ context.Context, sub types.ContactSubmission) error {
	m.calls++
	m.lastSub = sub
	return m.err
}

const testPhone = "(503) 231-9093"

func newTestPipeline(mailer *mockMailer, audit *mockAudit, smtpConfigured bool) *Pipeline {
	return New(mailer, audit, Options{
		SMTPConfigured: func() bool { return smtpConfigured },
		FallbackPhone:  testPhone,
	})
}

func validRawForm() RawForm {
	return RawForm{Values: map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@acme.com",
		"company":  "Acme Aerospace",
		"interest": "quote",
		"message":  "We need 500 titanium brackets machined to print.",
	}}
}

func TestSubmit_HappyPath(t *testing.T) {
	mailer := &mockMailer{result: email.Result{Success: true}}
	audit := &mockAudit{}
	p := newTestPipeline(mailer, audit, true)

	outcome := p.Submit(context.Background(), validRawForm())

	assert.True(t, outcome.Success)
	assert.False(t, outcome.PartialSuccess)
	assert.Contains(t, outcome.Message, "jane@acme.com")
	assert.Empty(t, outcome.Warning)
	assert.Empty(t, outcome.Errors)

	assert.Equal(t, 1, mailer.calls)
	require.Equal(t, 1, audit.calls)
	assert.True(t, audit.lastSub.EmailSuccess)
	assert.Empty(t, audit.lastSub.EmailError)
	assert.True(t, audit.lastSub.SMTPConfigured)
	assert.NotZero(t, audit.lastSub.ID)
	assert.False(t, audit.lastSub.SubmittedAt.IsZero())
	assert.Equal(t, "Acme Aerospace", audit.lastSub.Form.Company)
}

func TestSubmit_ValidationFailureGatesAllSideEffects(t *testing.T) {
	mailer := &mockMailer{result: email.Result{Success: true}}
	audit := &mockAudit{}
	p := newTestPipeline(mailer, audit, true)

	outcome := p.Submit(context.Background(), RawForm{Values: map[string]string{
		"name":  "J",
		"email": "not-an-email",
	}})

	assert.False(t, outcome.Success)
	assert.Equal(t, "Please check your form inputs", outcome.Message)
	assert.NotEmpty(t, outcome.Errors)

	assert.Zero(t, mailer.calls, "invalid submissions must not trigger email")
	assert.Zero(t, audit.calls, "invalid submissions must not be logged")
}

func TestSubmit_EmailFailureStillSucceeds(t *testing.T) {
	mailer := &mockMailer{result: email.Result{Error: "dial tcp: connection refused"}}
	audit := &mockAudit{}
	p := newTestPipeline(mailer, audit, true)

	outcome := p.Submit(context.Background(), validRawForm())

	assert.True(t, outcome.Success, "a captured submission never reports failure")
	assert.False(t, outcome.PartialSuccess)
	assert.Contains(t, outcome.Warning, testPhone)

	require.Equal(t, 1, audit.calls)
	assert.False(t, audit.lastSub.EmailSuccess)
	assert.Equal(t, "dial tcp: connection refused", audit.lastSub.EmailError)
}

func TestSubmit_SMTPNotConfigured(t *testing.T) {
	mailer := &mockMailer{result: email.Result{Error: "smtp transport not configured"}}
	audit := &mockAudit{}
	p := newTestPipeline(mailer, audit, false)

	outcome := p.Submit(context.Background(), validRawForm())

	assert.True(t, outcome.Success)
	assert.True(t, outcome.PartialSuccess)
	assert.Contains(t, outcome.Message, testPhone)
	assert.Empty(t, outcome.Warning)

	require.Equal(t, 1, audit.calls)
	assert.False(t, audit.lastSub.SMTPConfigured)
}

func TestSubmit_AuditAlwaysWrittenOnceForValidSubmission(t *testing.T) {
	tests := []struct {
		name   string
		result email.Result
	}{
		{"email sent", email.Result{Success: true}},
		{"email failed", email.Result{Error: "timeout"}},
		{"smtp unconfigured", email.Result{Error: "smtp transport not configured"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audit := &mockAudit{}
			p := newTestPipeline(&mockMailer{result: tt.result}, audit, tt.result.Success)

			outcome := p.Submit(context.Background(), validRawForm())

			assert.True(t, outcome.Success)
			assert.Equal(t, 1, audit.calls)
			assert.Equal(t, tt.result.Success, audit.lastSub.EmailSuccess)
			assert.Equal(t, tt.result.Error, audit.lastSub.EmailError)
		})
	}
}

func TestSubmit_AuditWriteFailureIsAnError(t *testing.T) {
	mailer := &mockMailer{result: email.Result{Success: true}}
	audit := &mockAudit{err: errors.New("connection reset")}
	p := newTestPipeline(mailer, audit, true)

	outcome := p.Submit(context.Background(), validRawForm())

	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Message, "An error occurred")
	assert.Contains(t, outcome.Message, testPhone)
	assert.Empty(t, outcome.Errors)
}

func TestSubmit_CollaboratorPanicIsContained(t *testing.T) {
	mailer := &mockMailer{panics: true}
	audit := &mockAudit{}
	p := newTestPipeline(mailer, audit, true)

	var outcome types.SubmissionOutcome
	require.NotPanics(t, func() {
		outcome = p.Submit(context.Background(), validRawForm())
	})

	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Message, testPhone)
}
