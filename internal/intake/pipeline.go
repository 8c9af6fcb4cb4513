// Package intake implements the contact-form submission pipeline: validate,
// notify, audit-log, respond. The pipeline runs strictly in that order within
// one request because the audit record must carry the real notification
// outcome, and it never reports failure for a submission that was captured.
package intake

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/iis-mfg/precision-site/internal/email"
	"github.com/iis-mfg/precision-site/internal/types"
)

// AuditLog is the append-only submission record collaborator.
type AuditLog interface {
	Append(ctx context.Context, sub types.ContactSubmission) error
}

// Options configures a Pipeline.
type Options struct {
	// SMTPConfigured reports whether all required transport credentials are
	// present. Evaluated per submission so environment changes are observed.
	SMTPConfigured func() bool
	// FallbackPhone is quoted to the user whenever the notification outcome
	// cannot be confirmed.
	FallbackPhone string
}

// Pipeline processes contact-form submissions. It is stateless between
// calls; every Submit is independent.
type Pipeline struct {
	mailer         email.Mailer
	audit          AuditLog
	smtpConfigured func() bool
	fallbackPhone  string
}

// New creates a pipeline with the given collaborators.
func New(mailer email.Mailer, audit AuditLog, opts Options) *Pipeline {
	configured := opts.SMTPConfigured
	if configured == nil {
		configured = func() bool { return false }
	}
	return &Pipeline{
		mailer:         mailer,
		audit:          audit,
		smtpConfigured: configured,
		fallbackPhone:  opts.FallbackPhone,
	}
}

// Submit runs one submission through the pipeline and always returns an
// outcome. Validation failure is the only normal path that reports
// success=false; after validation passes, notification failures degrade the
// message but never the reported outcome, because the submission is durably
// captured in the audit log either way. Unexpected failures (the audit write
// erroring, a collaborator panicking) fall through to a conservative
// call-us response.
func (p *Pipeline) Submit(ctx context.Context, raw RawForm) (outcome types.SubmissionOutcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[contact] unexpected pipeline failure: %v", r)
			outcome = p.errorOutcome()
		}
	}()

	// Validation gates every downstream effect: no email, no log entry on
	// failure.
	form, fieldErrors := ParseAndValidate(raw)
	if len(fieldErrors) > 0 {
		return types.SubmissionOutcome{
			Success: false,
			Message: "Please check your form inputs",
			Errors:  fieldErrors,
		}
	}

	result := p.mailer.Send(ctx, *form)
	smtpConfigured := p.smtpConfigured()

	sub := types.ContactSubmission{
		ID:             uuid.New(),
		SubmittedAt:    time.Now().UTC(),
		Form:           *form,
		EmailSuccess:   result.Success,
		EmailError:     result.Error,
		SMTPConfigured: smtpConfigured,
	}
	if err := p.audit.Append(ctx, sub); err != nil {
		log.Printf("[contact] audit log append failed: %v", err)
		return p.errorOutcome()
	}

	return p.respond(form, result, smtpConfigured)
}

// respond computes the user-facing message from the notify outcome and the
// transport configuration state.
func (p *Pipeline) respond(form *types.ContactForm, result email.Result, smtpConfigured bool) types.SubmissionOutcome {
	switch {
	case result.Success:
		return types.SubmissionOutcome{
			Success: true,
			Message: fmt.Sprintf("Thank you for your inquiry. A confirmation has been sent to %s and we will respond within 24 hours.", form.Email),
		}
	case !smtpConfigured:
		// Known configuration gap: the submission is captured, so the user
		// sees success with a call-to-confirm rather than a raw failure.
		return types.SubmissionOutcome{
			Success:        true,
			PartialSuccess: true,
			Message:        fmt.Sprintf("Thank you for your inquiry. Our email notifications are temporarily unavailable, so please call us at %s to confirm we received it.", p.fallbackPhone),
		}
	default:
		return types.SubmissionOutcome{
			Success: true,
			Message: "Thank you for your inquiry. We will respond within 24 hours.",
			Warning: fmt.Sprintf("If you have not heard from us within 24 hours, please call %s.", p.fallbackPhone),
		}
	}
}

func (p *Pipeline) errorOutcome() types.SubmissionOutcome {
	return types.SubmissionOutcome{
		Success: false,
		Message: fmt.Sprintf("An error occurred. Please try again or call us at %s.", p.fallbackPhone),
	}
}
