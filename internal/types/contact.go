package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Interest values accepted by the contact form.
const (
	InterestGeneral     = "general"
	InterestQuote       = "quote"
	InterestPartnership = "partnership"
	InterestSupplier    = "supplier"
	InterestCareer      = "career"
	InterestTechnical   = "technical"
)

// Attachment limits enforced at the multipart boundary. Type checking of
// attachment contents remains a client-side concern; the server only caps
// count and size so a hostile client cannot exhaust memory.
const (
	MaxAttachments    = 3
	MaxAttachmentSize = 10 << 20 // 10MB
)

// ContactForm represents a validated contact-form payload. Optional fields
// that arrive as empty strings are treated as absent before validation.
type ContactForm struct {
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Company     string `json:"company" validate:"required,min=2"`
	Phone       string `json:"phone,omitempty" validate:"omitempty"`
	Interest    string `json:"interest" validate:"required,oneof=general quote partnership supplier career technical"`
	ProjectType string `json:"projectType,omitempty" validate:"omitempty"`
	Timeline    string `json:"timeline,omitempty" validate:"omitempty"`
	Message     string `json:"message" validate:"required,min=10"`

	Attachments []AttachmentMeta `json:"attachments,omitempty" validate:"max=3,dive"`
}

// AttachmentMeta describes one uploaded file. The pipeline records metadata
// only; file bytes are handed to the mailer and never persisted.
type AttachmentMeta struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Validate validates the ContactForm using the validator.
func (f *ContactForm) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// ContactSubmission is the immutable audit record of one contact-form
// attempt. EmailSuccess, EmailError and SMTPConfigured are computed by the
// intake pipeline, never supplied by the caller.
type ContactSubmission struct {
	ID          uuid.UUID   `json:"id"`
	SubmittedAt time.Time   `json:"submitted_at"`
	Form        ContactForm `json:"form"`

	EmailSuccess   bool   `json:"email_success"`
	EmailError     string `json:"email_error,omitempty"`
	SMTPConfigured bool   `json:"smtp_configured"`
}

// SubmissionOutcome is the user-facing result of one contact-form submit.
// Success is false only for validation failures and unexpected errors caught
// at the outer boundary; a captured submission never reports failure.
type SubmissionOutcome struct {
	Success        bool                `json:"success"`
	PartialSuccess bool                `json:"partialSuccess,omitempty"`
	Message        string              `json:"message"`
	Warning        string              `json:"warning,omitempty"`
	Errors         map[string][]string `json:"errors,omitempty"`
}
