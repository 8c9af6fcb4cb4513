package intake

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iis-mfg/precision-site/internal/types"
)

// RawForm is the uncoerced form input as received from the transport.
// Values holds single-valued text fields keyed by form name.
type RawForm struct {
	Values      map[string]string
	Attachments []types.AttachmentMeta
}

func (r RawForm) get(key string) string {
	return strings.TrimSpace(r.Values[key])
}

var validate = validator.New()

// fieldNames maps ContactForm struct fields to the form names surfaced in
// validation errors.
var fieldNames = map[string]string{
	"Name":        "name",
	"Email":       "email",
	"Company":     "company",
	"Phone":       "phone",
	"Interest":    "interest",
	"ProjectType": "projectType",
	"Timeline":    "timeline",
	"Message":     "message",
	"Attachments": "attachments",
}

// ParseAndValidate coerces raw input into a ContactForm and validates it.
// Empty optional fields are treated as absent rather than empty strings. On
// failure it returns per-field messages and no form; partially valid input
// is never partially processed.
func ParseAndValidate(raw RawForm) (*types.ContactForm, map[string][]string) {
	form := types.ContactForm{
		Name:        raw.get("name"),
		Email:       raw.get("email"),
		Company:     raw.get("company"),
		Phone:       raw.get("phone"),
		Interest:    raw.get("interest"),
		ProjectType: raw.get("projectType"),
		Timeline:    raw.get("timeline"),
		Message:     raw.get("message"),
		Attachments: raw.Attachments,
	}

	fieldErrors := make(map[string][]string)

	if err := validate.Struct(&form); err != nil {
		var verrs validator.ValidationErrors
		if ok := asValidationErrors(err, &verrs); !ok {
			fieldErrors["form"] = []string{"invalid form input"}
			return nil, fieldErrors
		}
		for _, fe := range verrs {
			name := fieldNames[fe.StructField()]
			if name == "" {
				name = strings.ToLower(fe.StructField())
			}
			fieldErrors[name] = append(fieldErrors[name], fieldMessage(name, fe))
		}
	}

	// Oversize attachments are rejected here as a transport safety net; type
	// checking of attachment contents remains a client-side concern.
	for _, att := range form.Attachments {
		if att.Size > types.MaxAttachmentSize {
			fieldErrors["attachments"] = append(fieldErrors["attachments"],
				fmt.Sprintf("File %q exceeds the 10MB limit", att.Name))
		}
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return &form, nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

// fieldMessage converts one validator failure into the message shown next to
// the field.
func fieldMessage(name string, fe validator.FieldError) string {
	switch name {
	case "name":
		if fe.Tag() == "min" {
			return "Name must be at least 2 characters"
		}
		return "Name is required"
	case "email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Invalid email address"
	case "company":
		if fe.Tag() == "min" {
			return "Company name must be at least 2 characters"
		}
		return "Company name is required"
	case "interest":
		return "Select a valid area of interest"
	case "message":
		if fe.Tag() == "min" {
			return "Message must be at least 10 characters"
		}
		return "Message is required"
	case "attachments":
		return fmt.Sprintf("A maximum of %d files can be attached", types.MaxAttachments)
	default:
		return fmt.Sprintf("Invalid value for %s", name)
	}
}
