package email

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/iis-mfg/precision-site/internal/config"
	"github.com/iis-mfg/precision-site/internal/types"
)

// notificationTmpl is the plain-text body of the internal notification.
// Attachments are listed by name; file bytes stay on the submitting request.
var notificationTmpl = template.Must(template.New("notification").Parse(`New contact form submission. Please respond within 24 hours.

Name:     {{.Form.Name}}
Email:    {{.Form.Email}}
Company:  {{.Form.Company}}
{{- if .Form.Phone}}
Phone:    {{.Form.Phone}}
{{- end}}
Interest: {{.Interest}}
{{- if .Form.ProjectType}}
Project:  {{.Form.ProjectType}}
{{- end}}
{{- if .Form.Timeline}}
Timeline: {{.Form.Timeline}}
{{- end}}

Message:
{{.Form.Message}}
{{- if .Form.Attachments}}

Attachments:
{{- range .Form.Attachments}}
  - {{.Name}} ({{.Size}} bytes)
{{- end}}
{{- end}}

Sent from the IIS Precision Manufacturing website contact form.
`))

type messageData struct {
	Form     types.ContactForm
	Interest string
}

// buildMessage assembles the full RFC 822 message, headers included.
func buildMessage(cfg config.SMTPConfig, form types.ContactForm) ([]byte, error) {
	var body bytes.Buffer
	data := messageData{Form: form, Interest: titleCase(form.Interest)}
	if err := notificationTmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", cfg.To)
	fmt.Fprintf(&msg, "Reply-To: %s\r\n", form.Email)
	fmt.Fprintf(&msg, "Subject: New Contact Form Submission: %s\r\n", form.Company)
	fmt.Fprintf(&msg, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(strings.ReplaceAll(body.String(), "\n", "\r\n"))

	return msg.Bytes(), nil
}

// titleCase capitalizes the first letter of an interest value for display.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
