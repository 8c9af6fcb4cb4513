package server

import (
	"log"
	"mime"
	"net/http"
	"strings"

	"github.com/iis-mfg/precision-site/internal/intake"
	"github.com/iis-mfg/precision-site/internal/types"
)

// maxContactBody caps the full request body: form fields plus up to three
// attachments at the per-file limit.
const maxContactBody = 3*types.MaxAttachmentSize + 1<<20

// contactFields are the form values forwarded into the intake pipeline.
var contactFields = []string{"name", "email", "company", "phone", "interest", "projectType", "timeline", "message"}

// handleContact accepts a contact form submission
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	raw, err := parseContactRequest(r)
	if err != nil {
		log.Printf("Error parsing contact request: %v", err)
		s.errorResponse(w, http.StatusBadRequest, "could not parse form data")
		return
	}

	outcome := s.pipeline.Submit(r.Context(), raw)

	status := http.StatusOK
	switch {
	case len(outcome.Errors) > 0:
		status = http.StatusBadRequest
	case !outcome.Success && !outcome.PartialSuccess:
		status = http.StatusInternalServerError
	}

	s.jsonResponse(w, status, outcome)
}

// parseContactRequest builds an intake.RawForm from either a multipart or a
// urlencoded request body. Attachment contents are not read; only name and
// size are kept for validation and the notification email.
func parseContactRequest(r *http.Request) (intake.RawForm, error) {
	raw := intake.RawForm{Values: make(map[string]string)}

	mediaType := r.Header.Get("Content-Type")
	if mediaType != "" {
		if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
			mediaType = parsed
		}
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(maxContactBody); err != nil {
			return raw, err
		}
		for _, field := range contactFields {
			raw.Values[field] = r.FormValue(field)
		}
		if r.MultipartForm != nil {
			for _, files := range r.MultipartForm.File {
				for _, fh := range files {
					raw.Attachments = append(raw.Attachments, types.AttachmentMeta{
						Name: fh.Filename,
						Size: fh.Size,
					})
				}
			}
		}
		return raw, nil
	}

	if err := r.ParseForm(); err != nil {
		return raw, err
	}
	for _, field := range contactFields {
		raw.Values[field] = r.PostFormValue(field)
	}
	return raw, nil
}
