package domain

import "strings"

// Domain contains core models shared by the contact and resume flows.

// ContactRequest is a single contact form submission. It is built fresh per submission
// and discarded after send.
type ContactRequest struct {
	Name    string `json:"name" yaml:"name" validate:"required,max=100"`
	Email   string `json:"email" yaml:"email" validate:"required,email"`
	Subject string `json:"subject" yaml:"subject" validate:"required,max=200"`
	Message string `json:"message" yaml:"message" validate:"required,max=2000"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (r ContactRequest) Trimmed() ContactRequest {
	return ContactRequest{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Subject: strings.TrimSpace(r.Subject),
		Message: strings.TrimSpace(r.Message),
	}
}

// Complete reports whether all four fields are non-empty after trimming.
func (r ContactRequest) Complete() bool {
	t := r.Trimmed()
	return t.Name != "" && t.Email != "" && t.Subject != "" && t.Message != ""
}

const (
	// ResumeContentType is the only content type handed to resume delivery.
	ResumeContentType = "application/pdf"

	// DefaultResumeFileName is suggested to the user when the backend does not name the file.
	DefaultResumeFileName = "Gunvanth_Madabattula_Resume.pdf"
)

// ResumeAsset is the fetched resume payload, held in memory only until delivery.
type ResumeAsset struct {
	Data        []byte
	ContentType string
	FileName    string
}

// IsPDF reports whether the declared content type indicates a PDF.
func (a ResumeAsset) IsPDF() bool {
	return IsPDFContentType(a.ContentType)
}

// IsPDFContentType reports whether a Content-Type header value indicates a PDF.
func IsPDFContentType(ct string) bool {
	return strings.Contains(strings.ToLower(ct), "pdf")
}
