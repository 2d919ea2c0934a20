// internal/app/features/quote/form.go
package quote

import (
	"sync"

	"github.com/safispaces/safispaces/internal/app/system/htmlsanitize"
	"github.com/safispaces/safispaces/internal/domain/models"
)

// User-facing messages for the quote form. These exact strings appear in
// both the HTML form and the JSON API.
const (
	MsgMissingRequired = "Please fill in all required fields."
	MsgInvalidEmail    = "Please enter a valid email address."
	MsgInvalidPhone    = "Please enter a valid Kenyan phone number."
	MsgSubmitSuccess   = "Thank you! We will contact you shortly."
	MsgSubmitFailed    = "Something went wrong. Please try again."
	MsgRateLimited     = "Too many requests. Please try again later."
)

// Form field names as they appear in HTML inputs and JSON keys.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldService = "service"
	FieldMessage = "message"
)

// StatusKind classifies the outcome shown to the visitor.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusSuccess
	StatusError
)

// ErrorReason identifies which check produced an error status. The JSON
// API uses it to choose a response code.
type ErrorReason int

const (
	ReasonNone ErrorReason = iota
	ReasonMissingRequired
	ReasonInvalidEmail
	ReasonInvalidPhone
	ReasonTransport
)

// Status is the submission outcome displayed to the visitor.
type Status struct {
	Kind    StatusKind
	Reason  ErrorReason
	Message string
}

// IsError reports whether the status is an error outcome.
func (s Status) IsError() bool { return s.Kind == StatusError }

// IsSuccess reports whether the status is a success outcome.
func (s Status) IsSuccess() bool { return s.Kind == StatusSuccess }

func errorStatus(reason ErrorReason, msg string) Status {
	return Status{Kind: StatusError, Reason: reason, Message: msg}
}

func successStatus() Status {
	return Status{Kind: StatusSuccess, Message: MsgSubmitSuccess}
}

// Form holds the quote request fields while a visitor fills them in.
// Every value passes through the sanitizer on the way in, so anything
// read back out is already markup-free. All methods are safe for
// concurrent use.
type Form struct {
	mu         sync.Mutex
	fields     models.QuoteFields
	status     Status
	submitting bool
}

// emptyFields returns the field defaults: blank text fields and the
// service selection back on unspecified.
func emptyFields() models.QuoteFields {
	return models.QuoteFields{Service: models.ServiceUnspecified}
}

// NewForm creates an empty quote form.
func NewForm() *Form {
	return &Form{fields: emptyFields()}
}

// truncateRunes caps s at max runes. Values arrive sanitized, so the cap
// applies to the cleaned text rather than raw input.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// SetField sanitizes value and stores it under the named field. Unknown
// field names are ignored. Editing any field clears the current status
// so a stale message never lingers next to changed input.
func (f *Form) SetField(name, value string) {
	clean := htmlsanitize.Sanitize(value)

	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case FieldName:
		f.fields.Name = truncateRunes(clean, models.MaxNameLen)
	case FieldEmail:
		f.fields.Email = truncateRunes(clean, models.MaxEmailLen)
	case FieldPhone:
		f.fields.Phone = truncateRunes(clean, models.MaxPhoneLen)
	case FieldService:
		f.fields.Service = models.ServiceFromKey(clean)
	case FieldMessage:
		f.fields.Message = truncateRunes(clean, models.MaxMessageLen)
	default:
		return
	}

	f.status = Status{}
}

// Fields returns a copy of the current field values.
func (f *Form) Fields() models.QuoteFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Status returns the current submission status.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Reset restores all fields to their defaults and clears the status.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = emptyFields()
	f.status = Status{}
}

// BeginSubmit marks the form as submitting. It returns false when a
// submission is already in flight, in which case the caller must not
// proceed. The lock is not held during the submission itself so edits
// and reads stay responsive.
func (f *Form) BeginSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return false
	}
	f.submitting = true
	return true
}

// EndSubmit clears the submitting flag set by BeginSubmit.
func (f *Form) EndSubmit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
}

// Submitting reports whether a submission is currently in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// setStatus records a submission outcome.
func (f *Form) setStatus(s Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = s
}

// finishSuccess records a success outcome and restores the field
// defaults so the form is ready for a fresh request.
func (f *Form) finishSuccess(s Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = emptyFields()
	f.status = s
}
