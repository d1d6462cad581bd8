package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Adda-Baaj/portfolio-client/internal/domain"
)

// ErrSubmissionInProgress is returned when Submit is called while an earlier call on the
// same form has not resolved yet.
var ErrSubmissionInProgress = errors.New("contact submission already in progress")

// Field names one input of the contact form.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Form owns the state of one contact form instance: the field values and the
// submission-in-progress flag that gates the submit button.
type Form struct {
	submitter ContactSubmitter

	mu         sync.Mutex
	values     domain.ContactRequest
	submitting atomic.Bool
}

// NewForm returns an empty form that sends through submitter.
func NewForm(submitter ContactSubmitter) *Form {
	return &Form{submitter: submitter}
}

// Set updates a single field.
func (f *Form) Set(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldName:
		f.values.Name = value
	case FieldEmail:
		f.values.Email = value
	case FieldSubject:
		f.values.Subject = value
	case FieldMessage:
		f.values.Message = value
	default:
		return fmt.Errorf("unknown contact form field %q", field)
	}
	return nil
}

// Fill replaces all field values at once.
func (f *Form) Fill(req domain.ContactRequest) {
	f.mu.Lock()
	f.values = req
	f.mu.Unlock()
}

// Values returns a snapshot of the current field values.
func (f *Form) Values() domain.ContactRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Reset clears every field.
func (f *Form) Reset() {
	f.mu.Lock()
	f.values = domain.ContactRequest{}
	f.mu.Unlock()
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool { return f.submitting.Load() }

// CanSubmit reports whether the submit action should be enabled.
func (f *Form) CanSubmit() bool {
	return !f.Submitting() && f.Values().Complete()
}

// Submit sends the current values once. A call made while another is in flight is
// suppressed with ErrSubmissionInProgress; an incomplete form yields a *ValidationError.
// On success the fields are cleared.
func (f *Form) Submit(ctx context.Context) (Result, error) {
	if f.submitter == nil {
		return Result{}, fmt.Errorf("contact form has no submitter")
	}
	if !f.submitting.CompareAndSwap(false, true) {
		return Result{}, ErrSubmissionInProgress
	}
	defer f.submitting.Store(false)

	req := f.Values()
	if err := Validate(req); err != nil {
		return Result{}, err
	}

	res := f.submitter.Submit(ctx, req)
	if res.Succeeded() {
		f.Reset()
	}
	return res, nil
}
