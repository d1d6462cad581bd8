package contact

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Adda-Baaj/portfolio-client/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError describes one invalid field of a contact request.
type FieldError struct {
	Field   string
	Rule    string
	Message string
}

// ValidationError is returned when a request fails the client-side precondition.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "invalid contact request"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid contact request: " + strings.Join(parts, "; ")
}

// Validate checks a request against the contact form rules. Fields are trimmed first, so
// whitespace-only values count as empty. The check is stricter than presence: the email
// must parse as an address with a dotted domain, and the length bounds enforced by the
// intake backend apply, so addresses such as a@b fail here without a network call.
// The request itself is never modified.
func Validate(req domain.ContactRequest) error {
	err := validate.Struct(req.Trimmed())
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate contact request: %w", err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %q rule", fe.Tag())
	}
}
