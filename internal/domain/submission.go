package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrMailNotConfigured is returned when no SMTP relay is configured.
var ErrMailNotConfigured = errors.New("email service is not configured")

// ValidationErrorMap maps a JSON field name to a human-readable message.
// A field without a key is valid.
type ValidationErrorMap map[string]string

// Empty reports whether the submission passed validation.
func (m ValidationErrorMap) Empty() bool {
	return len(m) == 0
}

// Fields returns the failing field names in sorted order.
func (m ValidationErrorMap) Fields() []string {
	fields := make([]string, 0, len(m))
	for k := range m {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

// ValidationError is returned by usecases when a submission fails validation.
type ValidationError struct {
	Fields ValidationErrorMap
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// Document is a rendered submission ready to be mailed.
type Document struct {
	Subject string
	Text    string
	HTML    string
}

// Labels is the translation-lookup capability used for messages and display labels.
type Labels interface {
	// T returns the text for key with {0}, {1}... replaced by params.
	T(key string, params ...string) (string, bool)
	// FormatNumber renders n with the locale's grouping separators.
	FormatNumber(n int) string
}

// SubmissionValidator checks submissions and returns field-level errors.
// The locale used for messages is read from ctx.
type SubmissionValidator interface {
	ValidateContact(ctx context.Context, s *ContactSubmission) ValidationErrorMap
	ValidateQuote(ctx context.Context, s *QuoteSubmission) ValidationErrorMap
}
