package task

import (
	"errors"
	"fmt"
)

// Validation failures for the four form fields. Every failure produced by
// the validators is a *FieldError wrapping exactly one of these sentinels,
// so callers can match the kind with errors.Is and still reach the
// offending value through errors.As.
var (
	ErrInvalidStartDate     = errors.New("invalid start date")
	ErrInvalidStartTime     = errors.New("invalid start time")
	ErrMissingTaskName      = errors.New("no task name")
	ErrUnknownRepeatKeyword = errors.New("unknown repeat keyword")
)

// Reason pins down how a field failed: never posted at all, posted with an
// empty value, or posted with a value that does not parse.
type Reason string

const (
	ReasonMissing   Reason = "missing"
	ReasonEmpty     Reason = "empty"
	ReasonMalformed Reason = "malformed"
)

// FieldError reports one invalid form field. Its Error text is what the
// form shows the user, so it names the field and says why it was rejected.
type FieldError struct {
	Field  string // form field name
	Value  string // raw value as posted, "" when the field was missing
	Reason Reason
	Detail string // what exactly was wrong, e.g. the observed part count

	kind error
}

func newFieldError(kind error, field, value string, reason Reason, detail string) *FieldError {
	return &FieldError{
		Field:  field,
		Value:  value,
		Reason: reason,
		Detail: detail,
		kind:   kind,
	}
}

func (e *FieldError) Error() string {
	if e.Reason == ReasonMissing {
		return fmt.Sprintf("%v: field %q %s", e.kind, e.Field, e.Detail)
	}
	return fmt.Sprintf("%v: field %q %s (got %q)", e.kind, e.Field, e.Detail, e.Value)
}

// Unwrap exposes the wrapped sentinel for errors.Is.
func (e *FieldError) Unwrap() error { return e.kind }

// IsValidation reports whether err is a form validation failure, as
// opposed to a downstream transport problem.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidStartDate) ||
		errors.Is(err, ErrInvalidStartTime) ||
		errors.Is(err, ErrMissingTaskName) ||
		errors.Is(err, ErrUnknownRepeatKeyword)
}
