package registration

import (
	"errors"
	"strings"
)

// Service errors
var (
	ErrNotFound       = errors.New("registration not found")
	ErrAlreadyExists  = errors.New("registration already exists")
	ErrExportDisabled = errors.New("pdf export is not enabled")
)

// FieldError is one problem with one form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return "invalid registration: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// RFCMismatchError reports a provided RFC that differs from the derived one
// outside the homoclave. Expected holds the derived value without its suffix.
type RFCMismatchError struct {
	Expected string
}

func (e *RFCMismatchError) Error() string {
	return "RFC does not match. Expected: " + e.Expected
}
