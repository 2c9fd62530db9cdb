package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource (catalog entry or historical booking) does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, return before departure).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// FieldErrors is a field-scoped validation failure: one message per offending
// field. It wraps ErrValidation so callers can match it with errors.Is while
// handlers extract the field map with errors.As to render errors inline.
type FieldErrors map[string]string

// Error lists the offending fields in deterministic (sorted) order.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Unwrap makes errors.Is(fe, ErrValidation) hold for any FieldErrors value.
func (fe FieldErrors) Unwrap() error {
	return ErrValidation
}
