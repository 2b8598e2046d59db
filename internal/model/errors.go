package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrValidation marks any request rejected before it reaches storage.
// Handlers map it to 400.
var ErrValidation = errors.New("validation failed")

// ValidationError carries per-field messages keyed by JSON field name. It
// unwraps to ErrValidation so callers can match either.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Invalidf builds a single-message validation error that matches
// ErrValidation under errors.Is.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
