package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	// ErrUnknownEntity means the entity type name has no descriptor in the
	// schema catalog.
	ErrUnknownEntity = errors.New("unknown entity type")

	// ErrUnknownField means the entity exists but the field name does not.
	ErrUnknownField = errors.New("unknown field")

	// ErrNotWritable means the field exists but its descriptor forbids
	// writes (read-only, calculated, or system-managed).
	ErrNotWritable = errors.New("field not writable")

	// ErrBadValue means a raw value could not be parsed into the field's
	// declared type.
	ErrBadValue = errors.New("value not convertible")

	// ErrValidation covers malformed requests at the HTTP boundary.
	ErrValidation = errors.New("validation error")

	// ErrUnavailable means the schema provider could not be reached.
	ErrUnavailable = errors.New("schema provider unavailable")
)

// ConversionError carries the context of a failed string-to-type conversion:
// which field, what raw input, and which declared type rejected it.
// Use errors.Is(err, ErrBadValue) for simple checks, or errors.As(err, &cerr)
// to access the field, raw value, and type tag.
type ConversionError struct {
	Field string
	Raw   string
	Type  string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("converting %q for %s field %q: %v", e.Raw, e.Type, e.Field, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return ErrBadValue
}

// ValidationError provides programmatic access to field-level request
// validation failures at the HTTP boundary. Use errors.Is(err, ErrValidation)
// for simple checks, or errors.As(err, &verr) to access verr.Fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), joinSorted(parts))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// joinSorted joins parts in sorted order so that Error() output is stable.
func joinSorted(parts []string) string {
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
