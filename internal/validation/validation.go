package validation

import (
	"fmt"
	"strings"
)

// Violation identifies a single failed check: the field path and the reason.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error collects every violation found while constructing an entity.
// Construction is all-or-nothing: if an Error is returned, nothing was stored.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Errors accumulates violations across the two validation phases.
type Errors struct {
	violations []Violation
}

// Add records a violation for the given field.
func (e *Errors) Add(field, format string, args ...any) {
	e.violations = append(e.violations, Violation{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// Empty reports whether no violation has been recorded yet.
func (e *Errors) Empty() bool {
	return len(e.violations) == 0
}

// Err returns the accumulated violations as an *Error, or nil if none.
func (e *Errors) Err() error {
	if len(e.violations) == 0 {
		return nil
	}
	return &Error{Violations: e.violations}
}

// AsError unwraps err into an *Error when it carries violations.
func AsError(err error) (*Error, bool) {
	ve, ok := err.(*Error)
	return ve, ok
}
