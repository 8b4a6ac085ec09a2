package model

import "fmt"

// InvalidInputError reports an input that violates the documented contract.
// It is returned by the Validate methods before any optimization model is
// constructed; an input that fails validation is never sent to the solver.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
