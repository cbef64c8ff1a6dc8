package httperr

import (
	"errors"
	"fmt"
)

// Business error codes used across the lifecycle.
const (
	CodeNotFound          = "not_found"
	CodeForbidden         = "forbidden"
	CodeInvalidTransition = "invalid_transition"
	CodeInvalidRange      = "invalid_range"
	CodeValidation        = "validation_error"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessf(code, format string, args ...any) error {
	return BusinessError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ===============================
// Taxonomy constructors
// ===============================

func ErrNotFound(entity string) error {
	return ErrBusinessf(CodeNotFound, "%s not found", entity)
}

func ErrForbidden(reason string) error {
	return ErrBusinessf(CodeForbidden, "%s", reason)
}

// ErrInvalidTransition reports the offending current status.
func ErrInvalidTransition(current string) error {
	return ErrBusinessf(CodeInvalidTransition, "action not allowed for status %q", current)
}

func ErrInvalidRange(reason string) error {
	return ErrBusinessf(CodeInvalidRange, "%s", reason)
}

func ErrValidation(reason string) error {
	return ErrBusinessf(CodeValidation, "%s", reason)
}

// BusinessCode extracts the code from a business error, or "" for other errors.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
