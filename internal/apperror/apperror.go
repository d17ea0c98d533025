// Package apperror defines the error taxonomy shared by services and
// mapped to HTTP status codes at the handler boundary.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Kind classifies an Error for transport mapping.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
)

// Error carries a kind plus a caller-facing message. Services return
// these; nothing in the core retries or wraps transient faults.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// HTTPStatus maps the kind to its transport status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// fieldMessages gives readable messages for the validator tags used by
// the signup and print-job payloads.
var fieldMessages = map[string]string{
	"required": "is required",
	"len":      "has the wrong length",
	"numeric":  "must be numeric",
	"gt":       "must be greater than zero",
	"lte":      "is above the allowed maximum",
	"oneof":    "is not one of the allowed values",
}

// FromValidation converts validator/v10 errors into a single
// validation Error naming the first offending field.
func FromValidation(err error) *Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return Validation("invalid payload")
	}
	e := verrs[0]
	msg, ok := fieldMessages[e.Tag()]
	if !ok {
		msg = "is invalid"
	}
	return Validation("%s %s", e.Field(), msg)
}
