// server/errors/errors.go

// Package errors provides coded application errors for the notes API.
//
// Handlers return these errors and the HTTP error handler maps the code to a
// status:
//
//	if !id.Valid(raw) {
//	    return errors.InvalidID("The `id` is not valid")
//	}
//
//	var appErr *errors.Error
//	if errors.As(err, &appErr) {
//	    return c.Status(appErr.HTTPStatus()).JSON(appErr)
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
	New    = errors.New
)

// Code represents a machine-readable error kind.
type Code string

// Error codes used throughout the application.
const (
	CodeInvalidID     Code = "INVALID_ID"
	CodeMissingField  Code = "MISSING_FIELD"
	CodeDuplicateName Code = "DUPLICATE_NAME"
	CodeMalformedBody Code = "MALFORMED_BODY"
	CodeNotFound      Code = "NOT_FOUND"
	CodeInternal      Code = "INTERNAL"
)

// HTTPStatus returns the HTTP status code for an error code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidID, CodeMissingField, CodeDuplicateName, CodeMalformedBody:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is an application error with a code and a human-readable message.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// Sentinel errors for use with errors.Is().
var (
	ErrInvalidID     = &Error{Code: CodeInvalidID, Message: "invalid identifier"}
	ErrMissingField  = &Error{Code: CodeMissingField, Message: "missing required field"}
	ErrDuplicateName = &Error{Code: CodeDuplicateName, Message: "duplicate name"}
	ErrNotFound      = &Error{Code: CodeNotFound, Message: "not found"}
	ErrInternal      = &Error{Code: CodeInternal, Message: "internal error"}
)

// InvalidID creates an invalid identifier error.
func InvalidID(msg string) *Error {
	return &Error{Code: CodeInvalidID, Message: msg}
}

// MissingField creates a missing required field error.
func MissingField(msg string) *Error {
	return &Error{Code: CodeMissingField, Message: msg}
}

// MissingFieldf creates a missing required field error with formatted message.
func MissingFieldf(format string, args ...any) *Error {
	return &Error{Code: CodeMissingField, Message: fmt.Sprintf(format, args...)}
}

// DuplicateName creates a duplicate name error.
func DuplicateName(msg string) *Error {
	return &Error{Code: CodeDuplicateName, Message: msg}
}

// MalformedBody creates an error for a request body that cannot be decoded.
func MalformedBody(err error) *Error {
	return &Error{Code: CodeMalformedBody, Message: "Malformed request body", cause: err}
}

// NotFound creates a not found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// NotFoundf creates a not found error with formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Internal creates an internal error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}
