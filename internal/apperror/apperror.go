// Package apperror classifies failures of the recipe operations so the HTTP
// layer can map them to status codes without inspecting message text.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind identifies the class of a failure.
type Kind string

const (
	// KindInvalidInput is a malformed identifier or structurally wrong payload.
	KindInvalidInput Kind = "INVALID_INPUT"
	// KindValidation is one or more recipe rule violations.
	KindValidation Kind = "VALIDATION_FAILED"
	// KindNotFound means no recipe exists at the requested id.
	KindNotFound Kind = "NOT_FOUND"
	// KindStore is an opaque failure from the database.
	KindStore Kind = "STORE_ERROR"
)

// HTTPStatus returns the response status for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidInput, KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure. Message is safe to show to API clients;
// Cause is kept for logs only.
type Error struct {
	Kind    Kind
	Message string
	Errors  []string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Details returns the list of messages to report to the client.
func (e *Error) Details() []string {
	if len(e.Errors) > 0 {
		return e.Errors
	}
	return []string{e.Message}
}

func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// Validation carries every violated rule; the message joins them.
func Validation(errs []string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "Validation failed: " + strings.Join(errs, ", "),
		Errors:  errs,
	}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Store(message string, cause error) *Error {
	return &Error{Kind: KindStore, Message: message, Cause: cause}
}

// KindOf reports the kind of err. Unclassified errors are store errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
