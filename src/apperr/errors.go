// Package apperr carries the error taxonomy surfaced by the API: every
// client-facing failure has a machine-checkable kind next to its message.
package apperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindNotFound      Kind = "not_found"
	KindConflict      Kind = "conflict"
	KindStorage       Kind = "storage"
)

type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"error"`
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

func Authorization(message string) *Error {
	return New(KindAuthorization, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Storage wraps a persistence failure. The original error stays reachable
// through Unwrap for logs; callers only see the generic message.
func Storage(cause error) *Error {
	return Wrap(KindStorage, "error while processing request", cause)
}

// KindOf extracts the taxonomy kind from err, defaulting to storage for
// anything the engines did not classify.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
