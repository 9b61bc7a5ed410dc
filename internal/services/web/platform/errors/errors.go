// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Err     error
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Unwrap exposes the transport failure that produced this error.
func (e Error) Unwrap() error {
	return e.Err
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// KindOf returns the error kind, resolving backend status codes when the
// error is not already typed.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	if code, ok := statusCode(err); ok {
		return KindFromStatus(code)
	}
	return KindUnknown
}

// IsKind reports whether err classifies as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		if code, ok := statusCode(err); ok {
			return kindHTTPStatus(KindFromStatus(code))
		}
		return http.StatusInternalServerError
	}
	return kindHTTPStatus(appErr.Kind)
}

// KindFromStatus maps a backend HTTP status onto a Kind.
func KindFromStatus(code int) Kind {
	switch {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return KindInvalidInput
	case code == http.StatusUnauthorized:
		return KindUnauthorized
	case code == http.StatusForbidden:
		return KindForbidden
	case code == http.StatusNotFound:
		return KindNotFound
	case code == http.StatusConflict:
		return KindConflict
	case code == http.StatusServiceUnavailable || code == http.StatusBadGateway || code == http.StatusGatewayTimeout:
		return KindUnavailable
	default:
		return KindUnknown
	}
}

// StatusMapping configures backend error translation fallbacks.
type StatusMapping struct {
	FallbackKind    Kind
	FallbackKey     string
	FallbackMessage string
}

// MapStatusError converts a backend transport failure into a typed Error.
// Typed errors pass through unchanged. The backend body is never copied into
// the public message.
func MapStatusError(err error, mapping StatusMapping) error {
	if err == nil {
		return nil
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		return err
	}
	kind := mapping.FallbackKind
	if kind == "" {
		kind = KindUnknown
	}
	if code, ok := statusCode(err); ok {
		if mapped := KindFromStatus(code); mapped != KindUnknown {
			kind = mapped
		}
	}
	message := strings.TrimSpace(mapping.FallbackMessage)
	if message == "" {
		message = string(kind)
	}
	return Error{Kind: kind, Key: strings.TrimSpace(mapping.FallbackKey), Message: message, Err: err}
}

type statusCoder interface {
	StatusCode() int
}

func statusCode(err error) (int, bool) {
	var coder statusCoder
	if !stderrors.As(err, &coder) {
		return 0, false
	}
	return coder.StatusCode(), true
}

func kindHTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
