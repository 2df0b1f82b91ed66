package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindPersistenceUnavailable
	KindUpstreamProvider
	KindContentFormat
	KindUnavailable
)

// Error carries a client-facing message together with the kind that decides
// the HTTP status. Err is the wrapped cause and is never sent to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func NotFound(message string, err error) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: err}
}

func PersistenceUnavailable(err error) *Error {
	return &Error{Kind: KindPersistenceUnavailable, Message: "Database is unavailable", Err: err}
}

// Unavailable marks a feature that is switched off by configuration.
func Unavailable(message string) *Error {
	return &Error{Kind: KindUnavailable, Message: message}
}

func UpstreamProvider(message string, err error) *Error {
	return &Error{Kind: KindUpstreamProvider, Message: message, Err: err}
}

func ContentFormat(err error) *Error {
	return &Error{Kind: KindContentFormat, Message: "AI provider returned content in an unexpected format", Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// StatusOf maps err to the HTTP status code the API answers with.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindPersistenceUnavailable, KindUnavailable:
		return http.StatusServiceUnavailable
	case KindUpstreamProvider, KindContentFormat:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the message safe to return to a client.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "Internal server error"
}
