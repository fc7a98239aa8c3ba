package services

import "net/http"

// ErrorKind classifies workflow failures so handlers can pick a status
// code without string matching.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindDuplicateEmail
	KindInvalidCredentials
	KindInvalidToken
	KindInvalidStateTransition
	KindInvalidValue
	KindNotFound
	KindForbidden
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// HTTPStatus maps a workflow error to its response code. Anything that is
// not a workflow error is treated as an internal failure.
func HTTPStatus(err error) int {
	e, ok := err.(*Error)
	if !ok {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindInvalidToken:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
