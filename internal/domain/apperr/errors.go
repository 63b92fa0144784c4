// Package apperr defines the error taxonomy surfaced to API callers.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport layer
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "internal"
	}
}

// Stable error codes
const (
	CodeInvalidInput       = "invalid_input"
	CodeInvalidRating      = "invalid_rating"
	CodeEmailTaken         = "email_taken"
	CodeInvalidCredentials = "invalid_credentials"
	CodeInvalidToken       = "invalid_token"
	CodeAlreadyLinked      = "already_linked"
	CodeInvalidCode        = "invalid_code"
	CodeSelfLink           = "self_link"
	CodePartnerTaken       = "partner_taken"
	CodeNoPartner          = "no_partner"
	CodePartnerMissing     = "partner_missing"
	CodeWrongReceiver      = "wrong_receiver"
	CodeNotFound           = "not_found"
	CodeForbidden          = "forbidden"
	CodeAlreadyRated       = "already_rated"
	CodeInternal           = "internal_error"
)

// Error is an error with a kind and a stable code
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Validation creates a validation error
func Validation(code, message string) *Error {
	return New(KindValidation, code, message)
}

// NotFound creates a not found error
func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

// Forbidden creates a forbidden error
func Forbidden(code, message string) *Error {
	return New(KindForbidden, code, message)
}

// Conflict creates a conflict error
func Conflict(code, message string) *Error {
	return New(KindConflict, code, message)
}

// Unauthenticated creates an unauthenticated error
func Unauthenticated(code, message string) *Error {
	return New(KindUnauthenticated, code, message)
}

// Internal wraps an unexpected failure
func Internal(code, message string, err error) *Error {
	return &Error{Kind: KindInternal, Code: code, Message: message, Err: err}
}

// KindOf returns the kind of err, KindInternal when err carries none
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// CodeOf returns the stable code of err
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// Predefined domain errors
var (
	ErrAlreadyLinked      = Conflict(CodeAlreadyLinked, "already have a partner")
	ErrInvalidCode        = NotFound(CodeInvalidCode, "invalid partner code")
	ErrSelfLink           = Validation(CodeSelfLink, "cannot link to yourself")
	ErrPartnerTaken       = Conflict(CodePartnerTaken, "partner already linked to someone else")
	ErrNoPartner          = NotFound(CodeNoPartner, "no partner linked")
	ErrNeedPartner        = Validation(CodeNoPartner, "need to link partner first")
	ErrWrongReceiver      = Validation(CodeWrongReceiver, "can only create activities for your partner")
	ErrActivityNotFound   = NotFound(CodeNotFound, "activity not found")
	ErrNotReceiver        = Forbidden(CodeForbidden, "can only rate activities received by you")
	ErrAlreadyRated       = Conflict(CodeAlreadyRated, "activity already rated")
	ErrInvalidRating      = Validation(CodeInvalidRating, "rating must be between 1 and 5")
	ErrEmailTaken         = Conflict(CodeEmailTaken, "email already registered")
	ErrInvalidCredentials = Unauthenticated(CodeInvalidCredentials, "invalid credentials")
	ErrInvalidToken       = Unauthenticated(CodeInvalidToken, "invalid token")
	ErrUserNotFound       = NotFound(CodeNotFound, "user not found")
)
