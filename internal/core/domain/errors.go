package domain

import "errors"

// Error taxonomy. Every error surfaced to a client wraps exactly one of these.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
	ErrUpstream        = errors.New("upstream error")
)

// Error is a client-facing failure: Message is safe to render, Kind is one
// of the taxonomy sentinels above and Details optionally carries the
// underlying cause (upstream failures only).
type Error struct {
	Kind    error
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Kind }

// NewError builds an *Error of the given kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Validation returns a ValidationError with the given message.
func Validation(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

// Unauthenticated returns an AuthError with the given message.
func Unauthenticated(message string) *Error {
	return &Error{Kind: ErrUnauthenticated, Message: message}
}

// Upstream wraps a failed call to an external collaborator.
func Upstream(message string, cause error) *Error {
	e := &Error{Kind: ErrUpstream, Message: message}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

var (
	ErrInvalidCredentials = NewError(ErrUnauthenticated, "Invalid username or password")
	ErrUserExists         = NewError(ErrConflict, "Username or email already exists")
	ErrUserNotFound       = NewError(ErrNotFound, "User not found")
	ErrNotProfileOwner    = NewError(ErrForbidden, "Unauthorized")
	ErrFavoriteExists     = NewError(ErrConflict, "Movie already in favorites")
	ErrFavoriteNotFound   = NewError(ErrNotFound, "Favorite not found")
	ErrNotFavoriteOwner   = NewError(ErrForbidden, "Unauthorized")
	ErrReviewNotFound     = NewError(ErrNotFound, "Review not found")
)

// MessageOf returns the client-facing message carried by err, or "" when err
// is not a domain *Error.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}

// DetailsOf returns the details carried by err, if any.
func DetailsOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Details
	}
	return ""
}
