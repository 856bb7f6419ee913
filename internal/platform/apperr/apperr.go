// Package apperr defines the domain error taxonomy shared by all
// services: validation, conflict, auth, not-found, and storage errors.
// Handlers map these kinds onto HTTP statuses; everything else wraps
// with fmt.Errorf and %w as usual.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation: a required field is missing or empty.
	KindValidation
	// KindConflict: a uniqueness invariant would be violated.
	KindConflict
	// KindAuth: credential mismatch or unknown identifier. Deliberately
	// undifferentiated so callers cannot enumerate identifiers.
	KindAuth
	// KindNotFound: the target record does not exist.
	KindNotFound
	// KindStorage: the backing store is unreachable or rejected the
	// operation for a reason outside the taxonomy.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error is a classified domain error, optionally wrapping a cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Validation returns a KindValidation error.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// Conflict returns a KindConflict error.
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// Auth returns a KindAuth error.
func Auth(format string, args ...interface{}) *Error {
	return &Error{Kind: KindAuth, Msg: fmt.Sprintf(format, args...)}
}

// NotFound returns a KindNotFound error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Storage wraps a backing-store failure.
func Storage(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindStorage, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of err, or KindUnknown when err is not part
// of the taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
