package recount

import (
	"errors"
	"fmt"
)

// Error is one link in a singly linked error chain. Each link pairs a face
// (the error whose message this link displays) with the cause it wraps,
// plus any help entries attached while the link was outermost. A link with
// no face is a carrier: it holds help for an error that was never wrapped
// and stays invisible in the chain.
type Error struct {
	face  error
	cause error
	help  []string
}

// New creates a leaf error with the given message.
func New(message string) *Error {
	return &Error{face: errors.New(message)}
}

// Errorf creates a leaf error from a format string.
func Errorf(format string, args ...any) *Error {
	return &Error{face: fmt.Errorf(format, args...)}
}

// FromError lifts err into an *Error without adding a chain link. An err
// that already is an *Error is returned as is; nil returns nil.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	return lift(err)
}

func lift(err error) *Error {
	if e, ok := err.(*Error); ok && e != nil {
		return e
	}
	return &Error{cause: err}
}

// Error returns only this link's message: for the head of a wrapped chain
// that is the outermost context. Format with %+v for the full chain.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.face != nil {
		return e.face.Error()
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return "error"
}

// Unwrap returns the immediate wrapped error (cause).
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is matches target against this link's face, so a chain wrapped with a
// sentinel or catalog entry keeps matching it. The cause chain is covered
// by errors.Is itself through Unwrap.
func (e *Error) Is(target error) bool {
	if e == nil || e.face == nil {
		return false
	}
	return errors.Is(e.face, target)
}

// As matches target against this link's face. The cause chain is covered
// by errors.As itself through Unwrap.
func (e *Error) As(target any) bool {
	if e == nil || e.face == nil {
		return false
	}
	return errors.As(e.face, target)
}

// Help returns the help entries attached at this link, oldest first.
func (e *Error) Help() []string {
	if e == nil || len(e.help) == 0 {
		return nil
	}
	out := make([]string, len(e.help))
	copy(out, e.help)
	return out
}
