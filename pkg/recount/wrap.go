package recount

import (
	"errors"
	"fmt"
)

// Wrap adds a context link over err. The new link's message becomes the
// chain's display message; the full chain stays reachable through Unwrap.
// Wrap returns nil when err is nil, so call sites can wrap unconditionally.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{face: errors.New(message), cause: err}
}

// Wrapf adds a context link built from a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{face: fmt.Errorf(format, args...), cause: err}
}

// WrapWith adds a context link whose message is produced by messageFn.
// messageFn is invoked only when err is non-nil.
func WrapWith(err error, messageFn func() string) error {
	if err == nil {
		return nil
	}
	return &Error{face: errors.New(messageFn()), cause: err}
}

// WrapErr adds a context link whose face is an error value, typically a
// catalog entry or sentinel. errors.Is and errors.As keep finding context
// through the new link.
func WrapErr(err error, context error) error {
	if err == nil {
		return nil
	}
	return &Error{face: context, cause: err}
}

// AddHelp attaches help text to err at the current outermost position.
// Help attached before a later Wrap keeps its place in the chain and
// renders before help attached after it. AddHelp returns nil when err is
// nil. Lifting a non chain error this way never adds a display link.
func AddHelp(err error, message string) error {
	if err == nil {
		return nil
	}
	return lift(err).appendHelp(message)
}

// AddHelpWith attaches help text produced by messageFn.
// messageFn is invoked only when err is non-nil.
func AddHelpWith(err error, messageFn func() string) error {
	if err == nil {
		return nil
	}
	return lift(err).appendHelp(messageFn())
}

// SetHelp replaces the help entries held at the outermost position with
// exactly one entry.
//
// Deprecated: SetHelp is the legacy single-slot help API. Use AddHelp,
// which keeps entries attached at earlier wrap positions intact.
func SetHelp(err error, message string) error {
	if err == nil {
		return nil
	}
	return lift(err).SetHelp(message)
}

// AddHelp returns a copy of the link with message appended to its help
// entries. Nil receivers pass through.
func (e *Error) AddHelp(message string) *Error {
	if e == nil {
		return nil
	}
	return e.appendHelp(message)
}

// SetHelp returns a copy of the link holding exactly one help entry.
//
// Deprecated: SetHelp is the legacy single-slot help API. Use AddHelp,
// which keeps earlier entries intact.
func (e *Error) SetHelp(message string) *Error {
	if e == nil {
		return nil
	}
	return &Error{face: e.face, cause: e.cause, help: []string{message}}
}

// appendHelp returns a copy of the link with message added to its help
// entries, leaving the original untouched.
func (e *Error) appendHelp(message string) *Error {
	help := make([]string, len(e.help)+1)
	copy(help, e.help)
	help[len(help)-1] = message
	return &Error{face: e.face, cause: e.cause, help: help}
}
