package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindConfig      ErrKind = iota // missing/invalid mandatory option, non-integer value
	ErrKindInput                      // missing backing image file
	ErrKindConstraint                 // budget exceeded, fixed offset conflict, overlap
	ErrKindIO                         // reading/writing the persisted file failed
	ErrKindFormat                     // persisted file is malformed
	ErrKindState                      // operation invalid for the map's lifecycle state
	ErrKindUnsupported                // operation not offered by this map
)

// String returns a short name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindConfig:
		return "config"
	case ErrKindInput:
		return "input"
	case ErrKindConstraint:
		return "constraint"
	case ErrKindIO:
		return "io"
	case ErrKindFormat:
		return "format"
	case ErrKindState:
		return "state"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional offending option and underlying cause.
type Error struct {
	Kind   ErrKind
	Msg    string
	Option string // bspconfig option the error is about, if any
	Err    error  // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrAlreadyGenerated indicates GenerateMmap was called on a populated map.
	ErrAlreadyGenerated = &Error{Kind: ErrKindState, Msg: "memory map already generated"}
	// ErrNotGenerated indicates a save was attempted before generation.
	ErrNotGenerated = &Error{Kind: ErrKindState, Msg: "no partitions, generate the memory map first"}
	// ErrReadUnsupported indicates the map has no reader for its persisted format.
	ErrReadUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "reading this memory map format is not supported"}
)

// Errorf builds an *Error of the given kind.
func Errorf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// OptionErrorf builds an *Error that names the offending bspconfig option.
func OptionErrorf(kind ErrKind, option, format string, args ...any) *Error {
	return &Error{Kind: kind, Option: option, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around cause.
func Wrap(kind ErrKind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind ErrKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// OptionOf returns the option named by the first *Error in err's chain.
func OptionOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Option
	}
	return ""
}
