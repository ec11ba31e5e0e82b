// Package codecerr defines the single error kind that every encode/decode
// failure in this module surfaces as, following the sentinel-plus-wrap
// style used throughout this codebase's error handling.
package codecerr

import "github.com/pkg/errors"

// Kind classifies why a CodecError occurred. There is deliberately one
// error type for the whole module; Kind is how callers branch on it.
type Kind int

const (
	// TypeMismatch: a field or container element's wire type tag does
	// not equal the schema's declared type.
	TypeMismatch Kind = iota
	// UnknownType: a type tag outside the recognized enumeration was
	// encountered somewhere a value had to be decoded.
	UnknownType
	// EmptyStructRead: a struct schema with no declared fields was
	// handed to the reader.
	EmptyStructRead
	// InvalidBooleanContext: a bool value was to be written outside
	// of a struct field (i.e. as a list/set/map element).
	InvalidBooleanContext
	// UnsupportedWrite: the writer was asked to emit a value whose
	// schema type it does not know how to put on the wire.
	UnsupportedWrite
)

func (k Kind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case UnknownType:
		return "UnknownType"
	case EmptyStructRead:
		return "EmptyStructRead"
	case InvalidBooleanContext:
		return "InvalidBooleanContext"
	case UnsupportedWrite:
		return "UnsupportedWrite"
	default:
		return "Unknown"
	}
}

// CodecError is the one error type this module ever returns from Encode
// or Decode. It carries a Kind for programmatic branching and a
// human-readable message (typically built with errors.Wrapf at the call
// site, so the chain still prints a full "why").
type CodecError struct {
	Kind Kind
	msg  string
	Err  error
}

func (e *CodecError) Error() string {
	if e.Err != nil {
		return e.msg + ": " + e.Err.Error()
	}
	return e.msg
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// New builds a CodecError of the given kind with the given message.
func New(kind Kind, msg string) error {
	return &CodecError{Kind: kind, msg: msg}
}

// Wrap builds a CodecError of the given kind, wrapping an underlying
// cause the way errors.Wrap attaches context to a sentinel.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return New(kind, msg)
	}
	return &CodecError{Kind: kind, msg: msg, Err: err}
}

// Is reports whether err is a CodecError of the given kind, unwrapping
// through any errors.Wrap chain to find it.
func Is(err error, kind Kind) bool {
	var ce *CodecError
	for err != nil {
		if c, ok := err.(*CodecError); ok {
			ce = c
			break
		}
		err = errors.Unwrap(err)
	}
	return ce != nil && ce.Kind == kind
}
