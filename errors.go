package matroska

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Kind classifies why parsing failed.
//
// Every structural mismatch the parser can detect maps to one of these
// kinds; there are no panics for malformed input.
type Kind int

const (
	// KindIo signals that the underlying read or seek failed.
	KindIo Kind = iota
	// KindInvalidID signals a VINT element ID wider than 4 bytes, or one
	// that ran out of bytes before it was fully read.
	KindInvalidID
	// KindInvalidSize signals a VINT element size wider than 8 bytes, or
	// one that ran out of bytes before it was fully read.
	KindInvalidSize
	// KindInvalidInt signals a declared integer body width outside 0..8.
	KindInvalidInt
	// KindInvalidFloat signals a declared float body width that is
	// neither 4 nor 8 bytes.
	KindInvalidFloat
	// KindInvalidDate signals a date body width that is not 8 bytes.
	KindInvalidDate
	// KindInvalidUTF8 signals a string or UTF8 body that fails UTF-8
	// validation.
	KindInvalidUTF8
	// KindCorruptFile signals a structural violation: a child element
	// overrunning its parent's declared size, a SeekHead cycle, a seek
	// offset overflow, or an element declared larger than the configured
	// ceiling.
	KindCorruptFile
)

func (k Kind) String() string {
	switch k {
	case KindIo:
		return "io"
	case KindInvalidID:
		return "invalid_id"
	case KindInvalidSize:
		return "invalid_size"
	case KindInvalidInt:
		return "invalid_int"
	case KindInvalidFloat:
		return "invalid_float"
	case KindInvalidDate:
		return "invalid_date"
	case KindInvalidUTF8:
		return "invalid_utf8"
	case KindCorruptFile:
		return "corrupt_file"
	default:
		return "unknown"
	}
}

// Error is the single error type surfaced by this package. It carries a
// Kind for programmatic dispatch and a cause produced with
// github.com/pkg/errors so the original capture site is never lost.
type Error struct {
	Kind   Kind
	Reason string
	cause  error
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("matroska: %s: %v", e.Kind, e.cause)
	}
	if e.cause == nil {
		return fmt.Sprintf("matroska: %s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("matroska: %s: %s: %v", e.Kind, e.Reason, e.cause)
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As still reach it
// (e.g. errors.Is(err, io.EOF)).
func (e *Error) Unwrap() error {
	return e.cause
}

func newErr(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

func wrapErr(kind Kind, cause error) *Error {
	return &Error{Kind: kind, cause: errors.WithStack(cause)}
}

func wrapErrf(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...), cause: errors.WithStack(cause)}
}

// ioErr wraps a failed read/seek, preserving io.EOF so callers can still
// detect end-of-stream with errors.Is.
func ioErr(cause error) *Error {
	if cause == io.EOF {
		return &Error{Kind: KindIo, cause: cause}
	}
	return wrapErr(KindIo, cause)
}
