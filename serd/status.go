package serd

import "fmt"

// Status is a stable result code returned by reader, writer and sink
// operations. The integer values are part of the public contract and must
// not be renumbered.
type Status int

const (
	Success Status = 0
	Failure Status = 1
)

const (
	ErrUnknown Status = iota + 2
	ErrBadSyntax
	ErrBadArg
	ErrBadIRI
	ErrNotFound
	ErrIDClash
	ErrBadCURIE
	ErrInternal
	ErrOverflow
	ErrBadText
	ErrNoData
	ErrBadStream
)

// String renders the status as its symbolic name.
func (s Status) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	case ErrUnknown:
		return "ERR_UNKNOWN"
	case ErrBadSyntax:
		return "ERR_BAD_SYNTAX"
	case ErrBadArg:
		return "ERR_BAD_ARG"
	case ErrBadIRI:
		return "ERR_BAD_IRI"
	case ErrNotFound:
		return "ERR_NOT_FOUND"
	case ErrIDClash:
		return "ERR_ID_CLASH"
	case ErrBadCURIE:
		return "ERR_BAD_CURIE"
	case ErrInternal:
		return "ERR_INTERNAL"
	case ErrOverflow:
		return "ERR_OVERFLOW"
	case ErrBadText:
		return "ERR_BAD_TEXT"
	case ErrNoData:
		return "ERR_NO_DATA"
	case ErrBadStream:
		return "ERR_BAD_STREAM"
	default:
		return "ERR_UNKNOWN"
	}
}

// IsSuccess reports whether status is SUCCESS. It reports false for
// FAILURE, even though FAILURE is a sentinel rather than a fatal error:
// readers use it to signal a framing terminator or true end of stream (see
// Reader.ReadChunk).
func (s Status) IsSuccess() bool { return s == Success }

// Error is the concrete error type surfaced by this package. It carries the
// status code, an optional Cursor pinpointing where the problem occurred,
// and a human-readable message.
type Error struct {
	Status  Status
	Cursor  *Cursor
	Message string
}

func (e *Error) Error() string {
	if e.Cursor != nil {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Cursor.File.String(), e.Cursor.Line, e.Cursor.Col, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

// newError builds an *Error, optionally attaching a cursor snapshot.
func newError(status Status, cur *Cursor, format string, args ...interface{}) *Error {
	var snapshot *Cursor
	if cur != nil {
		c := *cur
		snapshot = &c
	}
	return &Error{Status: status, Cursor: snapshot, Message: fmt.Sprintf(format, args...)}
}
