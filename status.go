package serd

import "fmt"

// Status is the single result code enumeration shared by every operation in
// the package, mirroring the taxonomy of the system this library is modeled
// on: success/failure/no-op states plus a small set of caller- and
// environment-level faults.
type Status int

// The full status enumeration. StatusSuccess is always the zero value so a
// freshly zeroed Status reads as success.
const (
	StatusSuccess Status = iota
	StatusFailure
	StatusBadArg
	StatusBadCall
	StatusBadAlloc
	StatusBadRead
	StatusBadWrite
	StatusBadStack
	StatusBadCursor
	StatusBadSyntax
	StatusBadText
	StatusBadLiteral
	StatusBadURI
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusBadArg:
		return "bad argument"
	case StatusBadCall:
		return "bad call"
	case StatusBadAlloc:
		return "allocation failed"
	case StatusBadRead:
		return "read failed"
	case StatusBadWrite:
		return "write failed"
	case StatusBadStack:
		return "stack budget exceeded"
	case StatusBadCursor:
		return "cursor invalidated"
	case StatusBadSyntax:
		return "syntax error"
	case StatusBadText:
		return "invalid text"
	case StatusBadLiteral:
		return "invalid literal"
	case StatusBadURI:
		return "invalid URI"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Error adapts a Status plus optional context into the standard error
// interface. A nil *Error always means success; callers should never
// construct an *Error for StatusSuccess.
type Error struct {
	Status  Status
	Context string
	Caret   *Caret
}

func (e *Error) Error() string {
	if e == nil {
		return StatusSuccess.String()
	}
	msg := e.Status.String()
	if e.Context != "" {
		msg = msg + ": " + e.Context
	}
	if e.Caret != nil {
		msg = fmt.Sprintf("%d:%d: %s", e.Caret.Line, e.Caret.Col, msg)
	}
	return msg
}

// Is lets errors.Is(err, ErrBadSyntax) (or any other Err* sentinel) match by status code instead of
// pointer identity, so every *Error carrying the same Status compares equal
// from the caller's point of view regardless of context/caret.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status
}

// statusErr builds a non-nil error for a non-success status. It panics if
// called with StatusSuccess, since success must always be represented as a
// nil error (a non-nil *Error wrapping StatusSuccess is the classic
// typed-nil-interface trap).
func statusErr(s Status, context string) error {
	if s == StatusSuccess {
		panic("serd: statusErr called with StatusSuccess")
	}
	return &Error{Status: s, Context: context}
}

func statusErrAt(s Status, context string, caret *Caret) error {
	if s == StatusSuccess {
		panic("serd: statusErrAt called with StatusSuccess")
	}
	return &Error{Status: s, Context: context, Caret: caret}
}

// Sentinel errors, one per non-success status. Use errors.Is(err,
// serd.ErrBadArg) etc.
var (
	ErrFailure    = &Error{Status: StatusFailure}
	ErrBadArg     = &Error{Status: StatusBadArg}
	ErrBadCall    = &Error{Status: StatusBadCall}
	ErrBadAlloc   = &Error{Status: StatusBadAlloc}
	ErrBadRead    = &Error{Status: StatusBadRead}
	ErrBadWrite   = &Error{Status: StatusBadWrite}
	ErrBadStack   = &Error{Status: StatusBadStack}
	ErrBadCursor  = &Error{Status: StatusBadCursor}
	ErrBadSyntax  = &Error{Status: StatusBadSyntax}
	ErrBadText    = &Error{Status: StatusBadText}
	ErrBadLiteral = &Error{Status: StatusBadLiteral}
	ErrBadURI     = &Error{Status: StatusBadURI}
)

// StatusOf extracts the Status carried by an error produced by this
// package, or StatusSuccess if err is nil, or StatusFailure for any other
// non-nil error (e.g. an I/O error from a caller-supplied source/sink
// surfacing through a Status-agnostic path).
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	if e, ok := err.(*Error); ok {
		return e.Status
	}
	return StatusFailure
}
