package fastparser

import (
	"errors"
	"fmt"
)

// Parse failure categories. Every error returned by the parser wraps exactly
// one of these.
var (
	ErrIncompleteMessage    = errors.New("incomplete message")
	ErrMalformedStartLine   = errors.New("malformed start line")
	ErrUnsupportedVersion   = errors.New("unsupported HTTP version")
	ErrInvalidStatusCode    = errors.New("invalid status code")
	ErrMalformedHeader      = errors.New("malformed header")
	ErrInvalidContentLength = errors.New("invalid Content-Length")
	ErrInvalidEncoding      = errors.New("invalid UTF-8 encoding")
	ErrMalformedChunk       = errors.New("malformed chunked body")
)

// SyntaxError describes where in the input a parse failure happened.
type SyntaxError struct {
	Err  error  // one of the Err* categories above
	Line int    // 1-indexed line of the head, 0 if the failure is in the body
	Msg  string // detail
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Msg)
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
