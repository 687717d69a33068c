package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shapestone/shape-httpcodec/internal/fastparser"
)

// Parse errors. Every error returned by the Unmarshal functions and the
// Decoder satisfies errors.Is against exactly one of these.
var (
	// ErrIncompleteMessage means the head is not terminated or the declared
	// body is longer than the data. More bytes may complete the message.
	ErrIncompleteMessage = fastparser.ErrIncompleteMessage
	// ErrMalformedStartLine means the request or status line has the wrong shape.
	ErrMalformedStartLine = fastparser.ErrMalformedStartLine
	// ErrUnsupportedVersion means the version is neither HTTP/1.0 nor HTTP/1.1.
	ErrUnsupportedVersion = fastparser.ErrUnsupportedVersion
	// ErrInvalidStatusCode means the status code is non-numeric or outside [100, 599].
	ErrInvalidStatusCode = fastparser.ErrInvalidStatusCode
	// ErrMalformedHeader means a header line has no colon or an empty name.
	ErrMalformedHeader = fastparser.ErrMalformedHeader
	// ErrInvalidContentLength means Content-Length is not a non-negative
	// decimal, overflows, or is repeated with different values.
	ErrInvalidContentLength = fastparser.ErrInvalidContentLength
	// ErrInvalidEncoding means the head contains bytes that are not UTF-8.
	ErrInvalidEncoding = fastparser.ErrInvalidEncoding
	// ErrMalformedChunk means a chunked body could not be decoded.
	ErrMalformedChunk = fastparser.ErrMalformedChunk
	// ErrMessageTooLarge means a Decoder buffered MaxMessageSize bytes
	// without completing a message.
	ErrMessageTooLarge = errors.New("message too large")
)

// Builder errors, one per message invariant.
var (
	ErrInvalidMethod      = errors.New("http: invalid method")
	ErrInvalidURI         = errors.New("http: invalid request URI")
	ErrInvalidVersion     = errors.New("http: invalid version")
	ErrInvalidStatus      = errors.New("http: status code out of range")
	ErrInvalidReason      = errors.New("http: invalid reason phrase")
	ErrInvalidHeaderName  = errors.New("http: invalid header name")
	ErrInvalidHeaderValue = errors.New("http: invalid header value")
	ErrBuilderConsumed    = errors.New("http: builder already finished")
)

// ParseError represents an error that occurred during HTTP message parsing.
type ParseError struct {
	Err     error  // one of the Err* parse categories
	Message string // human-readable detail
	Line    int    // 1-indexed line number where error occurred (0 if unknown)
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("http: ")
	if e.Line > 0 {
		fmt.Fprintf(&b, "parse error at line %d: ", e.Line)
	}
	b.WriteString(e.Err.Error())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Unwrap returns the error category.
func (e *ParseError) Unwrap() error { return e.Err }

// newParseError converts a fastparser failure into a *ParseError.
func newParseError(err error) error {
	var se *fastparser.SyntaxError
	if errors.As(err, &se) {
		return &ParseError{Err: se.Err, Message: se.Msg, Line: se.Line}
	}
	return err
}

// FieldError identifies a single builder field that failed validation.
type FieldError struct {
	Field string // "method", "uri", "version", "status", "reason", "header[i].name", "header[i].value"
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s = %q", e.Err, e.Field, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// BuildError lists every field that failed validation in Finish.
type BuildError struct {
	Fields []*FieldError
}

func (e *BuildError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "http: build failed: " + strings.Join(msgs, "; ")
}

// Unwrap exposes each field error to errors.Is and errors.As.
func (e *BuildError) Unwrap() []error {
	errs := make([]error, len(e.Fields))
	for i, f := range e.Fields {
		errs[i] = f
	}
	return errs
}
