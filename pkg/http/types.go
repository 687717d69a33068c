// Package http provides HTTP/1.1 message parsing and serialization per RFC 9112.
//
// This package converts one complete message held in a byte slice into a
// Request or Response, converts such a value back into its exact wire bytes,
// and offers builders for constructing messages directly. It performs no I/O
// of its own beyond the optional Decoder and Encoder stream adapters.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Request and Response values are immutable once built or parsed; accessors
// hand out copies.
//
// # Parsing APIs
//
// The caller chooses the message kind:
//
//   - UnmarshalRequest/UnmarshalResponse - Fast direct parsing
//   - ParseRequestPrefix/ParseResponsePrefix - Same, reporting bytes consumed
//   - Parse/ParseReader - AST-based parsing via shape-core
//   - NewDecoder - Streaming io.Reader-based parsing
//
// # Body framing
//
// A body is exactly Content-Length bytes. Without Content-Length it is the
// rest of the buffer, except that Transfer-Encoding: chunked yields an empty
// body; chunked payloads can be decoded separately with DecodeChunked.
package http

import "bytes"

// Request represents an HTTP/1.1 request message.
type Request struct {
	method  Method
	uri     string // raw request-target, not validated as a URI
	version Version
	headers Headers
	body    []byte // nil if none
}

// Method returns the request method.
func (r *Request) Method() Method { return r.method }

// URI returns the raw request-target, e.g. "/api/users?q=foo".
func (r *Request) URI() string { return r.uri }

// Version returns the protocol version.
func (r *Request) Version() Version { return r.version }

// Headers returns a copy of the headers.
func (r *Request) Headers() Headers { return r.headers.Clone() }

// Header returns the first value of the named header (case-insensitive).
func (r *Request) Header(name string) (string, bool) { return r.headers.Get(name) }

// Body returns a copy of the body, or nil if it is empty.
func (r *Request) Body() []byte { return bytes.Clone(r.body) }

// Response represents an HTTP/1.1 response message.
type Response struct {
	version Version
	status  StatusCode
	reason  string // canonical phrase unless overridden
	headers Headers
	body    []byte // nil if none
}

// Version returns the protocol version.
func (r *Response) Version() Version { return r.version }

// Status returns the status code.
func (r *Response) Status() StatusCode { return r.status }

// Reason returns the reason phrase as sent or received.
func (r *Response) Reason() string { return r.reason }

// Headers returns a copy of the headers.
func (r *Response) Headers() Headers { return r.headers.Clone() }

// Header returns the first value of the named header (case-insensitive).
func (r *Response) Header(name string) (string, bool) { return r.headers.Get(name) }

// Body returns a copy of the body, or nil if it is empty.
func (r *Response) Body() []byte { return bytes.Clone(r.body) }

// Message is the interface shared by Request and Response.
type Message interface {
	GetVersion() Version
	GetHeaders() Headers
	GetBody() []byte
	AppendBytes(buf []byte) []byte
}

// GetVersion returns the HTTP version.
func (r *Request) GetVersion() Version { return r.version }

// GetHeaders returns a copy of the headers.
func (r *Request) GetHeaders() Headers { return r.Headers() }

// GetBody returns a copy of the body bytes.
func (r *Request) GetBody() []byte { return r.Body() }

// GetVersion returns the HTTP version.
func (r *Response) GetVersion() Version { return r.version }

// GetHeaders returns a copy of the headers.
func (r *Response) GetHeaders() Headers { return r.Headers() }

// GetBody returns a copy of the body bytes.
func (r *Response) GetBody() []byte { return r.Body() }

// Marshaler is the interface implemented by types that can marshal themselves
// into valid HTTP wire format.
type Marshaler interface {
	MarshalHTTP() ([]byte, error)
}

// Unmarshaler is the interface implemented by types that can unmarshal
// an HTTP wire-format description of themselves.
type Unmarshaler interface {
	UnmarshalHTTP([]byte) error
}
