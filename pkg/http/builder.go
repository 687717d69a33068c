package http

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shapestone/shape-httpcodec/internal/fastparser"
)

// RequestBuilder assembles a Request through chained setters. Nothing is
// validated until Finish. A builder is single-use: after Finish, setters do
// nothing and Finish returns ErrBuilderConsumed.
type RequestBuilder struct {
	method   Method
	uri      string
	version  Version
	headers  Headers
	body     []byte
	consumed bool
	wire     bool // validate only what the parser itself rejects
}

// NewRequestBuilder starts a request with an explicit method, defaulting to
// HTTP/1.1.
func NewRequestBuilder(method Method, uri string) *RequestBuilder {
	return &RequestBuilder{method: method, uri: uri, version: HTTP11}
}

// GetRequest starts a GET request.
func GetRequest(uri string) *RequestBuilder { return NewRequestBuilder(MethodGet, uri) }

// PostRequest starts a POST request.
func PostRequest(uri string) *RequestBuilder { return NewRequestBuilder(MethodPost, uri) }

// PutRequest starts a PUT request.
func PutRequest(uri string) *RequestBuilder { return NewRequestBuilder(MethodPut, uri) }

// DeleteRequest starts a DELETE request.
func DeleteRequest(uri string) *RequestBuilder { return NewRequestBuilder(MethodDelete, uri) }

// HeadRequest starts a HEAD request.
func HeadRequest(uri string) *RequestBuilder { return NewRequestBuilder(MethodHead, uri) }

// OptionsRequest starts an OPTIONS request.
func OptionsRequest(uri string) *RequestBuilder { return NewRequestBuilder(MethodOptions, uri) }

// PatchRequest starts a PATCH request.
func PatchRequest(uri string) *RequestBuilder { return NewRequestBuilder(MethodPatch, uri) }

// Method replaces the method.
func (b *RequestBuilder) Method(m Method) *RequestBuilder {
	if !b.consumed {
		b.method = m
	}
	return b
}

// URI replaces the request-target.
func (b *RequestBuilder) URI(uri string) *RequestBuilder {
	if !b.consumed {
		b.uri = uri
	}
	return b
}

// AppendURI appends s to the request-target, e.g. a path segment or query.
func (b *RequestBuilder) AppendURI(s string) *RequestBuilder {
	if !b.consumed {
		b.uri += s
	}
	return b
}

// Version sets the protocol version.
func (b *RequestBuilder) Version(v Version) *RequestBuilder {
	if !b.consumed {
		b.version = v
	}
	return b
}

// Header appends one header; existing headers of the same name are kept.
func (b *RequestBuilder) Header(name, value string) *RequestBuilder {
	if !b.consumed {
		b.headers.Add(name, value)
	}
	return b
}

// RequestID appends an X-Request-ID header holding a random UUID.
func (b *RequestBuilder) RequestID() *RequestBuilder {
	return b.Header("X-Request-ID", uuid.NewString())
}

// Body replaces the body with a copy of body.
func (b *RequestBuilder) Body(body []byte) *RequestBuilder {
	if !b.consumed {
		b.body = copyBody(body)
	}
	return b
}

// BodyString replaces the body with s.
func (b *RequestBuilder) BodyString(s string) *RequestBuilder {
	return b.Body([]byte(s))
}

// Finish validates the accumulated fields and returns the Request. On
// failure the error is a *BuildError naming every invalid field. A
// Content-Length header must be a decimal that agrees with any repeat; its
// value is otherwise trusted, not compared with the body. The builder is
// consumed either way.
func (b *RequestBuilder) Finish() (*Request, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	v := validator{wire: b.wire}
	v.method(b.method)
	v.uri(b.uri)
	v.version(b.version)
	v.headers(b.headers)
	if err := v.err(); err != nil {
		return nil, err
	}

	req := &Request{
		method:  b.method,
		uri:     b.uri,
		version: b.version,
		headers: b.headers.Clone(),
		body:    b.body,
	}
	b.headers, b.body = nil, nil
	return req, nil
}

// ResponseBuilder assembles a Response through chained setters. It follows the
// same single-use rules as RequestBuilder.
type ResponseBuilder struct {
	version   Version
	status    StatusCode
	reason    string
	reasonSet bool
	headers   Headers
	body      []byte
	consumed  bool
	wire      bool
}

// NewResponseBuilder starts a response with an explicit status code and its
// canonical reason phrase, defaulting to HTTP/1.1. An out-of-range code is
// reported by Finish.
func NewResponseBuilder(status StatusCode) *ResponseBuilder {
	return &ResponseBuilder{version: HTTP11, status: status, reason: status.Reason()}
}

// OKResponse starts a 200 OK response.
func OKResponse() *ResponseBuilder { return NewResponseBuilder(StatusOK) }

// CreatedResponse starts a 201 Created response.
func CreatedResponse() *ResponseBuilder { return NewResponseBuilder(StatusCreated) }

// NoContentResponse starts a 204 No Content response.
func NoContentResponse() *ResponseBuilder { return NewResponseBuilder(StatusNoContent) }

// BadRequestResponse starts a 400 Bad Request response.
func BadRequestResponse() *ResponseBuilder { return NewResponseBuilder(StatusBadRequest) }

// UnauthorizedResponse starts a 401 Unauthorized response.
func UnauthorizedResponse() *ResponseBuilder { return NewResponseBuilder(StatusUnauthorized) }

// ForbiddenResponse starts a 403 Forbidden response.
func ForbiddenResponse() *ResponseBuilder { return NewResponseBuilder(StatusForbidden) }

// NotFoundResponse starts a 404 Not Found response.
func NotFoundResponse() *ResponseBuilder { return NewResponseBuilder(StatusNotFound) }

// MethodNotAllowedResponse starts a 405 Method Not Allowed response.
func MethodNotAllowedResponse() *ResponseBuilder { return NewResponseBuilder(StatusMethodNotAllowed) }

// InternalServerErrorResponse starts a 500 Internal Server Error response.
func InternalServerErrorResponse() *ResponseBuilder {
	return NewResponseBuilder(StatusInternalServerError)
}

// ServiceUnavailableResponse starts a 503 Service Unavailable response.
func ServiceUnavailableResponse() *ResponseBuilder {
	return NewResponseBuilder(StatusServiceUnavailable)
}

// Status replaces the status code. The reason phrase follows the new code
// unless Reason was called.
func (b *ResponseBuilder) Status(code StatusCode) *ResponseBuilder {
	if !b.consumed {
		b.status = code
		if !b.reasonSet {
			b.reason = code.Reason()
		}
	}
	return b
}

// Reason overrides the canonical reason phrase.
func (b *ResponseBuilder) Reason(reason string) *ResponseBuilder {
	if !b.consumed {
		b.reason, b.reasonSet = reason, true
	}
	return b
}

// Version sets the protocol version.
func (b *ResponseBuilder) Version(v Version) *ResponseBuilder {
	if !b.consumed {
		b.version = v
	}
	return b
}

// Header appends one header; existing headers of the same name are kept.
func (b *ResponseBuilder) Header(name, value string) *ResponseBuilder {
	if !b.consumed {
		b.headers.Add(name, value)
	}
	return b
}

// Body replaces the body with a copy of body.
func (b *ResponseBuilder) Body(body []byte) *ResponseBuilder {
	if !b.consumed {
		b.body = copyBody(body)
	}
	return b
}

// BodyString replaces the body with s.
func (b *ResponseBuilder) BodyString(s string) *ResponseBuilder {
	return b.Body([]byte(s))
}

// Finish validates the accumulated fields and returns the Response.
func (b *ResponseBuilder) Finish() (*Response, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	v := validator{wire: b.wire}
	v.version(b.version)
	v.status(b.status)
	v.reason(b.reason)
	v.headers(b.headers)
	if err := v.err(); err != nil {
		return nil, err
	}

	resp := &Response{
		version: b.version,
		status:  b.status,
		reason:  b.reason,
		headers: b.headers.Clone(),
		body:    b.body,
	}
	b.headers, b.body = nil, nil
	return resp, nil
}

// validator collects field errors so Finish can report all of them at once.
// In wire mode it accepts everything the parser accepts, so values that came
// out of a parse always pass.
type validator struct {
	fields []*FieldError
	wire   bool
}

func (v *validator) fail(field, value string, err error) {
	v.fields = append(v.fields, &FieldError{Field: field, Value: value, Err: err})
}

func (v *validator) method(m Method) {
	if !fastparser.IsToken(string(m)) {
		v.fail("method", string(m), ErrInvalidMethod)
	}
}

// uri rejects anything that would change how the request line splits:
// empty targets, spaces, and control characters.
func (v *validator) uri(uri string) {
	bad := isCTLOrSpace
	if v.wire {
		bad = isSpaceOrLineBreak
	}
	if uri == "" || !utf8.ValidString(uri) || strings.IndexFunc(uri, bad) >= 0 {
		v.fail("uri", uri, ErrInvalidURI)
	}
}

func (v *validator) version(ver Version) {
	if !ver.Valid() {
		v.fail("version", ver.String(), ErrInvalidVersion)
	}
}

func (v *validator) status(code StatusCode) {
	if !code.Valid() {
		v.fail("status", code.String(), ErrInvalidStatus)
	}
}

func (v *validator) reason(reason string) {
	if !utf8.ValidString(reason) || strings.ContainsAny(reason, v.forbidden()) {
		v.fail("reason", reason, ErrInvalidReason)
	}
}

// headers checks that every pair survives a parse unchanged: names are tokens
// (in wire mode, anything without a colon or line break) and values carry no
// line breaks or surrounding whitespace.
func (v *validator) headers(headers Headers) {
	for i, h := range headers {
		prefix := "header[" + strconv.Itoa(i) + "]"
		if !v.headerName(h.Key) {
			v.fail(prefix+".name", h.Key, ErrInvalidHeaderName)
		}
		if !v.headerValue(h.Value) {
			v.fail(prefix+".value", h.Value, ErrInvalidHeaderValue)
		}
	}
	v.contentLength(headers)
}

// contentLength rejects Content-Length values the parser would refuse:
// non-decimal values and repeats that disagree.
func (v *validator) contentLength(headers Headers) {
	raw := make([]fastparser.Header, 0, len(headers))
	for _, h := range headers {
		raw = append(raw, fastparser.Header{Key: h.Key, Value: h.Value})
	}
	if _, _, err := fastparser.ContentLength(raw); err != nil {
		cl, _ := headers.Get("Content-Length")
		v.fail("header[Content-Length]", cl, ErrInvalidContentLength)
	}
}

func (v *validator) headerName(name string) bool {
	if !v.wire {
		return fastparser.IsToken(name)
	}
	return name != "" && utf8.ValidString(name) && !strings.ContainsAny(name, ":\r\n")
}

func (v *validator) headerValue(value string) bool {
	if !utf8.ValidString(value) || strings.ContainsAny(value, v.forbidden()) {
		return false
	}
	return strings.Trim(value, " \t") == value
}

func (v *validator) forbidden() string {
	if v.wire {
		return "\r\n"
	}
	return "\r\n\x00"
}

func isSpaceOrLineBreak(r rune) bool {
	return r == ' ' || r == '\r' || r == '\n'
}

func isCTLOrSpace(r rune) bool {
	return r <= ' ' || r == 0x7f
}

func copyBody(body []byte) []byte {
	if len(body) == 0 {
		return nil
	}
	out := make([]byte, len(body))
	copy(out, body)
	return out
}
