// Package fastparser implements a high-performance HTTP/1.1 message parser
// without AST construction. It scans bytes directly into Request/Response types.
//
// A message is parsed from one complete buffer: the head must be terminated by
// CRLF CRLF, and the body is framed by Content-Length or, when absent, by the
// end of the buffer. Chunked bodies are never decoded here; see Dechunk.
package fastparser

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Request represents a parsed HTTP request.
type Request struct {
	Method  string
	Target  string
	Version string
	Headers []Header
	Body    []byte
}

// Response represents a parsed HTTP response.
type Response struct {
	Version    string
	StatusCode int
	Reason     string
	Headers    []Header
	Body       []byte
}

// Header is a key-value pair.
type Header struct {
	Key   string
	Value string
}

// BodyMode selects how a body without Content-Length is framed.
type BodyMode int

const (
	// BodyToEnd takes the rest of the buffer as the body.
	BodyToEnd BodyMode = iota
	// BodyNone frames an empty body. Stream decoders use it for requests,
	// where the rest of the buffer belongs to the next message.
	BodyNone
)

var headTerminator = []byte("\r\n\r\n")

// Parser scans a single message out of data. It never retains data beyond the
// call: every string and body it returns is a copy.
type Parser struct {
	data      []byte
	head      []byte // data before the blank line
	pos       int    // read offset into head
	line      int    // 1-indexed number of the line being parsed
	bodyStart int    // offset of the body region in data
	mode      BodyMode
}

// initParser initializes a parser in-place (stack-friendly, avoids heap alloc).
func initParser(p *Parser, data []byte) {
	p.data = data
	p.head = nil
	p.pos = 0
	p.line = 0
	p.bodyStart = 0
	p.mode = BodyToEnd
}

// SetBodyMode changes how a body without Content-Length is framed.
func (p *Parser) SetBodyMode(mode BodyMode) {
	p.mode = mode
}

// ParseRequest parses an HTTP request message. It returns the number of bytes
// of data the message occupies; anything after that is not part of it.
func (p *Parser) ParseRequest() (*Request, int, error) {
	if err := p.splitHead(); err != nil {
		return nil, 0, err
	}

	method, target, version, err := p.parseRequestLine()
	if err != nil {
		return nil, 0, err
	}

	headers, err := p.parseHeaders()
	if err != nil {
		return nil, 0, err
	}

	body, n, err := p.parseBody(headers)
	if err != nil {
		return nil, 0, err
	}

	return &Request{
		Method:  method,
		Target:  target,
		Version: version,
		Headers: headers,
		Body:    body,
	}, p.bodyStart + n, nil
}

// ParseResponse parses an HTTP response message. It returns the number of bytes
// of data the message occupies.
func (p *Parser) ParseResponse() (*Response, int, error) {
	if err := p.splitHead(); err != nil {
		return nil, 0, err
	}

	version, statusCode, reason, err := p.parseStatusLine()
	if err != nil {
		return nil, 0, err
	}

	headers, err := p.parseHeaders()
	if err != nil {
		return nil, 0, err
	}

	body, n, err := p.parseBody(headers)
	if err != nil {
		return nil, 0, err
	}

	return &Response{
		Version:    version,
		StatusCode: statusCode,
		Reason:     reason,
		Headers:    headers,
		Body:       body,
	}, p.bodyStart + n, nil
}

// splitHead locates the blank line separating head from body.
func (p *Parser) splitHead() error {
	idx := bytes.Index(p.data, headTerminator)
	if idx < 0 {
		return &SyntaxError{Err: ErrIncompleteMessage, Msg: "header block is not terminated by CRLF CRLF"}
	}
	p.head = p.data[:idx]
	p.bodyStart = idx + len(headTerminator)
	return nil
}

// parseRequestLine parses "METHOD SP TARGET SP VERSION".
func (p *Parser) parseRequestLine() (method, target, version string, err error) {
	line := p.readLine()
	if !utf8.Valid(line) {
		return "", "", "", p.errorf(ErrInvalidEncoding, "request line is not valid UTF-8")
	}
	if bytes.IndexByte(line, '\r') >= 0 {
		return "", "", "", p.errorf(ErrMalformedStartLine, "bare CR in request line")
	}

	sp1 := bytes.IndexByte(line, ' ')
	if sp1 < 0 {
		return "", "", "", p.errorf(ErrMalformedStartLine, "no method separator")
	}
	rest := line[sp1+1:]

	sp2 := bytes.IndexByte(rest, ' ')
	if sp2 < 0 {
		return "", "", "", p.errorf(ErrMalformedStartLine, "no version separator")
	}
	methodBytes, targetBytes, versionBytes := line[:sp1], rest[:sp2], rest[sp2+1:]

	if bytes.IndexByte(versionBytes, ' ') >= 0 {
		return "", "", "", p.errorf(ErrMalformedStartLine, "more than three tokens")
	}
	if len(methodBytes) == 0 || len(targetBytes) == 0 || len(versionBytes) == 0 {
		return "", "", "", p.errorf(ErrMalformedStartLine, "empty token")
	}
	if !isTokenBytes(methodBytes) {
		return "", "", "", p.errorf(ErrMalformedStartLine, "method %q is not a token", methodBytes)
	}

	version, ok := internVersion(versionBytes)
	if !ok {
		return "", "", "", p.errorf(ErrUnsupportedVersion, "%q", versionBytes)
	}

	return internMethod(methodBytes), string(targetBytes), version, nil
}

// parseStatusLine parses "VERSION SP STATUS SP REASON". The reason phrase is
// the remainder of the line and may contain spaces.
func (p *Parser) parseStatusLine() (version string, statusCode int, reason string, err error) {
	line := p.readLine()
	if !utf8.Valid(line) {
		return "", 0, "", p.errorf(ErrInvalidEncoding, "status line is not valid UTF-8")
	}
	if bytes.IndexByte(line, '\r') >= 0 {
		return "", 0, "", p.errorf(ErrMalformedStartLine, "bare CR in status line")
	}

	sp1 := bytes.IndexByte(line, ' ')
	if sp1 < 0 {
		return "", 0, "", p.errorf(ErrMalformedStartLine, "no version separator")
	}
	rest := line[sp1+1:]

	sp2 := bytes.IndexByte(rest, ' ')
	if sp2 < 0 {
		return "", 0, "", p.errorf(ErrMalformedStartLine, "no reason phrase separator")
	}
	if sp1 == 0 {
		return "", 0, "", p.errorf(ErrMalformedStartLine, "empty version token")
	}

	version, ok := internVersion(line[:sp1])
	if !ok {
		return "", 0, "", p.errorf(ErrUnsupportedVersion, "%q", line[:sp1])
	}

	code, ok := parseStatusCode(rest[:sp2])
	if !ok {
		return "", 0, "", p.errorf(ErrInvalidStatusCode, "%q", rest[:sp2])
	}

	return version, code, internReason(rest[sp2+1:]), nil
}

// parseHeaders parses every remaining line of the head as "Name: Value".
func (p *Parser) parseHeaders() ([]Header, error) {
	var headers []Header

	for p.pos < len(p.head) {
		line := p.readLine()
		if !utf8.Valid(line) {
			return nil, p.errorf(ErrInvalidEncoding, "header line is not valid UTF-8")
		}
		if bytes.IndexByte(line, '\r') >= 0 {
			return nil, p.errorf(ErrMalformedHeader, "bare CR in header line")
		}

		colon := bytes.IndexByte(line, ':')
		if colon < 0 {
			return nil, p.errorf(ErrMalformedHeader, "no colon in %q", line)
		}
		if colon == 0 {
			return nil, p.errorf(ErrMalformedHeader, "empty header name")
		}

		if headers == nil {
			headers = make([]Header, 0, 8)
		}
		headers = append(headers, Header{
			Key:   internHeaderName(line[:colon]),
			Value: string(trimOWS(line[colon+1:])),
		})
	}

	return headers, nil
}

// parseBody frames the body from the region after the head:
// 1. Content-Length → exactly N bytes
// 2. Transfer-Encoding: chunked → empty (chunked bodies are not decoded)
// 3. Neither → per the parser's BodyMode
func (p *Parser) parseBody(headers []Header) ([]byte, int, error) {
	region := p.data[p.bodyStart:]

	cl, present, err := ContentLength(headers)
	if err != nil {
		return nil, 0, err
	}
	if present {
		if cl > int64(len(region)) {
			return nil, 0, &SyntaxError{
				Err: ErrIncompleteMessage,
				Msg: fmt.Sprintf("body truncated: expected %d bytes but only %d available", cl, len(region)),
			}
		}
		return copyBytes(region[:cl]), int(cl), nil
	}

	if isChunked(headers) || p.mode == BodyNone {
		return nil, 0, nil
	}
	return copyBytes(region), len(region), nil
}

// readLine returns the next line of the head, splitting at LF and dropping
// the CR of a CRLF pair. The final line has no terminator.
func (p *Parser) readLine() []byte {
	p.line++
	rest := p.head[p.pos:]
	lf := bytes.IndexByte(rest, '\n')
	if lf < 0 {
		p.pos = len(p.head)
		return rest
	}
	p.pos += lf + 1
	line := rest[:lf]
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	return line
}

// ContentLength returns the Content-Length of headers and whether one was
// present. Repeated Content-Length headers must agree.
func ContentLength(headers []Header) (int64, bool, error) {
	var (
		n       int64
		present bool
		first   string
	)
	for _, h := range headers {
		if !eqFold(h.Key, "Content-Length") {
			continue
		}
		if present {
			if h.Value != first {
				return 0, false, &SyntaxError{Err: ErrInvalidContentLength, Msg: fmt.Sprintf("conflicting values %q and %q", first, h.Value)}
			}
			continue
		}
		v, err := strconv.ParseUint(h.Value, 10, 63)
		if err != nil {
			return 0, false, &SyntaxError{Err: ErrInvalidContentLength, Msg: fmt.Sprintf("%q", h.Value)}
		}
		n, present, first = int64(v), true, h.Value
	}
	return n, present, nil
}

// parseStatusCode accepts exactly three ASCII digits in [100, 599].
func parseStatusCode(b []byte) (int, bool) {
	if len(b) != 3 {
		return 0, false
	}
	code := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		code = code*10 + int(c-'0')
	}
	if code < 100 || code > 599 {
		return 0, false
	}
	return code, true
}

// trimOWS trims optional whitespace (SP and HTAB) from both ends of b.
func trimOWS(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}
	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
		b = b[:len(b)-1]
	}
	return b
}

func copyBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// isChunked checks if headers contain Transfer-Encoding: chunked.
func isChunked(headers []Header) bool {
	for _, h := range headers {
		if eqFold(h.Key, "Transfer-Encoding") && containsFold(h.Value, "chunked") {
			return true
		}
	}
	return false
}

// IsToken reports whether s is a non-empty RFC 9110 token.
func IsToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isTokenChar(s[i]) {
			return false
		}
	}
	return true
}

func isTokenBytes(b []byte) bool {
	for _, c := range b {
		if !isTokenChar(c) {
			return false
		}
	}
	return len(b) > 0
}

func isTokenChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

// eqFold is a fast ASCII case-insensitive string comparison.
func eqFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// containsFold checks if haystack contains needle (case-insensitive).
func containsFold(haystack, needle string) bool {
	hl, nl := len(haystack), len(needle)
	if nl > hl {
		return false
	}
	for i := 0; i <= hl-nl; i++ {
		if eqFold(haystack[i:i+nl], needle) {
			return true
		}
	}
	return false
}

func (p *Parser) errorf(kind error, format string, args ...interface{}) error {
	return &SyntaxError{Err: kind, Line: p.line, Msg: fmt.Sprintf(format, args...)}
}
