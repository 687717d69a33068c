package http

// AppendBytes appends the wire form of r to buf:
// "METHOD URI VERSION\r\n", headers, an empty line, then the body.
func (r *Request) AppendBytes(buf []byte) []byte {
	buf = appendRequestLine(buf, r.method.String(), r.uri, r.version.String())
	buf = appendHeaders(buf, r.headers, len(r.body))
	return append(buf, r.body...)
}

// Bytes returns the wire form of r. It cannot fail: a Request obtained from a
// builder or the parser always holds a well-formed start line and headers.
func (r *Request) Bytes() []byte {
	return r.AppendBytes(make([]byte, 0, r.sizeHint()))
}

// AppendBytes appends the wire form of r to buf:
// "VERSION STATUS REASON\r\n", headers, an empty line, then the body.
func (r *Response) AppendBytes(buf []byte) []byte {
	buf = appendStatusLine(buf, r.version.String(), int(r.status), r.reason)
	buf = appendHeaders(buf, r.headers, len(r.body))
	return append(buf, r.body...)
}

// Bytes returns the wire form of r.
func (r *Response) Bytes() []byte {
	return r.AppendBytes(make([]byte, 0, r.sizeHint()))
}

// appendHeaders appends all headers in "Key: Value\r\n" format followed by the
// empty line. A non-empty body without a Content-Length header gets one
// computed from bodyLen; an existing Content-Length is written as-is.
func appendHeaders(buf []byte, headers Headers, bodyLen int) []byte {
	for _, h := range headers {
		buf = appendHeaderLine(buf, h.Key, h.Value)
	}
	if bodyLen > 0 && !headers.Has("Content-Length") {
		buf = appendContentLength(buf, bodyLen)
	}
	return appendCRLF(buf) // empty line before body
}

func (r *Request) sizeHint() int {
	return len(r.method) + len(r.uri) + len("  HTTP/1.1\r\n\r\n") + headersSize(r.headers) + contentLengthSize + len(r.body)
}

func (r *Response) sizeHint() int {
	return len("HTTP/1.1 200 \r\n\r\n") + len(r.reason) + headersSize(r.headers) + contentLengthSize + len(r.body)
}

func headersSize(headers Headers) int {
	n := 0
	for _, h := range headers {
		n += len(h.Key) + len(h.Value) + len(": \r\n")
	}
	return n
}

// MarshalHTTP implements Marshaler.
func (r *Request) MarshalHTTP() ([]byte, error) { return r.Bytes(), nil }

// MarshalHTTP implements Marshaler.
func (r *Response) MarshalHTTP() ([]byte, error) { return r.Bytes(), nil }
