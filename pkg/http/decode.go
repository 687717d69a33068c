package http

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shapestone/shape-httpcodec/internal/fastparser"
)

// DefaultMaxMessageSize is the Decoder's buffering limit unless changed.
const DefaultMaxMessageSize = 1 << 20

const readChunkSize = 4096

// Decoder reads HTTP messages from an input stream in HTTP/1.1 wire format.
// It buffers input until one complete message can be framed, and keeps any
// surplus bytes for the next call, so pipelined messages decode in order.
//
// A single Decoder is not safe for concurrent use; create one per goroutine
// or serialize access externally.
type Decoder struct {
	r   io.Reader
	buf []byte
	eof bool

	// MaxMessageSize caps how many bytes may be buffered for one message.
	MaxMessageSize int
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r, MaxMessageSize: DefaultMaxMessageSize}
}

// Decode reads the next HTTP message and stores it in v.
// v must be a *Request or *Response.
func (dec *Decoder) Decode(v interface{}) error {
	switch target := v.(type) {
	case *Request:
		req, err := dec.DecodeRequest()
		if err != nil {
			return err
		}
		*target = *req
		return nil
	case *Response:
		resp, err := dec.DecodeResponse()
		if err != nil {
			return err
		}
		*target = *resp
		return nil
	default:
		return fmt.Errorf("http: Decode unsupported type %T", v)
	}
}

// DecodeRequest reads the next HTTP request from the stream. A request without
// Content-Length has an empty body; whatever follows belongs to the next
// request. A chunked body is consumed from the stream and decoded into Body,
// and the headers are reframed to match: "chunked" leaves Transfer-Encoding
// and Content-Length gives the decoded size. At a clean end of stream it
// returns io.EOF.
func (dec *Decoder) DecodeRequest() (*Request, error) {
	var req *Request
	err := dec.decode(func(data []byte) (int, bool, error) {
		r, n, err := parseRequest(data, fastparser.BodyNone)
		if err != nil {
			return 0, false, err
		}
		if r.headers, r.body, n, err = dechunkAfter(data, n, r.headers, r.body); err != nil {
			return 0, false, err
		}
		req = r
		return n, true, nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// DecodeResponse reads the next HTTP response from the stream. A chunked body
// is decoded as for DecodeRequest. Otherwise a response without Content-Length
// is read until the stream ends, except for 1xx, 204 and 304 responses, which
// have no body.
func (dec *Decoder) DecodeResponse() (*Response, error) {
	var resp *Response
	err := dec.decode(func(data []byte) (int, bool, error) {
		r, n, err := parseResponse(data, fastparser.BodyNone)
		if err != nil {
			return 0, false, err
		}
		if r.headers, r.body, n, err = dechunkAfter(data, n, r.headers, r.body); err != nil {
			return 0, false, err
		}
		if !r.headers.Has("Content-Length") && !r.headers.IsChunked() && responseHasBody(r.status) {
			if !dec.eof {
				return 0, false, nil
			}
			r, n, err = parseResponse(data, fastparser.BodyToEnd)
		}
		resp = r
		return n, true, err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// decode runs parse over the buffered bytes, reading more input while parse
// reports an incomplete message. parse returns the bytes consumed and whether
// the message is final.
func (dec *Decoder) decode(parse func([]byte) (int, bool, error)) error {
	for {
		if len(dec.buf) == 0 && dec.eof {
			return io.EOF
		}
		if len(dec.buf) > 0 {
			n, done, err := parse(dec.buf)
			switch {
			case err == nil && done:
				dec.buf = dec.buf[n:]
				return nil
			case err != nil && !errors.Is(err, ErrIncompleteMessage):
				return err
			case dec.eof:
				if err == nil {
					err = ErrIncompleteMessage
				}
				return fmt.Errorf("http: decode: %w: %w", io.ErrUnexpectedEOF, err)
			}
		}
		if err := dec.fill(); err != nil {
			return err
		}
	}
}

// fill reads one more chunk from the underlying reader.
func (dec *Decoder) fill() error {
	if len(dec.buf) >= dec.MaxMessageSize {
		return fmt.Errorf("http: decode: %w: limit is %d bytes", ErrMessageTooLarge, dec.MaxMessageSize)
	}
	if cap(dec.buf)-len(dec.buf) < readChunkSize {
		grown := make([]byte, len(dec.buf), 2*cap(dec.buf)+readChunkSize)
		copy(grown, dec.buf)
		dec.buf = grown
	}
	limit := min(cap(dec.buf), dec.MaxMessageSize)
	n, err := dec.r.Read(dec.buf[len(dec.buf):limit])
	dec.buf = dec.buf[:len(dec.buf)+n]
	if errors.Is(err, io.EOF) {
		dec.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("http: decode: %w", err)
	}
	return nil
}

// dechunkAfter decodes the chunked body that starts at data[n:] when headers
// declare one, returning the reframed headers, the payload and the new end of
// the message. Other messages pass through unchanged.
func dechunkAfter(data []byte, n int, headers Headers, body []byte) (Headers, []byte, int, error) {
	if !headers.IsChunked() || headers.Has("Content-Length") {
		return headers, body, n, nil
	}
	payload, m, err := fastparser.Dechunk(data[n:])
	if err != nil {
		return nil, nil, 0, newParseError(err)
	}
	return unchunkHeaders(headers, len(payload)), payload, n + m, nil
}

// unchunkHeaders drops the chunked coding from Transfer-Encoding, removing
// the field once no coding is left, and sets Content-Length to size.
func unchunkHeaders(headers Headers, size int) Headers {
	out := make(Headers, 0, len(headers)+1)
	for _, h := range headers {
		if strings.EqualFold(h.Key, "Transfer-Encoding") {
			v := withoutChunked(h.Value)
			if v == "" {
				continue
			}
			h.Value = v
		}
		out = append(out, h)
	}
	out.Set("Content-Length", strconv.Itoa(size))
	return out
}

func withoutChunked(value string) string {
	var kept []string
	for _, coding := range strings.Split(value, ",") {
		coding = strings.TrimSpace(coding)
		if coding != "" && !strings.EqualFold(coding, "chunked") {
			kept = append(kept, coding)
		}
	}
	return strings.Join(kept, ", ")
}

// responseHasBody reports whether a response with this status may carry a
// body per RFC 9112 section 6.3.
func responseHasBody(code StatusCode) bool {
	return code >= 200 && code != StatusNoContent && code != StatusNotModified
}
