package http

import (
	"fmt"
	"sync"
)

// bufPool pools []byte slices for the encoder fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Marshal returns the HTTP/1.1 wire-format encoding of v.
//
// v must be a *Request, a *Response, or a Marshaler. If the body is non-empty
// and the Content-Length header is absent, Content-Length is written with the
// body's byte length.
//
// Marshal uses a sync.Pool buffer internally; the returned slice is owned by
// the caller.
func Marshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("http: Marshal(nil)")
	}

	var msg Message
	switch m := v.(type) {
	case *Request:
		if m == nil {
			return nil, fmt.Errorf("http: Marshal(nil *Request)")
		}
		msg = m
	case *Response:
		if m == nil {
			return nil, fmt.Errorf("http: Marshal(nil *Response)")
		}
		msg = m
	case Marshaler:
		return m.MarshalHTTP()
	default:
		return nil, fmt.Errorf("http: Marshal unsupported type %T (expected *Request or *Response)", v)
	}

	bp := bufPool.Get().(*[]byte)
	buf := msg.AppendBytes((*bp)[:0])

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf[:0]
	bufPool.Put(bp)
	return result, nil
}
