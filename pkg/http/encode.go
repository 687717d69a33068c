package http

import (
	"fmt"
	"io"
)

// Encoder writes HTTP messages to an output stream, one complete message per
// Write call.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the HTTP wire-format encoding of v to the stream.
// v must be a *Request, a *Response, or a Marshaler. A writer that accepts
// fewer bytes than the message without an error yields io.ErrShortWrite.
func (enc *Encoder) Encode(v interface{}) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	n, err := enc.w.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("http: encode: wrote %d of %d bytes: %w", n, len(data), err)
	}
	return nil
}
