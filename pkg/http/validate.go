package http

import (
	"bytes"
	"io"
)

// ValidateRequest reports whether data is one syntactically valid HTTP/1.1
// request. It applies exactly the checks UnmarshalRequest applies, including
// body framing, and returns the same *ParseError on failure.
func ValidateRequest(data []byte) error {
	_, _, err := ParseRequestPrefix(data)
	return err
}

// ValidateResponse reports whether data is one syntactically valid HTTP/1.1
// response. See ValidateRequest.
func ValidateResponse(data []byte) error {
	_, _, err := ParseResponsePrefix(data)
	return err
}

// ValidateRequestReader reads all data from r and validates it as a request.
func ValidateRequestReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	return ValidateRequest(data)
}

// ValidateResponseReader reads all data from r and validates it as a response.
func ValidateResponseReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	return ValidateResponse(data)
}

func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
