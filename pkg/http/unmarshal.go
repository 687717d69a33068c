package http

import (
	"fmt"

	"github.com/shapestone/shape-httpcodec/internal/fastparser"
)

// Unmarshal parses the HTTP wire-format data and stores the result in v.
//
// v must be a *Request, a *Response, or an Unmarshaler. The target type alone
// decides how data is read; the data is never sniffed, because a server knows
// it reads requests and a client knows it reads responses.
func Unmarshal(data []byte, v interface{}) error {
	if v == nil {
		return fmt.Errorf("http: Unmarshal(nil)")
	}

	switch target := v.(type) {
	case *Request:
		req, err := UnmarshalRequest(data)
		if err != nil {
			return err
		}
		*target = *req
		return nil

	case *Response:
		resp, err := UnmarshalResponse(data)
		if err != nil {
			return err
		}
		*target = *resp
		return nil

	case Unmarshaler:
		return target.UnmarshalHTTP(data)

	default:
		return fmt.Errorf("http: Unmarshal unsupported type %T (expected *Request or *Response)", v)
	}
}

// UnmarshalRequest parses one complete request from data. Bytes after the
// framed body are ignored; use ParseRequestPrefix to learn where they start.
//
// Authentication headers are parsed as ordinary HTTP headers and are available
// via req.Header("Authorization"). Query-string parameters remain part of
// req.URI().
func UnmarshalRequest(data []byte) (*Request, error) {
	req, _, err := ParseRequestPrefix(data)
	return req, err
}

// UnmarshalResponse parses one complete response from data.
func UnmarshalResponse(data []byte) (*Response, error) {
	resp, _, err := ParseResponsePrefix(data)
	return resp, err
}

// ParseRequestPrefix parses the request at the start of data and returns the
// number of bytes it occupies. data[n:] is the start of whatever follows, such
// as a pipelined request or a chunked body.
func ParseRequestPrefix(data []byte) (*Request, int, error) {
	return parseRequest(data, fastparser.BodyToEnd)
}

// ParseResponsePrefix parses the response at the start of data and returns the
// number of bytes it occupies.
func ParseResponsePrefix(data []byte) (*Response, int, error) {
	return parseResponse(data, fastparser.BodyToEnd)
}

func parseRequest(data []byte, mode fastparser.BodyMode) (*Request, int, error) {
	fp, n, err := fastparser.UnmarshalRequestMode(data, mode)
	if err != nil {
		return nil, 0, newParseError(err)
	}
	version, err := ParseVersion(fp.Version)
	if err != nil {
		return nil, 0, err
	}
	return &Request{
		method:  Method(fp.Method),
		uri:     fp.Target,
		version: version,
		headers: convertHeaders(fp.Headers),
		body:    fp.Body,
	}, n, nil
}

func parseResponse(data []byte, mode fastparser.BodyMode) (*Response, int, error) {
	fp, n, err := fastparser.UnmarshalResponseMode(data, mode)
	if err != nil {
		return nil, 0, newParseError(err)
	}
	version, err := ParseVersion(fp.Version)
	if err != nil {
		return nil, 0, err
	}
	return &Response{
		version: version,
		status:  StatusCode(fp.StatusCode),
		reason:  fp.Reason,
		headers: convertHeaders(fp.Headers),
		body:    fp.Body,
	}, n, nil
}

// UnmarshalHTTP implements Unmarshaler by replacing r with the request parsed
// from data.
func (r *Request) UnmarshalHTTP(data []byte) error {
	req, err := UnmarshalRequest(data)
	if err != nil {
		return err
	}
	*r = *req
	return nil
}

// UnmarshalHTTP implements Unmarshaler by replacing r with the response parsed
// from data.
func (r *Response) UnmarshalHTTP(data []byte) error {
	resp, err := UnmarshalResponse(data)
	if err != nil {
		return err
	}
	*r = *resp
	return nil
}

func convertHeaders(internal []fastparser.Header) Headers {
	if len(internal) == 0 {
		return nil
	}
	headers := make(Headers, len(internal))
	for i, h := range internal {
		headers[i] = Header{Key: h.Key, Value: h.Value}
	}
	return headers
}
