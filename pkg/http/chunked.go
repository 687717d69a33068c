package http

import "github.com/shapestone/shape-httpcodec/internal/fastparser"

// DecodeChunked decodes one complete chunked transfer-coded body from the
// start of data and returns the payload and the number of bytes consumed.
// Trailer fields are discarded.
//
// The parser never decodes chunked bodies itself. A caller that accepts
// chunked messages can do so explicitly:
//
//	req, n, err := http.ParseRequestPrefix(data)
//	if err == nil && req.Headers().IsChunked() {
//		body, m, err := http.DecodeChunked(data[n:])
//		...
//	}
func DecodeChunked(data []byte) ([]byte, int, error) {
	body, n, err := fastparser.Dechunk(data)
	if err != nil {
		return nil, 0, newParseError(err)
	}
	return body, n, nil
}
