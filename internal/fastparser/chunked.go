package fastparser

import (
	"bytes"
	"fmt"
)

// maxChunkSizeDigits bounds a chunk-size so it always fits in an int64.
const maxChunkSizeDigits = 15

// Dechunk decodes one complete chunked transfer-encoded body from the start
// of data and reports how many bytes of data it occupied.
//
// Format: hex-size CRLF data CRLF ... 0 CRLF [trailers] CRLF
// Chunk extensions after ';' and trailer fields are discarded.
func Dechunk(data []byte) ([]byte, int, error) {
	var result []byte
	pos := 0

	for {
		sizeLine, next, ok := cutLine(data, pos)
		if !ok {
			return nil, 0, chunkErr(ErrIncompleteMessage, "unterminated chunk size line")
		}
		pos = next

		if semi := bytes.IndexByte(sizeLine, ';'); semi >= 0 {
			sizeLine = sizeLine[:semi]
		}
		size, err := parseHexSize(trimOWS(sizeLine))
		if err != nil {
			return nil, 0, err
		}

		if size == 0 {
			break
		}

		if size > int64(len(data)-pos) {
			return nil, 0, chunkErr(ErrIncompleteMessage, fmt.Sprintf("chunk data truncated (expected %d bytes, %d available)", size, len(data)-pos))
		}
		result = append(result, data[pos:pos+int(size)]...)
		pos += int(size)

		rest, next, ok := cutLine(data, pos)
		if !ok {
			return nil, 0, chunkErr(ErrIncompleteMessage, "missing CRLF after chunk data")
		}
		if len(rest) != 0 {
			return nil, 0, chunkErr(ErrMalformedChunk, fmt.Sprintf("expected CRLF after chunk data, got %q", rest))
		}
		pos = next
	}

	// Trailer section ends at the first empty line.
	for {
		line, next, ok := cutLine(data, pos)
		if !ok {
			return nil, 0, chunkErr(ErrIncompleteMessage, "unterminated trailer section")
		}
		pos = next
		if len(line) == 0 {
			break
		}
	}

	return result, pos, nil
}

// cutLine returns the line starting at pos without its CRLF or LF terminator,
// and the offset just past the terminator.
func cutLine(data []byte, pos int) (line []byte, next int, ok bool) {
	if pos > len(data) {
		return nil, pos, false
	}
	lf := bytes.IndexByte(data[pos:], '\n')
	if lf < 0 {
		return nil, pos, false
	}
	line = data[pos : pos+lf]
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	return line, pos + lf + 1, true
}

// parseHexSize parses a chunk-size. Sizes wider than maxChunkSizeDigits are
// rejected instead of overflowing.
func parseHexSize(b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, chunkErr(ErrMalformedChunk, "empty chunk size")
	}
	if len(b) > maxChunkSizeDigits {
		return 0, chunkErr(ErrMalformedChunk, fmt.Sprintf("chunk size %q too large", b))
	}
	var n int64
	for _, c := range b {
		n <<= 4
		switch {
		case c >= '0' && c <= '9':
			n |= int64(c - '0')
		case c >= 'a' && c <= 'f':
			n |= int64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			n |= int64(c-'A') + 10
		default:
			return 0, chunkErr(ErrMalformedChunk, fmt.Sprintf("invalid chunk size %q", b))
		}
	}
	return n, nil
}

func chunkErr(kind error, msg string) error {
	return &SyntaxError{Err: kind, Msg: msg}
}
