package http

import "fmt"

// Version is an HTTP protocol version. Only HTTP/1.0 and HTTP/1.1 exist; the
// zero Version is invalid.
type Version uint8

const (
	HTTP10 Version = iota + 1
	HTTP11
)

// ParseVersion maps "HTTP/1.0" and "HTTP/1.1" to a Version.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "HTTP/1.0":
		return HTTP10, nil
	case "HTTP/1.1":
		return HTTP11, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedVersion, s)
}

// Valid reports whether v is HTTP10 or HTTP11.
func (v Version) Valid() bool {
	return v == HTTP10 || v == HTTP11
}

// String returns the wire form, e.g. "HTTP/1.1".
func (v Version) String() string {
	switch v {
	case HTTP10:
		return "HTTP/1.0"
	case HTTP11:
		return "HTTP/1.1"
	}
	return fmt.Sprintf("Version(%d)", uint8(v))
}
