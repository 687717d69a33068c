package http

import (
	"fmt"

	"github.com/shapestone/shape-httpcodec/internal/fastparser"
)

// Method is an HTTP request method. The constants below are the standard
// methods; any other token is an extension method and is carried verbatim.
type Method string

// Standard request methods.
const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodPatch   Method = "PATCH"
	MethodConnect Method = "CONNECT"
	MethodTrace   Method = "TRACE"
)

// ParseMethod accepts any RFC 9110 token. Unknown tokens yield an extension
// method rather than an error.
func ParseMethod(s string) (Method, error) {
	if !fastparser.IsToken(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
	return Method(s), nil
}

// IsStandard reports whether m is one of the nine standard methods.
func (m Method) IsStandard() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodHead,
		MethodOptions, MethodPatch, MethodConnect, MethodTrace:
		return true
	}
	return false
}

func (m Method) String() string { return string(m) }
