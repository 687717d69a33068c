// Package tokenizer classifies HTTP start lines using Shape's tokenizer framework.
package tokenizer

// Token kinds produced for a start line. Start lines are single-space
// separated, so spaces and line endings are tokens rather than skipped
// whitespace.
const (
	TokenVersion = "Version" // HTTP/1.0, HTTP/1.1
	TokenText    = "Text"    // method, request-target, status code, reason words
	TokenSP      = "SP"      // single space separator
	TokenCRLF    = "CRLF"    // line ending \r\n or \n
)

// Kind is the message kind implied by a start line.
type Kind int

const (
	KindRequest Kind = iota
	KindResponse
)

func (k Kind) String() string {
	if k == KindResponse {
		return "response"
	}
	return "request"
}
