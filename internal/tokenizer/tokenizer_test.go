package tokenizer

import (
	"testing"

	coretok "github.com/shapestone/shape-core/pkg/tokenizer"
)

func TestTokenize_RequestLine(t *testing.T) {
	tok := NewTokenizer()
	tok.Initialize("GET /api HTTP/1.1\r\n")

	tokens, eos := tok.Tokenize()
	if !eos {
		t.Error("expected EOS")
	}

	expected := []struct {
		kind  string
		value string
	}{
		{TokenText, "GET"},
		{TokenSP, " "},
		{TokenText, "/api"},
		{TokenSP, " "},
		{TokenVersion, "HTTP/1.1"},
		{TokenCRLF, "\r\n"},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("token count = %d, want %d. tokens = %v", len(tokens), len(expected), formatTokens(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Kind() != exp.kind {
			t.Errorf("token[%d].Kind() = %q, want %q", i, tokens[i].Kind(), exp.kind)
		}
		if tokens[i].ValueString() != exp.value {
			t.Errorf("token[%d].Value() = %q, want %q", i, tokens[i].ValueString(), exp.value)
		}
	}
}

func TestTokenize_StatusLine(t *testing.T) {
	tok := NewTokenizer()
	tok.Initialize("HTTP/1.0 404 Not Found\n")

	tokens, _ := tok.Tokenize()
	if len(tokens) == 0 {
		t.Fatal("expected tokens, got none")
	}
	if tokens[0].Kind() != TokenVersion || tokens[0].ValueString() != "HTTP/1.0" {
		t.Errorf("tokens[0] = %v, want Version('HTTP/1.0')", tokens[0])
	}
	if last := tokens[len(tokens)-1]; last.Kind() != TokenCRLF {
		t.Errorf("last token = %v, want CRLF for bare LF", last)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Kind
	}{
		{"request", "GET / HTTP/1.1\r\n\r\n", KindRequest},
		{"response", "HTTP/1.1 200 OK\r\n\r\n", KindResponse},
		{"response without terminator", "HTTP/1.0 204 No Content", KindResponse},
		{"head request", "HEAD / HTTP/1.1\r\n\r\n", KindRequest},
		{"empty", "", KindRequest},
		{"version later in line", "GET HTTP/1.1 HTTP/1.1\r\n", KindRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify([]byte(tt.data)); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestCRLFMatcher(t *testing.T) {
	tests := []struct {
		input string
		want  string // "" means no token
	}{
		{"", ""},
		{"GET /", ""},
		{"\r\nX", "\r\n"},
		{"\nX", "\n"},
		{"\rGET", "\r"},
	}
	for _, tt := range tests {
		tok := CRLFMatcher()(coretok.NewStream(tt.input))
		switch {
		case tt.want == "" && tok != nil:
			t.Errorf("CRLFMatcher(%q) = %v, want nil", tt.input, tok)
		case tt.want != "" && (tok == nil || tok.ValueString() != tt.want):
			t.Errorf("CRLFMatcher(%q) = %v, want %q", tt.input, tok, tt.want)
		}
	}
}

func TestSPMatcher(t *testing.T) {
	if tok := SPMatcher()(coretok.NewStream("")); tok != nil {
		t.Errorf("expected nil for EOS stream, got %v", tok)
	}
	if tok := SPMatcher()(coretok.NewStream("X")); tok != nil {
		t.Errorf("expected nil for non-SP char, got %v", tok)
	}
	if tok := SPMatcher()(coretok.NewStream(" X")); tok == nil || tok.Kind() != TokenSP {
		t.Errorf("expected SP token, got %v", tok)
	}
}

func TestVersionMatcher(t *testing.T) {
	if tok := VersionMatcher()(coretok.NewStream("")); tok != nil {
		t.Errorf("expected nil for EOS stream, got %v", tok)
	}
	if tok := VersionMatcher()(coretok.NewStream("GET /")); tok != nil {
		t.Errorf("expected nil for non-HTTP/ prefix, got %v", tok)
	}
	tok := VersionMatcher()(coretok.NewStream("HTTP/1.1 200"))
	if tok == nil {
		t.Fatal("expected token for HTTP/1.1, got nil")
	}
	if tok.Kind() != TokenVersion || tok.ValueString() != "HTTP/1.1" {
		t.Errorf("token = %v, want Version('HTTP/1.1')", tok)
	}
}

func TestTextMatcher(t *testing.T) {
	if tok := TextMatcher()(coretok.NewStream("")); tok != nil {
		t.Errorf("expected nil for EOS stream, got %v", tok)
	}
	if tok := TextMatcher()(coretok.NewStream(" value")); tok != nil {
		t.Errorf("expected nil when starting with SP, got %v", tok)
	}
	tok := TextMatcher()(coretok.NewStream("/a:b?c=d HTTP/1.1"))
	if tok == nil || tok.ValueString() != "/a:b?c=d" {
		t.Errorf("TextMatcher() = %v, want Text('/a:b?c=d')", tok)
	}
}

func formatTokens(tokens []coretok.Token) string {
	s := "["
	for i, t := range tokens {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	s += "]"
	return s
}
