package tokenizer

import (
	"bytes"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for one HTTP start line:
// 1. CRLF (line endings)
// 2. SP (space separator)
// 3. HTTP version string
// 4. Generic text (method, target, status code, reason words)
//
// Unlike JSON, start lines don't use the default whitespace skipper because
// a single space is the field separator.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		CRLFMatcher(),
		SPMatcher(),
		VersionMatcher(),
		TextMatcher(),
	)
}

// Classify reports whether data begins with a status line (first token is an
// HTTP version) or a request line. Only the first line of data is examined.
func Classify(data []byte) Kind {
	line := data
	if lf := bytes.IndexByte(line, '\n'); lf >= 0 {
		line = line[:lf+1]
	}

	tok := NewTokenizer()
	tok.Initialize(string(line))
	tokens, _ := tok.Tokenize()
	if len(tokens) > 0 && tokens[0].Kind() == TokenVersion {
		return KindResponse
	}
	return KindRequest
}

// CRLFMatcher matches \r\n or bare \n.
func CRLFMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}

		switch r {
		case '\r':
			stream.NextChar()
			if r2, ok := stream.PeekChar(); ok && r2 == '\n' {
				stream.NextChar()
				return tokenizer.NewToken(TokenCRLF, []rune{'\r', '\n'})
			}
			return tokenizer.NewToken(TokenCRLF, []rune{'\r'})
		case '\n':
			stream.NextChar()
			return tokenizer.NewToken(TokenCRLF, []rune{'\n'})
		}
		return nil
	}
}

// SPMatcher matches a single space character.
func SPMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != ' ' {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenSP, []rune{' '})
	}
}

// VersionMatcher matches "HTTP/" followed by digits and dots, ending at a
// separator or the end of input.
func VersionMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for _, expected := range "HTTP/" {
			r, ok := stream.PeekChar()
			if !ok || r != expected {
				return nil
			}
			stream.NextChar()
			value = append(value, r)
		}

		for {
			r, ok := stream.PeekChar()
			if !ok || !((r >= '0' && r <= '9') || r == '.') {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		return tokenizer.NewToken(TokenVersion, value)
	}
}

// TextMatcher matches any run of characters up to SP, CR, LF or end of input.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || r == ' ' || r == '\r' || r == '\n' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenText, value)
	}
}
