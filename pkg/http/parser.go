package http

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpcodec/internal/parser"
)

// Parse parses HTTP wire format into an AST from a string.
//
// The input is one complete HTTP/1.1 message. A start line beginning with an
// HTTP version is read as a response, anything else as a request.
// Returns an ast.ObjectNode with properties matching the message type.
//
// For requests:
//
//	{ "type": "request", "method": "GET", "uri": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// For responses:
//
//	{ "type": "response", "version": "HTTP/1.1", "statusCode": 200,
//	  "reason": "OK",
//	  "headers": [{"key": "Content-Type", "value": "text/plain"}, ...],
//	  "body": "..." }
//
// Errors are *ParseError values, as from UnmarshalRequest.
func Parse(input string) (ast.SchemaNode, error) {
	return parseNode([]byte(input))
}

// ParseReader reads all data from r and parses it as an HTTP message into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return parseNode(data)
}

func parseNode(data []byte) (ast.SchemaNode, error) {
	node, err := parser.NewParser(data).Parse()
	if err != nil {
		return nil, newParseError(err)
	}
	return node, nil
}
