// Package parser implements an AST parser for HTTP/1.1 messages.
// It produces shape-core AST nodes (ObjectNode, LiteralNode, ArrayDataNode)
// from HTTP wire-format input.
//
// The HTTP message is mapped to an ObjectNode with the following structure:
//
// Request:
//
//	{ "type": "request", "method": "POST", "uri": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// Response:
//
//	{ "type": "response", "version": "HTTP/1.1", "statusCode": 200,
//	  "reason": "OK",
//	  "headers": [{"key": "Content-Type", "value": "text/plain"}, ...],
//	  "body": "..." }
//
// "body" is omitted when the message has no body.
package parser

import (
	"fmt"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpcodec/internal/fastparser"
	"github.com/shapestone/shape-httpcodec/internal/tokenizer"
)

var zeroPos = ast.Position{}

// Parser produces AST nodes from HTTP wire-format data.
type Parser struct {
	data []byte
}

// NewParser creates a new AST parser for the given input.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse parses the HTTP message and returns an AST ObjectNode. The message
// kind comes from the first start-line token: an HTTP version means a
// response.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	if tokenizer.Classify(p.data) == tokenizer.KindResponse {
		return p.ParseResponse()
	}
	return p.ParseRequest()
}

// ParseRequest parses the input as a request.
func (p *Parser) ParseRequest() (ast.SchemaNode, error) {
	req, _, err := fastparser.UnmarshalRequest(p.data)
	if err != nil {
		return nil, err
	}
	return RequestToNode(req), nil
}

// ParseResponse parses the input as a response.
func (p *Parser) ParseResponse() (ast.SchemaNode, error) {
	resp, _, err := fastparser.UnmarshalResponse(p.data)
	if err != nil {
		return nil, err
	}
	return ResponseToNode(resp), nil
}

// RequestToNode converts a parsed request to an ObjectNode.
func RequestToNode(req *fastparser.Request) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(req.Method, zeroPos),
		"uri":     ast.NewLiteralNode(req.Target, zeroPos),
		"version": ast.NewLiteralNode(req.Version, zeroPos),
		"headers": headersToNode(req.Headers),
	}
	if len(req.Body) > 0 {
		props["body"] = ast.NewLiteralNode(string(req.Body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// ResponseToNode converts a parsed response to an ObjectNode.
func ResponseToNode(resp *fastparser.Response) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":       ast.NewLiteralNode("response", zeroPos),
		"version":    ast.NewLiteralNode(resp.Version, zeroPos),
		"statusCode": ast.NewLiteralNode(int64(resp.StatusCode), zeroPos),
		"reason":     ast.NewLiteralNode(resp.Reason, zeroPos),
		"headers":    headersToNode(resp.Headers),
	}
	if len(resp.Body) > 0 {
		props["body"] = ast.NewLiteralNode(string(resp.Body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

func headersToNode(headers []fastparser.Header) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(h.Key, zeroPos),
			"value": ast.NewLiteralNode(h.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeType returns the "type" property of an ObjectNode ("request" or
// "response").
func NodeType(node ast.SchemaNode) (string, error) {
	props, err := properties(node)
	if err != nil {
		return "", err
	}
	typeProp, ok := props["type"]
	if !ok {
		return "", fmt.Errorf("missing 'type' property")
	}
	s, ok := literalString(typeProp)
	if !ok {
		return "", fmt.Errorf("'type' is not a string literal")
	}
	return s, nil
}

// NodeToRequest extracts the raw request fields of an ObjectNode. Values are
// not validated; callers run them through a builder.
func NodeToRequest(node ast.SchemaNode) (*fastparser.Request, error) {
	props, err := properties(node)
	if err != nil {
		return nil, err
	}

	req := &fastparser.Request{}
	req.Method, _ = literalString(props["method"])
	req.Target, _ = literalString(props["uri"])
	req.Version, _ = literalString(props["version"])
	if v, ok := props["headers"]; ok {
		if req.Headers, err = nodeToHeaders(v); err != nil {
			return nil, err
		}
	}
	if s, ok := literalString(props["body"]); ok && s != "" {
		req.Body = []byte(s)
	}
	return req, nil
}

// NodeToResponse extracts the raw response fields of an ObjectNode.
func NodeToResponse(node ast.SchemaNode) (*fastparser.Response, error) {
	props, err := properties(node)
	if err != nil {
		return nil, err
	}

	resp := &fastparser.Response{}
	resp.Version, _ = literalString(props["version"])
	resp.Reason, _ = literalString(props["reason"])
	if v, ok := props["statusCode"]; ok {
		code, err := nodeToStatusCode(v)
		if err != nil {
			return nil, err
		}
		resp.StatusCode = code
	}
	if v, ok := props["headers"]; ok {
		if resp.Headers, err = nodeToHeaders(v); err != nil {
			return nil, err
		}
	}
	if s, ok := literalString(props["body"]); ok && s != "" {
		resp.Body = []byte(s)
	}
	return resp, nil
}

func properties(node ast.SchemaNode) (map[string]ast.SchemaNode, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}
	return obj.Properties(), nil
}

func literalString(node ast.SchemaNode) (string, bool) {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return "", false
	}
	s, ok := lit.Value().(string)
	return s, ok
}

func nodeToStatusCode(node ast.SchemaNode) (int, error) {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return 0, fmt.Errorf("expected LiteralNode for statusCode, got %T", node)
	}
	switch code := lit.Value().(type) {
	case int64:
		return int(code), nil
	case float64:
		return int(code), nil
	case string:
		n, err := strconv.Atoi(code)
		if err != nil {
			return 0, fmt.Errorf("statusCode %q is not a number", code)
		}
		return n, nil
	}
	return 0, fmt.Errorf("statusCode has unsupported type %T", lit.Value())
}

func nodeToHeaders(node ast.SchemaNode) ([]fastparser.Header, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}

	elements := arr.Elements()
	headers := make([]fastparser.Header, 0, len(elements))
	for i, elem := range elements {
		props, err := properties(elem)
		if err != nil {
			return nil, fmt.Errorf("headers[%d]: %w", i, err)
		}
		var h fastparser.Header
		h.Key, _ = literalString(props["key"])
		h.Value, _ = literalString(props["value"])
		headers = append(headers, h)
	}
	return headers, nil
}
