package http

import (
	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpcodec/internal/fastparser"
	"github.com/shapestone/shape-httpcodec/internal/parser"
)

// NodeToRequest converts an AST ObjectNode to a Request. The node's fields are
// checked by RequestBuilder.Finish, relaxed to accept anything Parse accepts,
// so every node from Parse converts.
func NodeToRequest(node ast.SchemaNode) (*Request, error) {
	fp, err := parser.NodeToRequest(node)
	if err != nil {
		return nil, err
	}

	b := NewRequestBuilder(Method(fp.Method), fp.Target)
	b.wire = true
	if fp.Version != "" {
		b.Version(nodeVersion(fp.Version))
	}
	for _, h := range fp.Headers {
		b.Header(h.Key, h.Value)
	}
	return b.Body(fp.Body).Finish()
}

// NodeToResponse converts an AST ObjectNode to a Response. A missing reason
// falls back to the canonical phrase for the status code.
func NodeToResponse(node ast.SchemaNode) (*Response, error) {
	fp, err := parser.NodeToResponse(node)
	if err != nil {
		return nil, err
	}

	b := NewResponseBuilder(StatusCode(fp.StatusCode))
	b.wire = true
	if fp.Version != "" {
		b.Version(nodeVersion(fp.Version))
	}
	if fp.Reason != "" {
		b.Reason(fp.Reason)
	}
	for _, h := range fp.Headers {
		b.Header(h.Key, h.Value)
	}
	return b.Body(fp.Body).Finish()
}

// nodeVersion maps an unparseable version to the zero Version so the builder
// reports it as a field error.
func nodeVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		return 0
	}
	return v
}

// RequestToNode converts a Request to an AST ObjectNode.
func RequestToNode(req *Request) ast.SchemaNode {
	return parser.RequestToNode(&fastparser.Request{
		Method:  string(req.method),
		Target:  req.uri,
		Version: req.version.String(),
		Headers: internalHeaders(req.headers),
		Body:    req.body,
	})
}

// ResponseToNode converts a Response to an AST ObjectNode.
func ResponseToNode(resp *Response) ast.SchemaNode {
	return parser.ResponseToNode(&fastparser.Response{
		Version:    resp.version.String(),
		StatusCode: int(resp.status),
		Reason:     resp.reason,
		Headers:    internalHeaders(resp.headers),
		Body:       resp.body,
	})
}

// NodeToInterface converts an AST node to native Go types.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToInterface(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToInterface(v)
		}
		return m
	default:
		return nil
	}
}

func internalHeaders(headers Headers) []fastparser.Header {
	out := make([]fastparser.Header, len(headers))
	for i, h := range headers {
		out[i] = fastparser.Header{Key: h.Key, Value: h.Value}
	}
	return out
}
