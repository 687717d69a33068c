package http

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBuilder_Defaults(t *testing.T) {
	req, err := GetRequest("/index.html").Finish()
	require.NoError(t, err)

	assert.Equal(t, MethodGet, req.Method())
	assert.Equal(t, "/index.html", req.URI())
	assert.Equal(t, HTTP11, req.Version())
	assert.Empty(t, req.Headers())
	assert.Nil(t, req.Body())
}

func TestRequestBuilder_Shortcuts(t *testing.T) {
	tests := []struct {
		builder *RequestBuilder
		want    Method
	}{
		{GetRequest("/"), MethodGet},
		{PostRequest("/"), MethodPost},
		{PutRequest("/"), MethodPut},
		{DeleteRequest("/"), MethodDelete},
		{HeadRequest("/"), MethodHead},
		{OptionsRequest("*"), MethodOptions},
		{PatchRequest("/"), MethodPatch},
		{NewRequestBuilder("PURGE", "/cache"), Method("PURGE")},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			req, err := tt.builder.Finish()
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Method())
		})
	}
}

func TestRequestBuilder_Chain(t *testing.T) {
	req, err := PostRequest("/api").
		AppendURI("/users").
		AppendURI("?page=2").
		Version(HTTP10).
		Header("Host", "example.com").
		Header("Accept", "a").
		Header("Accept", "b").
		BodyString(`{"x":1}`).
		Finish()
	require.NoError(t, err)

	assert.Equal(t, "/api/users?page=2", req.URI())
	assert.Equal(t, HTTP10, req.Version())
	assert.Equal(t, Headers{
		{Key: "Host", Value: "example.com"},
		{Key: "Accept", Value: "a"},
		{Key: "Accept", Value: "b"},
	}, req.Headers())
	assert.Equal(t, []byte(`{"x":1}`), req.Body())
}

func TestRequestBuilder_BodyIsCopied(t *testing.T) {
	body := []byte("abc")
	b := PostRequest("/").Body(body)
	body[0] = 'X'

	req, err := b.Finish()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(req.Body()))

	out := req.Body()
	out[0] = 'Y'
	assert.Equal(t, "abc", string(req.Body()), "accessor hands out a copy")
}

func TestRequestBuilder_RequestID(t *testing.T) {
	req, err := GetRequest("/").RequestID().Finish()
	require.NoError(t, err)

	id, ok := req.Header("X-Request-ID")
	require.True(t, ok)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestBuilder_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		builder *RequestBuilder
		field   string
		want    error
	}{
		{"empty method", NewRequestBuilder("", "/"), "method", ErrInvalidMethod},
		{"method with space", NewRequestBuilder("GE T", "/"), "method", ErrInvalidMethod},
		{"empty uri", GetRequest(""), "uri", ErrInvalidURI},
		{"uri with space", GetRequest("/a b"), "uri", ErrInvalidURI},
		{"uri with CRLF", GetRequest("/a\r\nX: y"), "uri", ErrInvalidURI},
		{"zero version", GetRequest("/").Version(0), "version", ErrInvalidVersion},
		{"header name with colon", GetRequest("/").Header("X:Y", "1"), "header[0].name", ErrInvalidHeaderName},
		{"empty header name", GetRequest("/").Header("", "1"), "header[0].name", ErrInvalidHeaderName},
		{"header value with LF", GetRequest("/").Header("X", "a\nb"), "header[0].value", ErrInvalidHeaderValue},
		{"header value with leading space", GetRequest("/").Header("X", " a"), "header[0].value", ErrInvalidHeaderValue},
		{"second header bad", GetRequest("/").Header("A", "1").Header("B", "x\x00"), "header[1].value", ErrInvalidHeaderValue},
		{"non-decimal content length", PostRequest("/").Header("Content-Length", "abc"), "header[Content-Length]", ErrInvalidContentLength},
		{"negative content length", PostRequest("/").Header("content-length", "-1"), "header[Content-Length]", ErrInvalidContentLength},
		{"conflicting content lengths", PostRequest("/").Header("Content-Length", "1").Header("Content-Length", "2"), "header[Content-Length]", ErrInvalidContentLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.builder.Finish()
			require.Error(t, err)
			assert.Nil(t, req)
			assert.ErrorIs(t, err, tt.want)

			var be *BuildError
			require.True(t, errors.As(err, &be))
			require.Len(t, be.Fields, 1)
			assert.Equal(t, tt.field, be.Fields[0].Field)
		})
	}
}

func TestBuilder_ExplicitContentLengthRoundTrips(t *testing.T) {
	req, err := PostRequest("/").Header("Content-Length", "3").BodyString("abc").Finish()
	require.NoError(t, err)

	parsed, err := UnmarshalRequest(req.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), parsed.Body())
	assert.Equal(t, "POST / HTTP/1.1\r\nContent-Length: 3\r\n\r\nabc", string(req.Bytes()))

	_, err = OKResponse().Header("Content-Length", "1e3").Finish()
	assert.ErrorIs(t, err, ErrInvalidContentLength)
}

func TestRequestBuilder_ReportsEveryField(t *testing.T) {
	_, err := NewRequestBuilder("", "").Version(7).Header("bad name", "v\r").Finish()

	var be *BuildError
	require.True(t, errors.As(err, &be))
	fields := make([]string, len(be.Fields))
	for i, f := range be.Fields {
		fields[i] = f.Field
	}
	assert.Equal(t, []string{"method", "uri", "version", "header[0].name", "header[0].value"}, fields)
	assert.ErrorIs(t, err, ErrInvalidMethod)
	assert.ErrorIs(t, err, ErrInvalidHeaderValue)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "method", fe.Field)
}

func TestRequestBuilder_SingleUse(t *testing.T) {
	b := GetRequest("/first")
	req, err := b.Finish()
	require.NoError(t, err)

	b.URI("/second").Header("X", "1")
	assert.Equal(t, "/first", req.URI())
	assert.Empty(t, req.Headers())

	_, err = b.Finish()
	assert.ErrorIs(t, err, ErrBuilderConsumed)
}

func TestRequestBuilder_FailedFinishConsumes(t *testing.T) {
	b := GetRequest("")
	_, err := b.Finish()
	require.Error(t, err)

	_, err = b.URI("/").Finish()
	assert.ErrorIs(t, err, ErrBuilderConsumed)
}

func TestResponseBuilder_Shortcuts(t *testing.T) {
	tests := []struct {
		builder *ResponseBuilder
		code    StatusCode
		reason  string
	}{
		{OKResponse(), 200, "OK"},
		{CreatedResponse(), 201, "Created"},
		{NoContentResponse(), 204, "No Content"},
		{BadRequestResponse(), 400, "Bad Request"},
		{UnauthorizedResponse(), 401, "Unauthorized"},
		{ForbiddenResponse(), 403, "Forbidden"},
		{NotFoundResponse(), 404, "Not Found"},
		{MethodNotAllowedResponse(), 405, "Method Not Allowed"},
		{InternalServerErrorResponse(), 500, "Internal Server Error"},
		{ServiceUnavailableResponse(), 503, "Service Unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			resp, err := tt.builder.Finish()
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.Status())
			assert.Equal(t, tt.reason, resp.Reason())
			assert.Equal(t, HTTP11, resp.Version())
		})
	}
}

func TestResponseBuilder_Reason(t *testing.T) {
	resp, err := OKResponse().Status(StatusNotFound).Finish()
	require.NoError(t, err)
	assert.Equal(t, "Not Found", resp.Reason(), "reason follows the status")

	resp, err = OKResponse().Reason("Fine").Status(StatusAccepted).Finish()
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, resp.Status())
	assert.Equal(t, "Fine", resp.Reason(), "explicit reason is kept")

	resp, err = NewResponseBuilder(299).Finish()
	require.NoError(t, err)
	assert.Equal(t, "", resp.Reason(), "unknown code has no canonical phrase")
}

func TestResponseBuilder_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		builder *ResponseBuilder
		field   string
		want    error
	}{
		{"status too low", NewResponseBuilder(99), "status", ErrInvalidStatus},
		{"status too high", NewResponseBuilder(600), "status", ErrInvalidStatus},
		{"reason with CR", OKResponse().Reason("O\rK"), "reason", ErrInvalidReason},
		{"bad version", OKResponse().Version(3), "version", ErrInvalidVersion},
		{"bad header", OKResponse().Header("Content Type", "x"), "header[0].name", ErrInvalidHeaderName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Finish()
			assert.ErrorIs(t, err, tt.want)

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestResponseBuilder_SingleUse(t *testing.T) {
	b := OKResponse().BodyString("x")
	_, err := b.Finish()
	require.NoError(t, err)

	_, err = b.Finish()
	assert.ErrorIs(t, err, ErrBuilderConsumed)
}
