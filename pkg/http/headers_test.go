package http

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaders_Get(t *testing.T) {
	h := Headers{
		{Key: "Content-Type", Value: "text/plain"},
		{Key: "X-Dup", Value: "one"},
		{Key: "x-dup", Value: "two"},
	}

	v, ok := h.Get("content-type")
	assert.True(t, ok)
	assert.Equal(t, "text/plain", v)

	v, ok = h.Get("X-DUP")
	assert.True(t, ok)
	assert.Equal(t, "one", v, "first match wins")

	_, ok = h.Get("Missing")
	assert.False(t, ok)
	assert.False(t, h.Has("Missing"))
	assert.True(t, h.Has("x-Dup"))
}

func TestHeaders_ValuesAndAll(t *testing.T) {
	h := Headers{
		{Key: "Set-Cookie", Value: "a=1"},
		{Key: "Host", Value: "example.com"},
		{Key: "set-cookie", Value: "b=2"},
	}

	assert.Equal(t, []string{"a=1", "b=2"}, slices.Collect(h.Values("Set-Cookie")))
	assert.Empty(t, slices.Collect(h.Values("Accept")))

	var keys []string
	for k := range h.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"Set-Cookie", "Host", "set-cookie"}, keys)

	// early break stops the iteration
	count := 0
	for range h.Values("set-cookie") {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestHeaders_AddSetDel(t *testing.T) {
	var h Headers
	h.Add("Accept", "text/html")
	h.Add("X-A", "1")
	h.Add("accept", "application/json")
	require.Equal(t, 3, h.Len())

	h.Set("ACCEPT", "*/*")
	assert.Equal(t, Headers{
		{Key: "Accept", Value: "*/*"},
		{Key: "X-A", Value: "1"},
	}, h)

	h.Set("X-B", "2")
	assert.Equal(t, 3, h.Len())

	assert.Equal(t, 1, h.Del("x-a"))
	assert.Equal(t, 0, h.Del("x-a"))
	assert.Equal(t, Headers{
		{Key: "Accept", Value: "*/*"},
		{Key: "X-B", Value: "2"},
	}, h)
}

func TestHeaders_Clone(t *testing.T) {
	assert.Nil(t, Headers(nil).Clone())

	h := Headers{{Key: "A", Value: "1"}}
	c := h.Clone()
	c[0].Value = "changed"
	assert.Equal(t, "1", h[0].Value)
}

func TestHeaders_ContentLength(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int64
	}{
		{"zero", "0", 0},
		{"simple", "42", 42},
		{"max int64", "9223372036854775807", 1<<63 - 1},
		{"overflow", "9223372036854775808", -1},
		{"negative", "-1", -1},
		{"empty", "", -1},
		{"not a number", "12a", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Headers{{Key: "content-length", Value: tt.value}}
			assert.Equal(t, tt.want, h.ContentLength())
		})
	}

	assert.Equal(t, int64(-1), Headers{}.ContentLength())
}

func TestHeaders_IsChunked(t *testing.T) {
	assert.True(t, Headers{{Key: "Transfer-Encoding", Value: "gzip, Chunked"}}.IsChunked())
	assert.False(t, Headers{{Key: "Transfer-Encoding", Value: "gzip"}}.IsChunked())
	assert.False(t, Headers{}.IsChunked())
}
