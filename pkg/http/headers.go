package http

import (
	"iter"
	"strings"
)

// Header represents a single HTTP header key-value pair.
type Header struct {
	Key   string
	Value string
}

// Headers is an ordered, repeatable list of HTTP headers.
// Names compare case-insensitively (RFC 9110) but keep their original case.
// Headers never merges or deduplicates entries; folding repeated fields such
// as Set-Cookie is up to the caller.
type Headers []Header

// Get returns the first header value for the given key (case-insensitive).
func (h Headers) Get(key string) (string, bool) {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return hdr.Value, true
		}
	}
	return "", false
}

// Has reports whether at least one header matches key.
func (h Headers) Has(key string) bool {
	_, ok := h.Get(key)
	return ok
}

// Values returns all header values for the given key (case-insensitive), in
// insertion order. The sequence is lazy and may be ranged over repeatedly.
func (h Headers) Values(key string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, hdr := range h {
			if strings.EqualFold(hdr.Key, key) && !yield(hdr.Value) {
				return
			}
		}
	}
}

// All yields every header in order as key, value.
func (h Headers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, hdr := range h {
			if !yield(hdr.Key, hdr.Value) {
				return
			}
		}
	}
}

// Add appends a header without replacing existing ones.
func (h *Headers) Add(key, value string) {
	*h = append(*h, Header{Key: key, Value: value})
}

// Set replaces the first header with the given key (case-insensitive) or appends if not found.
// Later headers with the same key are removed.
func (h *Headers) Set(key, value string) {
	for i, hdr := range *h {
		if strings.EqualFold(hdr.Key, key) {
			(*h)[i].Value = value
			rest := (*h)[i+1:]
			rest.Del(key)
			*h = (*h)[:i+1+len(rest)]
			return
		}
	}
	h.Add(key, value)
}

// Del removes all headers with the given key (case-insensitive) and returns
// how many were removed.
func (h *Headers) Del(key string) int {
	j := 0
	for _, hdr := range *h {
		if !strings.EqualFold(hdr.Key, key) {
			(*h)[j] = hdr
			j++
		}
	}
	removed := len(*h) - j
	clear((*h)[j:])
	*h = (*h)[:j]
	return removed
}

// Len returns the number of header lines.
func (h Headers) Len() int { return len(h) }

// Clone returns a deep copy of the headers.
func (h Headers) Clone() Headers {
	if len(h) == 0 {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}

// ContentLength returns the first Content-Length header as an integer, or -1
// if absent or not a valid non-negative decimal.
func (h Headers) ContentLength() int64 {
	v, ok := h.Get("Content-Length")
	if !ok {
		return -1
	}
	var n int64
	if v == "" {
		return -1
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c < '0' || c > '9' || n > (1<<63-1-int64(c-'0'))/10 {
			return -1
		}
		n = n*10 + int64(c-'0')
	}
	return n
}

// IsChunked returns true if Transfer-Encoding contains "chunked".
func (h Headers) IsChunked() bool {
	for v := range h.Values("Transfer-Encoding") {
		if strings.Contains(strings.ToLower(v), "chunked") {
			return true
		}
	}
	return false
}
