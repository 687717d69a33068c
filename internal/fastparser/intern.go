package fastparser

// Interning tables for common tokens. Looking up string(b) in a map does not
// allocate, so known names cost nothing; unknown ones are copied. Lookups are
// exact: casing on the wire is never changed.

var methods = internTable(
	"GET", "HEAD", "POST", "PUT", "DELETE",
	"CONNECT", "OPTIONS", "TRACE", "PATCH",
)

// versions is the complete set of accepted protocol versions.
var versions = internTable("HTTP/1.0", "HTTP/1.1")

var headerNames = internTable(
	"Accept", "Accept-Encoding", "Accept-Language", "Authorization",
	"Cache-Control", "Connection", "Content-Encoding", "Content-Length",
	"Content-Type", "Cookie", "Date", "ETag", "Expect", "Host",
	"If-Modified-Since", "If-None-Match", "Last-Modified", "Location",
	"Origin", "Range", "Referer", "Server", "Set-Cookie",
	"Transfer-Encoding", "Upgrade", "User-Agent", "Vary",
	"X-Forwarded-For", "X-Request-ID",
)

var reasons = internTable(
	"OK", "Created", "Accepted", "No Content", "Moved Permanently", "Found",
	"Not Modified", "Bad Request", "Unauthorized", "Forbidden", "Not Found",
	"Method Not Allowed", "Internal Server Error", "Bad Gateway",
	"Service Unavailable",
)

func internTable(values ...string) map[string]string {
	m := make(map[string]string, len(values))
	for _, v := range values {
		m[v] = v
	}
	return m
}

func intern(table map[string]string, b []byte) string {
	if s, ok := table[string(b)]; ok {
		return s
	}
	return string(b)
}

func internMethod(b []byte) string { return intern(methods, b) }

func internHeaderName(b []byte) string { return intern(headerNames, b) }

// internReason keeps an empty reason phrase as "".
func internReason(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return intern(reasons, b)
}

// internVersion returns the interned version string, or false if b is not a
// supported version.
func internVersion(b []byte) (string, bool) {
	s, ok := versions[string(b)]
	return s, ok
}
