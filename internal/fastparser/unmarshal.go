package fastparser

// UnmarshalRequest parses data as an HTTP request whose body, absent
// Content-Length, runs to the end of data.
func UnmarshalRequest(data []byte) (*Request, int, error) {
	return UnmarshalRequestMode(data, BodyToEnd)
}

// UnmarshalResponse parses data as an HTTP response.
func UnmarshalResponse(data []byte) (*Response, int, error) {
	return UnmarshalResponseMode(data, BodyToEnd)
}

// UnmarshalRequestMode is UnmarshalRequest with an explicit BodyMode.
// Uses a stack-allocated Parser to avoid heap allocation.
func UnmarshalRequestMode(data []byte, mode BodyMode) (*Request, int, error) {
	var p Parser
	initParser(&p, data)
	p.SetBodyMode(mode)
	return p.ParseRequest()
}

// UnmarshalResponseMode is UnmarshalResponse with an explicit BodyMode.
func UnmarshalResponseMode(data []byte, mode BodyMode) (*Response, int, error) {
	var p Parser
	initParser(&p, data)
	p.SetBodyMode(mode)
	return p.ParseResponse()
}
