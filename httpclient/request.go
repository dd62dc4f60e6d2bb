package httpclient

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, HEAD, etc).
	Method string
	// Path is appended to the configured base path.
	Path string
	// Headers are request-specific headers (merged with client defaults).
	Headers map[string]string
	// Query are URL query parameters (merged with configured parameters).
	Query map[string]string
	// Body is the raw request body.
	Body []byte
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}
