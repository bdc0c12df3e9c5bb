package respio

import "io"

// Response is an immutable HTTP response value: a status code, headers and
// a body. The zero value is usable and means no status, no headers and an
// empty body.
//
// Transformations never modify the receiver. Every operation returns a new
// Response whose headers were cloned before the change, so a value handed
// to another goroutine or stored for later never observes later edits.
type Response struct {
	// Status is the HTTP status code. 0 means the code was never set.
	Status int

	// Headers holds the response headers.
	Headers Headers

	// Body holds the buffered response payload.
	Body []byte

	// Stream, when non-nil, replaces Body as the payload source for
	// serializers that support streaming.
	Stream io.Reader
}

// WithBody returns a copy of the response carrying the given buffered
// payload. Any streaming payload is dropped.
func (r Response) WithBody(body []byte) Response {
	r.Body = body
	r.Stream = nil
	return r
}

// WithStream returns a copy of the response that sources its payload from
// the given reader. Any buffered payload is dropped.
func (r Response) WithStream(stream io.Reader) Response {
	r.Stream = stream
	r.Body = nil
	return r
}

// SetHeader returns a copy of the response in which the given header holds
// exactly one value. Every other header is preserved.
func (r Response) SetHeader(key, value string) Response {
	headers := r.Headers.Clone()
	headers.Set(key, value)
	r.Headers = headers
	return r
}

// AddHeader returns a copy of the response with value appended to the
// values of the given header. Every other header is preserved.
func (r Response) AddHeader(key, value string) Response {
	headers := r.Headers.Clone()
	headers.Add(key, value)
	r.Headers = headers
	return r
}

// IsInformational reports whether the status code is in the 1xx class.
func (r Response) IsInformational() bool {
	return r.Status >= 100 && r.Status < 200
}

// IsSuccess reports whether the status code is in the 2xx class.
func (r Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// IsRedirect reports whether the status code is in the 3xx class.
func (r Response) IsRedirect() bool {
	return r.Status >= 300 && r.Status < 400
}

// IsClientError reports whether the status code is in the 4xx class.
func (r Response) IsClientError() bool {
	return r.Status >= 400 && r.Status < 500
}

// IsServerError reports whether the status code is in the 5xx class.
func (r Response) IsServerError() bool {
	return r.Status >= 500 && r.Status < 600
}
