// Package httpclient abstracts the HTTP transport behind a single contract so
// blocking, asynchronous, and browser-backed variants stay interchangeable.
package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client performs an HTTP GET with optional headers. Implementations differ
// in I/O mechanism only; the request they issue must be identical.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// BodyReadError reports that the request itself succeeded but the response
// body could not be read.
type BodyReadError struct {
	Err error
}

func (e *BodyReadError) Error() string { return "read response body: " + e.Err.Error() }
func (e *BodyReadError) Unwrap() error { return e.Err }

// rawResponse adapts an already-read body to the Response interface.
type rawResponse struct {
	body       []byte
	statusCode int
}

func (r *rawResponse) Body() []byte    { return r.body }
func (r *rawResponse) StatusCode() int { return r.statusCode }
