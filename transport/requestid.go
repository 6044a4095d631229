package transport

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the per-request correlation id.
const RequestIDHeader = "X-Request-Id"

// RequestIDTransport injects a unique X-Request-Id header into every request
// that does not already carry one.
type RequestIDTransport struct {
	base http.RoundTripper
}

// NewRequestIDTransport wraps base with request-id injection.
func NewRequestIDTransport(base http.RoundTripper) *RequestIDTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RequestIDTransport{base: base}
}

// RoundTrip implements http.RoundTripper. The incoming request is cloned
// before modification, as required by the RoundTripper contract.
func (t *RequestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(RequestIDHeader) != "" {
		return t.base.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set(RequestIDHeader, uuid.New().String())
	return t.base.RoundTrip(clone)
}
