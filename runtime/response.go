package runtime

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// Unit is the body type of responses that carry no meaningful content.
type Unit = struct{}

// ErrUpgradeUnsupported is reported when a 101 response's body does not
// expose a bidirectional connection.
var ErrUpgradeUnsupported = errors.New("runtime: response body does not support protocol upgrade")

// ResponseValue pairs a decoded body with the status code and headers of the
// response that produced it. Status and headers are captured verbatim whether
// T represents a success body or a documented error body; ResponseValue
// itself carries no success/failure judgment.
type ResponseValue[T any] struct {
	inner  T
	status int
	header http.Header
}

// NewResponseValue creates a ResponseValue from the inner value, status, and
// headers.
//
// Useful for generating test fixtures.
func NewResponseValue[T any](inner T, status int, header http.Header) *ResponseValue[T] {
	return &ResponseValue[T]{inner: inner, status: status, header: header}
}

// DecodeJSONResponse captures the response's status and headers, then decodes
// its body as JSON into T. A body that fails to read or decode produces an
// invalid-response-payload error. The response body is consumed and closed.
func DecodeJSONResponse[T any, E any](resp *http.Response) (*ResponseValue[T], *Error[E]) {
	status := resp.StatusCode
	header := resp.Header.Clone()

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, NewInvalidResponsePayloadError[E](status, fmt.Errorf("read response body: %w", err))
	}

	var inner T
	if err := json.Unmarshal(body, &inner); err != nil {
		return nil, NewInvalidResponsePayloadError[E](status, fmt.Errorf("decode response body: %w", err))
	}

	return &ResponseValue[T]{inner: inner, status: status, header: header}, nil
}

// UpgradeResponse captures the response's status and headers and wraps its
// upgraded connection handle. Only a 101 Switching Protocols response is
// accepted; any other status produces an unexpected-response error carrying
// the raw response untouched. The net/http client exposes the upgraded
// connection as the 101 response's body; a body that does not implement
// io.ReadWriteCloser produces an invalid-response-payload error.
func UpgradeResponse[E any](resp *http.Response) (*ResponseValue[io.ReadWriteCloser], *Error[E]) {
	if resp.StatusCode != http.StatusSwitchingProtocols {
		return nil, NewUnexpectedResponseError[E](resp)
	}

	conn, ok := resp.Body.(io.ReadWriteCloser)
	if !ok {
		return nil, NewInvalidResponsePayloadError[E](resp.StatusCode, ErrUpgradeUnsupported)
	}

	return &ResponseValue[io.ReadWriteCloser]{
		inner:  conn,
		status: resp.StatusCode,
		header: resp.Header.Clone(),
	}, nil
}

// StreamResponse captures the response's status and headers and wraps its
// body as a ByteStream. This path cannot fail at construction time; stream
// failures surface lazily, per read, as the stream is consumed.
func StreamResponse(resp *http.Response) *ResponseValue[*ByteStream] {
	return &ResponseValue[*ByteStream]{
		inner:  NewByteStream(resp.Body),
		status: resp.StatusCode,
		header: resp.Header.Clone(),
	}
}

// EmptyResponse captures the response's status and headers for a response
// expected to carry no meaningful body. The body is drained and closed but
// not validated to actually be empty.
func EmptyResponse(resp *http.Response) *ResponseValue[Unit] {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return &ResponseValue[Unit]{
		status: resp.StatusCode,
		header: resp.Header.Clone(),
	}
}

// IntoInner consumes the ResponseValue, returning the wrapped body.
func (rv *ResponseValue[T]) IntoInner() T {
	return rv.inner
}

// Status returns the response's status code.
func (rv *ResponseValue[T]) Status() int {
	return rv.status
}

// Headers returns the response's headers.
func (rv *ResponseValue[T]) Headers() http.Header {
	return rv.header
}

// ContentLength returns the parsed Content-Length header value. The second
// return is false when the header is missing, non-numeric, or negative.
func (rv *ResponseValue[T]) ContentLength() (int64, bool) {
	v := rv.header.Get("Content-Length")
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// MapResponse projects the body through f while preserving status and
// headers, adapting one body shape into another without re-fetching. The
// headers are cloned so the two values never share mutable state.
func MapResponse[T any, U any](rv *ResponseValue[T], f func(T) U) *ResponseValue[U] {
	return &ResponseValue[U]{
		inner:  f(rv.inner),
		status: rv.status,
		header: rv.header.Clone(),
	}
}
