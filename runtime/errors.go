package runtime

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind identifies which variant of Error is populated. The set is
// closed; generated call sites switch over it exhaustively.
type ErrorKind int

const (
	// KindInvalidRequest means the request could not be constructed; no
	// network activity occurred.
	KindInvalidRequest ErrorKind = iota
	// KindCommunicationError means the transport failed before or while
	// obtaining a response.
	KindCommunicationError
	// KindErrorResponse means a response with a documented error status was
	// received and its body decoded as E.
	KindErrorResponse
	// KindInvalidResponsePayload means a response was received on an expected
	// status but its body failed to decode into the expected type.
	KindInvalidResponsePayload
	// KindUnexpectedResponse means a response was received whose status is
	// not part of the endpoint's contract.
	KindUnexpectedResponse
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindCommunicationError:
		return "communication_error"
	case KindErrorResponse:
		return "error_response"
	case KindInvalidResponsePayload:
		return "invalid_response_payload"
	case KindUnexpectedResponse:
		return "unexpected_response"
	default:
		return "unknown"
	}
}

// Error is the failure produced by generated client methods. Exactly one
// variant is populated. E is the endpoint's documented error-body type; use
// Unit when the endpoint documents no structured error bodies.
type Error[E any] struct {
	kind     ErrorKind
	message  string            // invalid_request
	cause    error             // communication_error, invalid_response_payload
	status   int               // captured status where one was obtained; 0 means none
	response *ResponseValue[E] // error_response
	raw      *http.Response    // unexpected_response
}

// NewInvalidRequestError reports a request that could not be constructed,
// for example a serialization or header-validation failure. Convert a
// validation error by passing its message.
func NewInvalidRequestError[E any](message string) *Error[E] {
	return &Error[E]{kind: KindInvalidRequest, message: message}
}

// NewCommunicationError reports a transport failure (connection, TLS,
// timeout, I/O) that prevented obtaining a response.
func NewCommunicationError[E any](err error) *Error[E] {
	return &Error[E]{kind: KindCommunicationError, cause: err}
}

// NewErrorResponse wraps a fully-formed response value whose status is
// documented as an expected error.
func NewErrorResponse[E any](rv *ResponseValue[E]) *Error[E] {
	return &Error[E]{kind: KindErrorResponse, response: rv}
}

// NewInvalidResponsePayloadError reports a response whose body betrayed the
// endpoint's contract. status is the status of the response that carried the
// undecodable body.
func NewInvalidResponsePayloadError[E any](status int, err error) *Error[E] {
	return &Error[E]{kind: KindInvalidResponsePayload, status: status, cause: err}
}

// NewUnexpectedResponseError carries a response whose status was not
// anticipated by the call's contract. The response is deliberately left
// unclassified, it may be a success or a failure status, and is preserved
// for caller inspection.
func NewUnexpectedResponseError[E any](resp *http.Response) *Error[E] {
	return &Error[E]{kind: KindUnexpectedResponse, raw: resp}
}

// Kind returns the populated variant.
func (e *Error[E]) Kind() ErrorKind {
	return e.kind
}

// Message returns the request-construction failure message. Empty for all
// other variants.
func (e *Error[E]) Message() string {
	return e.message
}

// Response returns the wrapped response value for error_response, nil
// otherwise.
func (e *Error[E]) Response() *ResponseValue[E] {
	return e.response
}

// RawResponse returns the unclassified response for unexpected_response, nil
// otherwise.
func (e *Error[E]) RawResponse() *http.Response {
	return e.raw
}

// Status returns the response's status code where one was ever obtained. The
// second return is false for invalid_request (which never reached the
// network) and for transport failures whose cause carries no status.
func (e *Error[E]) Status() (int, bool) {
	switch e.kind {
	case KindErrorResponse:
		return e.response.Status(), true
	case KindUnexpectedResponse:
		return e.raw.StatusCode, true
	case KindCommunicationError, KindInvalidResponsePayload:
		if e.status > 0 {
			return e.status, true
		}
		var sc interface{ StatusCode() int }
		if errors.As(e.cause, &sc) && sc.StatusCode() > 0 {
			return sc.StatusCode(), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// Error renders a fixed human-readable line per variant. Streaming error
// bodies render as a placeholder since they cannot be shown without being
// consumed.
func (e *Error[E]) Error() string {
	switch e.kind {
	case KindInvalidRequest:
		return fmt.Sprintf("invalid request: %s", e.message)
	case KindCommunicationError:
		return fmt.Sprintf("communication error: %v", e.cause)
	case KindErrorResponse:
		return fmt.Sprintf("error response: %s", formatResponseValue(e.response))
	case KindInvalidResponsePayload:
		return fmt.Sprintf("invalid response payload: %v", e.cause)
	case KindUnexpectedResponse:
		return fmt.Sprintf("unexpected response: status %d; headers %v", e.raw.StatusCode, e.raw.Header)
	default:
		return "unknown error"
	}
}

// Unwrap exposes the transport or decode cause for communication_error and
// invalid_response_payload.
func (e *Error[E]) Unwrap() error {
	return e.cause
}

// Untyped rewrites error_response to discard its typed body, preserving
// status and headers; every other variant passes through unchanged. The
// original error is left intact. Use it to unify handling across calls with
// heterogeneous error-body types.
func Untyped[E any](e *Error[E]) *Error[Unit] {
	out := &Error[Unit]{
		kind:    e.kind,
		message: e.message,
		cause:   e.cause,
		status:  e.status,
		raw:     e.raw,
	}
	if e.kind == KindErrorResponse {
		out.response = &ResponseValue[Unit]{
			status: e.response.status,
			header: e.response.header,
		}
	}
	return out
}

func formatResponseValue[E any](rv *ResponseValue[E]) string {
	if _, ok := any(rv.inner).(*ByteStream); ok {
		return fmt.Sprintf("status %d; headers %v; body <stream>", rv.status, rv.header)
	}
	return fmt.Sprintf("status %d; headers %v; body %+v", rv.status, rv.header, rv.inner)
}
