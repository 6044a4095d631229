// Package runtime is the support layer consumed by generated HTTP API
// clients. Generated call sites wrap every raw response into the uniform
// success/error model defined here instead of re-implementing status, header,
// body, streaming, and protocol-upgrade handling per endpoint.
//
// The three central types:
//
//   - ResponseValue[T] pairs a decoded (or stream/unit/upgraded-connection)
//     body with the status code and headers of the response that produced it.
//   - ByteStream wraps an untyped response body as a single-consumption
//     stream.
//   - Error[E] is the closed set of ways a call can fail to produce a usable
//     ResponseValue, parameterized by the endpoint's documented error-body
//     type E.
//
// A generated call site observes the status code, consults the endpoint's
// documented contract, and invokes exactly one construction path:
//
//	resp, err := client.Do(req)
//	if err != nil {
//	    return nil, runtime.NewCommunicationError[ErrorBody](err)
//	}
//	switch resp.StatusCode {
//	case 200:
//	    return runtime.DecodeJSONResponse[Pet, ErrorBody](resp)
//	case 404:
//	    rv, rerr := runtime.DecodeJSONResponse[ErrorBody, ErrorBody](resp)
//	    if rerr != nil {
//	        return nil, rerr
//	    }
//	    return nil, runtime.NewErrorResponse(rv)
//	default:
//	    return nil, runtime.NewUnexpectedResponseError[ErrorBody](resp)
//	}
//
// The package performs no retries, enforces no timeouts, and never judges
// success or failure beyond the upgrade path's explicit 101 check; those
// decisions belong to the transport and the generated call site.
package runtime
