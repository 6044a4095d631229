// Package transport decorates the http.RoundTripper a generated client is
// wired to with ambient concerns: request logging, request-id injection,
// tracing, and metrics.
//
// Decorators never change HTTP semantics and never retry; they observe the
// exchange and pass it through. Compose them innermost-first:
//
//	rt := transport.NewLoggingTransport(
//	    transport.NewTracingTransport(http.DefaultTransport),
//	    log,
//	)
//	client := &http.Client{Transport: transport.NewRequestIDTransport(rt)}
package transport
