// Package logger provides structured logging for generated API clients and
// the transport decorators that wrap them, built on zerolog.
//
// A Logger is cheap to copy and safe for concurrent use. Construct one per
// client (or share one across clients) and hand it to the transport
// decorators:
//
//	log := logger.NewDefault("petstore-client")
//	rt := transport.NewLoggingTransport(http.DefaultTransport, log)
package logger
