package runtime

import (
	"errors"
	"io"
)

// ErrStreamConsumed is returned by ByteStream operations after the inner
// stream has been extracted with IntoInner.
var ErrStreamConsumed = errors.New("runtime: byte stream already consumed")

// ByteStream wraps an untyped response body as a single-consumption stream.
// It is used for both success and error responses whose bodies are not
// structured data. A failure mid-stream surfaces as a read error from the
// inner stream, never as a wrapper-level error: by the time streaming starts
// the wrapper has already been handed to the caller.
type ByteStream struct {
	inner io.ReadCloser
}

// NewByteStream wraps a raw body stream.
//
// Useful for generating test fixtures.
func NewByteStream(inner io.ReadCloser) *ByteStream {
	return &ByteStream{inner: inner}
}

// IntoInner consumes the ByteStream and returns its inner stream. The
// ByteStream is unusable afterwards; subsequent calls return nil and
// subsequent Read/Close calls fail with ErrStreamConsumed.
func (s *ByteStream) IntoInner() io.ReadCloser {
	inner := s.inner
	s.inner = nil
	return inner
}

// Read passes through to the inner stream.
func (s *ByteStream) Read(p []byte) (int, error) {
	if s.inner == nil {
		return 0, ErrStreamConsumed
	}
	return s.inner.Read(p)
}

// Close closes the inner stream.
func (s *ByteStream) Close() error {
	if s.inner == nil {
		return ErrStreamConsumed
	}
	return s.inner.Close()
}
