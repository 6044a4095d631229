package transport

import (
	"net/http"
	"time"

	"github.com/kbukum/apikit/logger"
)

// LoggingTransport logs every request with method, URL, status code, and
// duration. The log level follows the status class: 5xx and transport
// failures log at error, 4xx at warn, everything else at debug.
type LoggingTransport struct {
	base http.RoundTripper
	log  *logger.Logger
}

// NewLoggingTransport wraps base with request logging.
func NewLoggingTransport(base http.RoundTripper, log *logger.Logger) *LoggingTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &LoggingTransport{base: base, log: log.WithComponent("transport")}
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	duration := time.Since(start)

	fields := map[string]interface{}{
		logger.FieldMethod:   req.Method,
		logger.FieldURL:      req.URL.Redacted(),
		logger.FieldDuration: duration.Milliseconds(),
	}
	if id := req.Header.Get(RequestIDHeader); id != "" {
		fields[logger.FieldRequestID] = id
	}

	if err != nil {
		fields[logger.FieldError] = err.Error()
		t.log.Error("request failed", fields)
		return nil, err
	}

	fields[logger.FieldStatus] = resp.StatusCode
	switch {
	case resp.StatusCode >= 500:
		t.log.Error("request completed", fields)
	case resp.StatusCode >= 400:
		t.log.Warn("request completed", fields)
	default:
		t.log.Debug("request completed", fields)
	}
	return resp, nil
}
