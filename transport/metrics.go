package transport

import (
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/kbukum/apikit/transport"

// MetricsTransport records a request counter and duration histogram per
// request using the globally registered meter provider.
type MetricsTransport struct {
	base     http.RoundTripper
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewMetricsTransport wraps base with metric recording.
func NewMetricsTransport(base http.RoundTripper) (*MetricsTransport, error) {
	if base == nil {
		base = http.DefaultTransport
	}
	meter := otel.Meter(meterName)

	requests, err := meter.Int64Counter("http.client.requests",
		metric.WithDescription("Completed client requests"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("http.client.duration",
		metric.WithDescription("Client request duration"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	return &MetricsTransport{base: base, requests: requests, duration: duration}, nil
}

// RoundTrip implements http.RoundTripper.
func (t *MetricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	attrs := metric.WithAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("http.status", status),
	)
	t.requests.Add(req.Context(), 1, attrs)
	t.duration.Record(req.Context(), elapsed, attrs)

	return resp, err
}
