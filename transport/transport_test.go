package transport

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/apikit/logger"
)

func newEchoServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(RequestIDHeader); id != "" {
			w.Header().Set(RequestIDHeader, id)
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoggingTransport_PassesThrough(t *testing.T) {
	srv := newEchoServer(t, 200)
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "test-client")

	client := &http.Client{Transport: NewLoggingTransport(nil, log)}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestLoggingTransport_LogsStatusClass(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{500, `"level":"error"`},
		{404, `"level":"warn"`},
	}
	for _, tt := range tests {
		srv := newEchoServer(t, tt.status)
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, "test-client")

		client := &http.Client{Transport: NewLoggingTransport(nil, log)}
		resp, err := client.Get(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp.Body.Close()

		out := buf.String()
		if !strings.Contains(out, tt.wantLevel) {
			t.Errorf("status %d: expected %s in output, got %s", tt.status, tt.wantLevel, out)
		}
		if !strings.Contains(out, `"method":"GET"`) {
			t.Errorf("status %d: expected method field, got %s", tt.status, out)
		}
	}
}

func TestRequestIDTransport_InjectsID(t *testing.T) {
	srv := newEchoServer(t, 200)

	client := &http.Client{Transport: NewRequestIDTransport(nil)}
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	if resp.Header.Get(RequestIDHeader) == "" {
		t.Error("expected an injected request id")
	}
	// The original request must stay untouched.
	if req.Header.Get(RequestIDHeader) != "" {
		t.Error("transport mutated the caller's request")
	}
}

func TestRequestIDTransport_KeepsExistingID(t *testing.T) {
	srv := newEchoServer(t, 200)

	client := &http.Client{Transport: NewRequestIDTransport(nil)}
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	if got := resp.Header.Get(RequestIDHeader); got != "fixed-id" {
		t.Errorf("expected fixed-id preserved, got %q", got)
	}
}

func TestTracingTransport_RecordsClientSpan(t *testing.T) {
	srv := newEchoServer(t, 200)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	rt := &TracingTransport{
		base:       http.DefaultTransport,
		tracer:     tp.Tracer(tracerName),
		propagator: propagation.NewCompositeTextMapPropagator(),
	}

	client := &http.Client{Transport: rt}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name() != "HTTP GET" {
		t.Errorf("unexpected span name %q", spans[0].Name())
	}
	if spans[0].SpanKind() != trace.SpanKindClient {
		t.Errorf("expected client span, got %v", spans[0].SpanKind())
	}
}

func TestMetricsTransport_PassesThrough(t *testing.T) {
	srv := newEchoServer(t, 204)

	rt, err := NewMetricsTransport(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client := &http.Client{Transport: rt}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != 204 {
		t.Errorf("expected 204, got %d", resp.StatusCode)
	}
}
