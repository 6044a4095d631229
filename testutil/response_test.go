package testutil

import (
	"io"
	"net/http"
	"testing"

	"github.com/kbukum/apikit/runtime"
)

func TestJSONResponse_DecodesThroughRuntime(t *testing.T) {
	resp := JSONResponse(t, 200, map[string]int{"id": 7})

	rv, rerr := runtime.DecodeJSONResponse[struct {
		ID int `json:"id"`
	}, runtime.Unit](resp)
	if rerr != nil {
		t.Fatalf("unexpected error: %v", rerr)
	}
	if rv.IntoInner().ID != 7 {
		t.Errorf("expected id 7, got %d", rv.IntoInner().ID)
	}
	if length, ok := rv.ContentLength(); !ok || length == 0 {
		t.Errorf("expected content length header, got (%d, %v)", length, ok)
	}
}

func TestBytesResponse(t *testing.T) {
	resp := BytesResponse(200, "application/octet-stream", []byte{1, 2, 3})

	rv := runtime.StreamResponse(resp)
	data, err := io.ReadAll(rv.IntoInner())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != 3 {
		t.Errorf("expected 3 bytes, got %d", len(data))
	}
}

func TestEmptyResponse(t *testing.T) {
	resp := EmptyResponse(204)

	rv := runtime.EmptyResponse(resp)
	if rv.Status() != 204 {
		t.Errorf("expected 204, got %d", rv.Status())
	}
}

func TestUpgradedResponse(t *testing.T) {
	resp, conn := UpgradedResponse("websocket")
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}

	rv, rerr := runtime.UpgradeResponse[runtime.Unit](resp)
	if rerr != nil {
		t.Fatalf("unexpected error: %v", rerr)
	}

	handle := rv.IntoInner()
	if _, err := handle.Write([]byte("hi")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if conn.String() != "hi" {
		t.Errorf("expected write to reach the fixture connection, got %q", conn.String())
	}
	if err := handle.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !conn.Closed {
		t.Error("expected fixture connection to observe Close")
	}
}
