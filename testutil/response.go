package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"testing"
)

// JSONResponse builds a response with a JSON-encoded body and matching
// Content-Type and Content-Length headers.
func JSONResponse(tb testing.TB, status int, body any) *http.Response {
	tb.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		tb.Fatalf("testutil: marshal body: %v", err)
	}
	return BytesResponse(status, "application/json", data)
}

// BytesResponse builds a response with a raw byte body.
func BytesResponse(status int, contentType string, body []byte) *http.Response {
	header := http.Header{
		"Content-Length": {strconv.Itoa(len(body))},
	}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

// EmptyResponse builds a bodyless response with the given status.
func EmptyResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{},
		Body:       http.NoBody,
	}
}

// Conn is an in-memory io.ReadWriteCloser standing in for an upgraded
// connection.
type Conn struct {
	bytes.Buffer
	Closed bool
}

// Close implements io.Closer.
func (c *Conn) Close() error {
	c.Closed = true
	return nil
}

// UpgradedResponse builds a 101 Switching Protocols response whose body is an
// in-memory bidirectional connection. The returned Conn is the same value the
// response body asserts to.
func UpgradedResponse(protocol string) (*http.Response, *Conn) {
	conn := &Conn{}
	return &http.Response{
		StatusCode: http.StatusSwitchingProtocols,
		Status:     http.StatusText(http.StatusSwitchingProtocols),
		Header: http.Header{
			"Connection": {"Upgrade"},
			"Upgrade":    {protocol},
		},
		Body: conn,
	}, conn
}
