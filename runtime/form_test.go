package runtime

import (
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func newFormRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "https://api.example.com/submit", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return req
}

func requestForm(t *testing.T, req *http.Request) url.Values {
	t.Helper()
	data, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("read request body: %v", err)
	}
	values, err := url.ParseQuery(string(data))
	if err != nil {
		t.Fatalf("parse form body: %v", err)
	}
	return values
}

func TestSetFormURLEncodedBody_Values(t *testing.T) {
	req := newFormRequest(t)

	if rerr := SetFormURLEncodedBody[Unit](req, url.Values{"name": {"rex"}, "tag": {"a", "b"}}); rerr != nil {
		t.Fatalf("unexpected error: %v", rerr)
	}
	if ct := req.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
		t.Errorf("unexpected content type %q", ct)
	}

	values := requestForm(t, req)
	if values.Get("name") != "rex" {
		t.Errorf("expected name=rex, got %q", values.Get("name"))
	}
	if got := values["tag"]; len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("expected repeated tag values, got %v", got)
	}
}

func TestSetFormURLEncodedBody_Map(t *testing.T) {
	req := newFormRequest(t)

	if rerr := SetFormURLEncodedBody[Unit](req, map[string]string{"q": "dogs & cats"}); rerr != nil {
		t.Fatalf("unexpected error: %v", rerr)
	}

	values := requestForm(t, req)
	if values.Get("q") != "dogs & cats" {
		t.Errorf("expected escaped round trip, got %q", values.Get("q"))
	}
}

func TestSetFormURLEncodedBody_Struct(t *testing.T) {
	type searchForm struct {
		Query   string   `form:"q"`
		Limit   int      `json:"limit"`
		Exact   bool     `form:"exact"`
		Tags    []string `form:"tag"`
		Cursor  *string  `form:"cursor"`
		Skipped string   `form:"-"`
		Empty   string   `form:"empty,omitempty"`
	}

	req := newFormRequest(t)
	if rerr := SetFormURLEncodedBody[Unit](req, &searchForm{
		Query:   "rex",
		Limit:   10,
		Exact:   true,
		Tags:    []string{"dog", "good"},
		Skipped: "never",
	}); rerr != nil {
		t.Fatalf("unexpected error: %v", rerr)
	}

	values := requestForm(t, req)
	if values.Get("q") != "rex" || values.Get("limit") != "10" || values.Get("exact") != "true" {
		t.Errorf("unexpected scalar encoding: %v", values)
	}
	if got := values["tag"]; len(got) != 2 {
		t.Errorf("expected 2 tag values, got %v", got)
	}
	if _, ok := values["cursor"]; ok {
		t.Error("nil pointer field must be omitted")
	}
	if _, ok := values["-"]; ok {
		t.Error("dash-tagged field must be omitted")
	}
	if _, ok := values["empty"]; ok {
		t.Error("omitempty zero value must be omitted")
	}
	if _, ok := values["Skipped"]; ok {
		t.Error("dash-tagged field must be omitted")
	}
}

func TestSetFormURLEncodedBody_UnserializableBody(t *testing.T) {
	req := newFormRequest(t)

	rerr := SetFormURLEncodedBody[Unit](req, 42)
	if rerr == nil {
		t.Fatal("expected error, got nil")
	}
	if rerr.Kind() != KindInvalidRequest {
		t.Errorf("expected invalid_request, got %s", rerr.Kind())
	}
	if _, ok := rerr.Status(); ok {
		t.Error("invalid_request carries no status")
	}
	if !strings.Contains(rerr.Error(), "failed to serialize body") {
		t.Errorf("unexpected message: %q", rerr.Error())
	}
}

func TestSetMultipartBody(t *testing.T) {
	req := newFormRequest(t)

	SetMultipartBody(req, []RawFormField{
		{Name: "file", Value: []byte{0x00, 0x01, 0xff}},
		{Name: "note", Value: []byte("hello")},
	})

	mediaType, params, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if err != nil {
		t.Fatalf("parse content type: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Errorf("expected multipart/form-data, got %q", mediaType)
	}
	if params["boundary"] == "" {
		t.Fatal("expected boundary parameter")
	}

	mr := multipart.NewReader(req.Body, params["boundary"])
	form, err := mr.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read multipart form: %v", err)
	}
	if got := form.Value["note"]; len(got) != 1 || got[0] != "hello" {
		t.Errorf("expected note part, got %v", got)
	}
	if got := form.Value["file"]; len(got) != 1 || got[0] != string([]byte{0x00, 0x01, 0xff}) {
		t.Errorf("raw bytes must survive unchanged, got %q", got)
	}
}
