package runtime

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"reflect"
	"strings"
)

// RawFormField is one (field name, raw bytes) pair of a multipart form body.
type RawFormField struct {
	Name  string
	Value []byte
}

// SetFormURLEncodedBody serializes body as application/x-www-form-urlencoded
// and installs it on req together with the content-type header. body may be a
// url.Values, a map of strings to strings or string slices, or a (pointer to)
// struct whose fields carry `form` tags (falling back to `json` tags, then
// field names). A value that cannot be serialized produces an
// invalid-request error; no network activity has occurred at that point.
func SetFormURLEncodedBody[E any](req *http.Request, body any) *Error[E] {
	values, err := formValues(body)
	if err != nil {
		return NewInvalidRequestError[E](fmt.Sprintf("failed to serialize body: %v", err))
	}
	setBody(req, []byte(values.Encode()), "application/x-www-form-urlencoded")
	return nil
}

// SetMultipartBody builds a multipart/form-data body from raw byte fields and
// installs it on req together with the boundary-bearing content-type header.
// Raw bytes always form valid parts, so this path does not fail.
func SetMultipartBody(req *http.Request, fields []RawFormField) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	// Writes to a bytes.Buffer cannot fail.
	for _, f := range fields {
		part, _ := w.CreateFormField(f.Name)
		_, _ = part.Write(f.Value)
	}
	_ = w.Close()
	setBody(req, buf.Bytes(), w.FormDataContentType())
}

func setBody(req *http.Request, data []byte, contentType string) {
	req.Body = io.NopCloser(bytes.NewReader(data))
	req.ContentLength = int64(len(data))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	req.Header.Set("Content-Type", contentType)
}

func formValues(body any) (url.Values, error) {
	switch v := body.(type) {
	case nil:
		return url.Values{}, nil
	case url.Values:
		return v, nil
	case map[string]string:
		values := make(url.Values, len(v))
		for k, s := range v {
			values.Set(k, s)
		}
		return values, nil
	case map[string][]string:
		return url.Values(v), nil
	}

	rv := reflect.ValueOf(body)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return url.Values{}, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported body type %T", body)
	}

	values := url.Values{}
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitempty := fieldName(field)
		if name == "-" {
			continue
		}
		fv := rv.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		if omitempty && fv.IsZero() {
			continue
		}
		if fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() != reflect.Uint8 {
			for j := 0; j < fv.Len(); j++ {
				s, err := scalarString(fv.Index(j))
				if err != nil {
					return nil, fmt.Errorf("field %s: %w", field.Name, err)
				}
				values.Add(name, s)
			}
			continue
		}
		s, err := scalarString(fv)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		values.Add(name, s)
	}
	return values, nil
}

func fieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("form")
	if tag == "" {
		tag = field.Tag.Get("json")
	}
	if tag == "" {
		return field.Name, false
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, strings.Contains(opts, "omitempty")
}

func scalarString(v reflect.Value) (string, error) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%v", v.Interface()), nil
	default:
		return "", fmt.Errorf("unsupported value kind %s", v.Kind())
	}
}
