package auth

import "net/http"

// Type identifies the authentication method.
type Type int

const (
	// TypeNone disables authentication.
	TypeNone Type = iota
	// TypeBearer uses Bearer token authentication.
	TypeBearer
	// TypeBasic uses HTTP Basic authentication.
	TypeBasic
	// TypeAPIKey uses API key authentication (header or query parameter).
	TypeAPIKey
	// TypeCustom uses a custom request-modifier function.
	TypeCustom
)

// Config configures request authentication.
type Config struct {
	// Type is the authentication method.
	Type Type
	// Token is the bearer token (TypeBearer).
	Token string
	// Username is the basic auth username (TypeBasic).
	Username string
	// Password is the basic auth password (TypeBasic).
	Password string
	// Key is the API key value (TypeAPIKey).
	Key string
	// In specifies where to place the API key: "header" (default) or "query".
	In string
	// Name is the header or query parameter name. Defaults to "X-API-Key".
	Name string
	// ApplyFunc is a custom function to modify the request (TypeCustom).
	ApplyFunc func(*http.Request)
}

// Bearer creates a bearer token auth config.
func Bearer(token string) *Config {
	return &Config{Type: TypeBearer, Token: token}
}

// Basic creates a basic auth config.
func Basic(username, password string) *Config {
	return &Config{Type: TypeBasic, Username: username, Password: password}
}

// APIKey creates an API key auth config sent via header.
func APIKey(key string) *Config {
	return &Config{Type: TypeAPIKey, Key: key, In: "header", Name: "X-API-Key"}
}

// APIKeyHeader creates an API key auth config with a custom header name.
func APIKeyHeader(key, headerName string) *Config {
	return &Config{Type: TypeAPIKey, Key: key, In: "header", Name: headerName}
}

// APIKeyQuery creates an API key auth config sent via query parameter.
func APIKeyQuery(key, paramName string) *Config {
	return &Config{Type: TypeAPIKey, Key: key, In: "query", Name: paramName}
}

// Custom creates a custom auth config with a request modifier function.
func Custom(fn func(*http.Request)) *Config {
	return &Config{Type: TypeCustom, ApplyFunc: fn}
}

// Apply applies authentication to an HTTP request.
func (a *Config) Apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case TypeBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case TypeBasic:
		req.SetBasicAuth(a.Username, a.Password)
	case TypeAPIKey:
		name := a.Name
		if name == "" {
			name = "X-API-Key"
		}
		if a.In == "query" {
			q := req.URL.Query()
			q.Set(name, a.Key)
			req.URL.RawQuery = q.Encode()
		} else {
			req.Header.Set(name, a.Key)
		}
	case TypeCustom:
		if a.ApplyFunc != nil {
			a.ApplyFunc(req)
		}
	}
}

// Transport applies an auth config to every request passing through it.
type Transport struct {
	base http.RoundTripper
	cfg  *Config
}

// NewTransport wraps base with authentication.
func NewTransport(base http.RoundTripper, cfg *Config) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, cfg: cfg}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	t.cfg.Apply(clone)
	return t.base.RoundTrip(clone)
}
