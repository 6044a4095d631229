// Package auth decorates requests from generated API clients with
// authentication: bearer tokens, basic credentials, API keys, or a custom
// function. A TokenSource keeps a bearer token fresh by inspecting its JWT
// expiry.
//
//	cfg := auth.Bearer("my-token")
//	cfg.Apply(req)
//
// or as a transport decorator:
//
//	client := &http.Client{Transport: auth.NewTransport(nil, cfg)}
package auth
