// Package testutil provides in-memory *http.Response fixtures for testing
// generated API clients without a network.
package testutil
