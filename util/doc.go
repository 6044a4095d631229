// Package util provides small helpers for generated API clients, chiefly
// pointer construction for optional request and response fields.
package util
