// Package observability bootstraps OpenTelemetry export for applications
// embedding generated API clients. InitTracer and InitMeter register global
// providers that the transport decorators pick up automatically.
package observability
