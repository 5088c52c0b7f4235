// Package server hosts a component tree over HTTP: each websocket
// connection mounts its own runtime, and every store-driven
// invalidation pushes a freshly serialized HTML frame to the client.
// Prometheus metrics and OpenTelemetry spans cover the update cycle.
package server
