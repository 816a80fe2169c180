// Package server exposes the project generator over HTTP.
//
// Routes:
//
//	POST /api/v1/environments  rendered artifacts as JSON
//	POST /api/v1/download      the project as a zip archive
//	GET  /healthz, /readyz     liveness and readiness checks
//	GET  /metrics              Prometheus metrics
//
// Validation failures are answered with 400 and the complete list of
// violations. Rendering and packaging failures are logged and answered with
// a generic 500 response.
package server
