// Package serve exposes the exported registry over HTTP for
// third-party tooling, with Prometheus metrics, OpenTelemetry traces,
// and an optional watch mode that rebuilds documents when an on-disk
// template root changes and notifies websocket clients.
//
// Routes:
//
//	GET /registry.json   aggregate manifest
//	GET /r/{name}.json   per-item document
//	GET /healthz         liveness probe
//	GET /metrics         Prometheus metrics
//	GET /__reload        websocket reload notifications (watch mode)
package serve
