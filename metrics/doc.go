// Package metrics exposes Prometheus metrics on a dedicated HTTP server.
//
// Each instance owns an isolated registry, so several components can run in
// one process without metric name collisions. A small set of built-in
// metrics covers the dashboard's request path and figure assembly; the
// Create* factories register additional metrics on demand.
package metrics
