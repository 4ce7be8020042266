// Package dashboard serves the interactive embedding explorer over HTTP.
//
// Three endpoints:
//
//	GET /            full HTML page with the plotly figure embedded
//	GET /api/figure  figure JSON for programmatic use
//	GET /healthz     liveness probe
//
// Both figure endpoints accept query parameters:
//
//	filter      URL-encoded JSON query expression applied to the documents
//	color_by    comma-separated field paths for the color dropdown
//	components  2 or 3
//
// Malformed filters and parameters come back as 400 with the error text;
// everything else that fails is a 500. The server wires into Fx the same
// way the metrics server does and carries the request path through the
// logger, Prometheus metrics and the tracer.
package dashboard
