// Package tracer provides distributed tracing using OpenTelemetry.
//
// It abstracts span creation, error recording and attribute handling behind
// a small API so application code never touches the OpenTelemetry SDK
// directly. Export over OTLP/HTTP is optional; without it the provider only
// records spans in-process, which is what tests and local runs want.
//
// Basic usage:
//
//	ctx, span := tracerClient.StartSpan(ctx, "build-figure")
//	defer span.End()
//	tracerClient.SetAttributes(span, map[string]interface{}{
//		"points": 1200,
//	})
package tracer
