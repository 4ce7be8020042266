// Package logger provides structured JSON logging on top of Uber's Zap.
//
// It follows the "accept interfaces, return structs" pattern: the Logger
// struct wraps *zap.Logger with a simplified method set, and the FX module
// wires construction and the Sync-on-shutdown lifecycle hook.
//
// Direct usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "diorama",
//	})
//	log.Info("figure built", nil, map[string]interface{}{
//		"points": 1200,
//	})
//
// When tracing is enabled the *WithContext methods extract the active
// OpenTelemetry span from the context and attach trace_id and span_id to
// the entry.
package logger
