// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Request-scoped loggers (for example one carrying a
// trace_id) travel through context.Context via WithLogger and FromContextOrDefault.
package logger
