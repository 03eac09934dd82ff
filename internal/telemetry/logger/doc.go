// Package logger provides structured logging for velocity-go.
//
// This package wraps zerolog behind a small leveled interface:
//
//   - logger.go: Logger interface, configuration and the zerolog backend
//   - context.go: Context propagation of a Logger
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering
//   - Key/value arguments attached as structured fields
package logger
