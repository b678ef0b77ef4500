// Package logger provides structured logging for msgserver.
//
// It wraps log/slog:
//
//   - logger.go: handler selection (json/text), global level control
//   - context.go: context propagation of the logger and connection IDs
//
// The level is held in a shared slog.LevelVar so it can be changed at
// runtime, for example when the configuration file is reloaded.
package logger
