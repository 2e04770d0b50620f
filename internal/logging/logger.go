// Package logging defines the structured-logging interface used across
// authclient, with slog and zap backends.
package logging

import (
	"context"
	"io"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "login succeeded", "user", email, "request_id", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

// Supported backends.
const (
	FormatText = "text"
	FormatZap  = "zap"
)

// Log levels accepted by New.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// New builds a Logger writing to w. Unknown formats fall back to slog text,
// unknown levels to info.
func New(format, level string, w io.Writer) Logger {
	level = strings.ToLower(level)
	switch strings.ToLower(format) {
	case FormatZap:
		return NewZapLogger(w, level)
	default:
		return NewTextLogger(w, level)
	}
}

// Nop discards everything. Handy for tests and library callers that do not
// care about logs.
func Nop() Logger {
	return New(FormatText, ErrorLevel, io.Discard)
}
