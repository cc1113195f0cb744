// Package logger holds akoctl's global structured logger. It defaults to
// discarding everything; main wires it to stderr when --verbose is set.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance, discarding output until Init is called.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init enables logging to stderr at debug level when verbose is true, and
// discards output otherwise.
func Init(verbose bool) {
	if !verbose {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
