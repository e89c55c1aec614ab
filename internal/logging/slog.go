// Package logging centralizes the structured logging conventions for
// drivetoken: consistent slog attribute names and a handler setup
// shared by every command. Tokens and secrets are never logged.
package logging

import (
	"io"
	"log/slog"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation = "operation"
	KeyStatus    = "status"
	KeyError     = "error"
	KeyPath      = "path"
)

// Status values for consistent logging.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// New builds the logger every command uses: a text handler writing to w,
// at debug level when verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Path returns a slog attribute for a file path.
func Path(path string) slog.Attr {
	return slog.String(KeyPath, path)
}

// Err returns a slog attribute for an error. If err is nil, returns an
// empty Group attribute that will be omitted from output, so
// Err(maybeNilErr) is always safe to pass.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}
