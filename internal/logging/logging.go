/*
File    : loxgo/internal/logging/logging.go
Package : logging

Package logging sets up the ambient diagnostic logger each pipeline
stage writes to (the input size of scan/parse/resolve, and the start
of evaluation) via
log/slog. This is purely operational: it never substitutes for the
user-observable `print` output or the [line N] error reports; those
always go to the Session's own writers, never through a Logger.
*/
package logging

import (
	"io"
	"log/slog"
)

// Level names accepted by the --log-level CLI flag.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// New builds a text-handler slog.Logger writing to w at the given
// level name (defaulting to LevelWarn on an unrecognized name, so a
// typo'd flag degrades to quiet rather than noisy).
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

// Discard is the logger used when the CLI is not asked for
// diagnostics: a text handler at the default Info level whose output
// goes to io.Discard.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
