package main

import (
	"io"
	"log/slog"
	"os"
)

// logger is discarded until initLogger runs.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// initLogger configures stderr logging. Warnings and errors are shown by
// default; each -v lowers the threshold one step. quiet keeps errors only.
func initLogger(verbosity int, quiet bool) {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
