// Package logging provides structured logging for qverify services.
//
// The CLI stays quiet on stdout (the report owns that stream), so loggers
// default to stderr text output. The HTTP server switches to JSON for
// machine-parseable request logs.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Config configures a Logger. The zero value yields Info-level text output
// on stderr with no service attribute.
type Config struct {
	// Level sets the minimum level; records below it are discarded.
	Level slog.Level

	// Service is attached to every record as the "service" attribute when
	// non-empty, so aggregated logs can be filtered by component.
	Service string

	// Writer receives the output; nil selects os.Stderr.
	Writer io.Writer

	// JSON switches the handler from text to JSON format.
	JSON bool
}

// New builds a slog.Logger from cfg.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}
	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(h)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}
	return logger
}

// Default returns an Info-level text logger on stderr.
func Default() *slog.Logger {
	return New(Config{})
}
