// Package logging builds the zerolog logger used by the CLI and the HTTP server.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/toolbench/toolbench/internal/config"
)

// New returns a logger configured by cfg, writing to w unless cfg.File is set, in which case records are appended to that file instead. The returned close
// function releases the file (it is a no-op otherwise) and must be called when logging is done.
func New(cfg config.Log, w io.Writer) (zerolog.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), noClose, err
	}

	closeFn := noClose
	isFile := false
	if cfg.File != "" {
		f, err := os.OpenFile(config.ExpandPath(cfg.File), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), noClose, fmt.Errorf("open log file: %w", err)
		}
		// A single *os.File is shared by every request goroutine.
		w = zerolog.SyncWriter(f)
		closeFn = f.Close
		isFile = true
	}

	switch strings.ToLower(cfg.Format) {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: isFile}
	case "json":
	default:
		if isFile {
			_ = closeFn()
		}
		return zerolog.Nop(), noClose, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), closeFn, nil
}

// Setup is New followed by installing the logger as the global log.Logger.
func Setup(cfg config.Log, w io.Writer) (func() error, error) {
	l, closeFn, err := New(cfg, w)
	if err != nil {
		return noClose, err
	}
	log.Logger = l
	return closeFn, nil
}

// ParseLevel parses debug, info, warn or error. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
}

func noClose() error { return nil }
