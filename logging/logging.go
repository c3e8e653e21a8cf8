// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package logging builds the command line logger.
package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"

	"github.com/ezrec/turing/translate"
)

var f = translate.From

var (
	ErrLevel = errors.New(f("unknown log level"))
)

// Options configures New.
type Options struct {
	Level  slog.Level
	Stderr io.Writer // Text output; os.Stderr if nil.
	File   io.Writer // If set, also receives JSON records.
}

// replaceAttr standardizes the 'error' key to 'err'.
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == "error" {
		a.Key = "err"
	}
	return a
}

// New creates a logger writing text to stderr, and JSON to the log file
// when one is given.
func New(opts Options) *slog.Logger {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	handlerOptions := &slog.HandlerOptions{
		Level:       opts.Level,
		ReplaceAttr: replaceAttr,
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, handlerOptions),
	}
	if opts.File != nil {
		handlers = append(handlers, slog.NewJSONHandler(opts.File, handlerOptions))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts a level name (debug, info, warn, error) to a level.
func ParseLevel(name string) (level slog.Level, err error) {
	switch strings.ToLower(name) {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		err = errors.Join(ErrLevel, errors.New(name))
	}

	return
}
