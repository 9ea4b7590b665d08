// Package logging builds the zerolog logger shared by the viewer.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Options selects level and destination
type Options struct {
	Level string
	// File, when set, receives JSON lines instead of the console
	File string
	// Console writes human-readable output to stderr
	Console bool
}

// New returns a logger and a close function for the opened file, if any.
// With neither File nor Console set, output is discarded.
func New(opts Options) (zerolog.Logger, func() error, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		l, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), nil, errors.Wrapf(err, "invalid log level %q", opts.Level)
		}
		level = l
	}

	var w io.Writer = io.Discard
	closer := func() error { return nil }

	switch {
	case opts.File != "":
		if dir := filepath.Dir(opts.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return zerolog.Nop(), nil, errors.Wrap(err, "failed to create log directory")
			}
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, errors.Wrap(err, "failed to open log file")
		}
		w = f
		closer = f.Close
	case opts.Console:
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	}

	log := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return log, closer, nil
}
