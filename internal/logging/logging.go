// Package logging configures the zerolog logger shared by the command and
// the internal packages.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a logger writing to w at the named level. Console output is
// human readable; otherwise one JSON object is written per line.
func New(level string, w io.Writer, console bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logging: %w", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Setup installs the logger as log.Logger.
func Setup(level string, w io.Writer, console bool) error {
	logger, err := New(level, w, console)
	if err != nil {
		return err
	}
	log.Logger = logger
	return nil
}
