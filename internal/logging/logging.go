// Package logging builds the zerolog loggers used by the command line tools.
package logging

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/variantkit-go/internal/errors"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns a logger writing to w at the given level. The console format
// is meant for terminals; json emits one object per line. Every entry
// carries a timestamp and the run_id of this logger.
func New(level, format string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	switch strings.ToLower(format) {
	case FormatConsole, "":
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	case FormatJSON:
	default:
		return zerolog.Nop(), errors.Wrapf(errors.ErrInvalidConfig, "log format %q", format)
	}

	return zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("run_id", uuid.New().String()).
		Logger(), nil
}

// ParseLevel maps a level name such as "debug" or "warn" to a zerolog level.
// The empty string selects info.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.NoLevel, errors.Wrapf(errors.ErrInvalidConfig, "log level %q", level)
	}
	return lvl, nil
}
