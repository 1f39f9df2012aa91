// Package logger builds the zerolog logger shared by every command.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level   string // debug, info, warn, error
	Verbose bool   // forces debug
	Pretty  bool   // console format instead of JSON lines
	Out     io.Writer
}

func DefaultConfig() Config {
	return Config{
		Level:  zerolog.LevelWarnValue,
		Pretty: true,
		Out:    os.Stderr,
	}
}

// New returns a logger that redacts credentials before anything is written.
// An unknown level falls back to warn.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	level := ParseLevel(cfg.Level)
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}

	var writer io.Writer = out
	if cfg.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(out),
		}
	}
	writer = NewRedactor().Wrap(writer)

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func ParseLevel(raw string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil || raw == "" {
		return zerolog.WarnLevel
	}
	return level
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
