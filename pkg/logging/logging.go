// Package logging builds the zerolog logger used by the goals command.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum level to output. Empty means "use the flags".
	Level string
	// Verbose is a shortcut for debug.
	Verbose bool
	// Quiet is a shortcut for error.
	Quiet bool
	// Format is "console", "json" or "auto".
	Format string
	// Output defaults to stderr.
	Output io.Writer
}

// New creates a logger from cfg. Level precedence, highest first: Level,
// Quiet, Verbose, the LOG_LEVEL environment variable, then warn. Warn is the
// default so a plain CLI run only shows problems.
func New(cfg Config) zerolog.Logger {
	level := ParseLevel(ResolveLevel(cfg))

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			format = "console"
		}
	}

	var w io.Writer = out
	if format == "console" {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// ResolveLevel applies the flag precedence rules and returns a level name.
func ResolveLevel(cfg Config) string {
	if cfg.Level != "" {
		return strings.ToLower(cfg.Level)
	}
	// Both set: quiet is the more restrictive choice.
	if cfg.Quiet {
		return "error"
	}
	if cfg.Verbose {
		return "debug"
	}
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		return strings.ToLower(env)
	}
	return "warn"
}

// ParseLevel parses a level name, falling back to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "warning":
		return zerolog.WarnLevel
	case "none", "off":
		return zerolog.Disabled
	}
	if l, err := zerolog.ParseLevel(level); err == nil && level != "" {
		return l
	}
	return zerolog.WarnLevel
}
