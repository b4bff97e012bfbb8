package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects level, format and destination of a logger.
type Config struct {
	Level  string
	Format string

	// File, when set, receives the log output instead of Output.
	File string

	// Output is the destination when File is empty. Defaults to os.Stderr.
	Output io.Writer
}

// Result is a constructed logger plus details about where it writes.
type Result struct {
	Logger zerolog.Logger

	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file, if one was opened.
func (r *Result) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ParseLevel parses level, falling back to info on error or empty input.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// NewLogger builds a logger from cfg. If the configured file cannot be opened
// the logger falls back to cfg.Output (or stderr) and the reason is reported
// in the result instead of failing.
func NewLogger(cfg Config) Result {
	var res Result

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if cfg.File != "" {
		f, err := openLogFile(cfg.File)
		if err != nil {
			res.FallbackUsed = true
			res.FallbackReason = err.Error()
		} else {
			res.file = f
			res.UsingFile = true
			res.FilePath = cfg.File
			out = f
		}
	}

	if cfg.Format != FormatJSON && !res.UsingFile {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	res.Logger = zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		Hook(TraceHook{}).
		With().
		Timestamp().
		Logger()

	return res
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// ComponentLogger returns a child logger tagged with component.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// PrintFallbackWarning tells the user that file logging was not possible.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file (%s), logging to stderr\n", reason)
}
