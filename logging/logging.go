// Package logging provides the logger capability injected into every
// component. There is no package-level logger; callers pass a Logger in.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/jmgilman/copilot-mcp/errors"
)

// Logger is the structured logging capability used by the validation,
// classification, retry and service layers. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Format selects the log record encoding.
type Format string

const (
	// FormatText renders human-readable, optionally coloured lines.
	FormatText Format = "text"

	// FormatJSON renders one JSON object per record.
	FormatJSON Format = "json"
)

// Options configures New.
type Options struct {
	Level  slog.Level
	Format Format
}

// New builds a logger writing to w. Text output uses tint and drops colour
// when w is not a terminal.
func New(w io.Writer, opts Options) *slog.Logger {
	if opts.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level}))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal(w),
	}))
}

// Nop returns a logger that discards every record.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a slog
// level. An empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		err := errors.New(errors.CodeInvalidConfig, fmt.Sprintf("unknown log level %q", s))
		return slog.LevelInfo, errors.WithContext(err, "field", "logging.level")
	}
}

// ParseFormat maps "text" or "json" to a Format. An empty string is text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		err := errors.New(errors.CodeInvalidConfig, fmt.Sprintf("unknown log format %q", s))
		return FormatText, errors.WithContext(err, "field", "logging.format")
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
