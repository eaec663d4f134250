package logging

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/rs/zerolog"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Formats lists the output formats accepted by New.
var Formats = []string{FormatJSON, FormatText}

// Logger is the logging abstraction used across the application.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...Field)
	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...Field)
	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...Field)
	// Error logs an error-level message, attaching err when non-nil.
	Error(msg string, err error, fields ...Field)
}

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Bool creates a bool field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Err creates a field holding an error under the "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Verify interface compliance.
var (
	_ Logger = (*ZerologAdapter)(nil)
	_ Logger = (*StdLoggerAdapter)(nil)
)

// New returns a logger writing to w in the given format ("json" or "text"),
// dropping entries below level. Every entry carries the component name.
func New(w io.Writer, component, level, format string) (Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case "", FormatJSON:
		zl := zerolog.New(w).Level(lvl).With().Timestamp().Str("component", component).Logger()
		return NewZerologAdapter(zl), nil
	case FormatText:
		std := log.New(w, component+": ", log.LstdFlags|log.Lmsgprefix)
		return NewStdLoggerAdapter(std, lvl), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// ParseLevel converts a level name into a zerolog.Level. The empty string
// maps to the warn level.
func ParseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
	return lvl, nil
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// Debug logs a debug-level message.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.logger.Debug(), fields).Msg(msg)
}

// Info logs an info-level message.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.logger.Info(), fields).Msg(msg)
}

// Warn logs a warning-level message.
func (a *ZerologAdapter) Warn(msg string, fields ...Field) {
	applyFields(a.logger.Warn(), fields).Msg(msg)
}

// Error logs an error-level message.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(a.logger.Error().Err(err), fields).Msg(msg)
}

// applyFields attaches fields to an event using the typed zerolog setter
// when one exists. A nil event (level disabled) is returned unchanged.
func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	if e == nil {
		return e
	}
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

// StdLoggerAdapter implements Logger on top of the standard library logger
// for human-readable output. Entries are rendered as
// "[LEVEL] message key=value ...".
type StdLoggerAdapter struct {
	logger *log.Logger
	level  zerolog.Level
}

// NewStdLoggerAdapter wraps a *log.Logger, dropping entries below level.
func NewStdLoggerAdapter(logger *log.Logger, level zerolog.Level) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger, level: level}
}

func (a *StdLoggerAdapter) enabled(l zerolog.Level) bool {
	return a.level != zerolog.Disabled && l >= a.level
}

// Debug logs a debug-level message.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	if a.enabled(zerolog.DebugLevel) {
		a.logger.Print("[DEBUG] " + msg + formatFields(fields))
	}
}

// Info logs an info-level message.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	if a.enabled(zerolog.InfoLevel) {
		a.logger.Print("[INFO] " + msg + formatFields(fields))
	}
}

// Warn logs a warning-level message.
func (a *StdLoggerAdapter) Warn(msg string, fields ...Field) {
	if a.enabled(zerolog.WarnLevel) {
		a.logger.Print("[WARN] " + msg + formatFields(fields))
	}
}

// Error logs an error-level message.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	if !a.enabled(zerolog.ErrorLevel) {
		return
	}
	line := "[ERROR] " + msg
	if err != nil {
		line += ": " + err.Error()
	}
	a.logger.Print(line + formatFields(fields))
}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	return b.String()
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewZerologAdapter(zerolog.Nop())
}
