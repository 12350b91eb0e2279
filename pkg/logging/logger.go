// Package logging provides structured logging for gravnav.
// It wraps Go's standard slog package to provide consistent logging patterns with
// correlation IDs, error context preservation, and redaction of sensitive attributes.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Environment variables read by NewLogger
const (
	EnvLogLevel  = "GRAVNAV_LOG_LEVEL"
	EnvLogFormat = "GRAVNAV_LOG_FORMAT"
)

// Output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Logger wraps slog.Logger to provide application-specific logging functionality
// with correlation ID support.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger writing to stderr, leaving stdout to the terminal renderer.
// The level comes from GRAVNAV_LOG_LEVEL (DEBUG, INFO, WARN, ERROR, default INFO)
// and the format from GRAVNAV_LOG_FORMAT (json or text, default json).
func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stderr, os.Getenv(EnvLogLevel), os.Getenv(EnvLogFormat))
}

// NewLoggerWithWriter creates a Logger writing to w with the given level and format names.
// Unknown names fall back to INFO and JSON.
func NewLoggerWithWriter(w io.Writer, level, format string) *Logger {
	opts := &slog.HandlerOptions{
		Level:       ParseLevel(level),
		ReplaceAttr: sanitizeAttributes,
	}

	var handler slog.Handler
	if strings.EqualFold(format, FormatText) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return &Logger{slog.New(handler)}
}

// NewNopLogger returns a Logger that discards everything
func NewNopLogger() *Logger {
	return NewLoggerWithWriter(io.Discard, "ERROR", FormatText)
}

// LogWithContext logs a message with automatic correlation ID extraction from context.
func (l *Logger) LogWithContext(ctx context.Context, level slog.Level, msg string, args ...any) {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		args = append(args, "correlation_id", correlationID)
	}
	l.Log(ctx, level, msg, args...)
}

// Info logs an informational message with context.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a warning message with context.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message with context and proper error formatting.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, slog.LevelError, msg, args...)
}

// Debug logs a debug message with context.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelDebug, msg, args...)
}

// correlationIDKey is the context key for correlation IDs
type correlationIDKey struct{}

// WithCorrelationID adds a correlation ID to the context.
// If no correlation ID is provided, a new one will be generated.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	if correlationID == "" {
		correlationID = GenerateCorrelationID()
	}
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// GetCorrelationID extracts the correlation ID from the context.
// Returns empty string if no correlation ID is present.
func GetCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID creates a new random correlation ID.
func GenerateCorrelationID() string {
	return uuid.NewString()
}

// ParseLevel maps a level name to a slog level, case-insensitively.
func ParseLevel(name string) slog.Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// sensitiveWords are attribute key words whose values are never logged
var sensitiveWords = map[string]bool{
	"password": true, "passwd": true, "pwd": true,
	"token": true, "auth": true, "authorization": true,
	"secret": true, "private": true,
	"cookie": true, "session": true,
}

// sanitizeAttributes masks attributes whose key contains a sensitive word.
// Keys are split on '_' and '-' so that keys like "keyword" stay visible.
func sanitizeAttributes(groups []string, a slog.Attr) slog.Attr {
	words := strings.FieldsFunc(strings.ToLower(a.Key), func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})

	for _, w := range words {
		if sensitiveWords[w] {
			return slog.Attr{
				Key:   a.Key,
				Value: slog.StringValue("[REDACTED]"),
			}
		}
	}

	return a
}

// WrapError wraps an error with additional context information.
// This preserves the original error while adding descriptive context.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
