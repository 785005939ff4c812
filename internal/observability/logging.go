// Package observability provides logging and tracing.
package observability

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// LogContextKey is a type for context keys used by the logging package.
type LogContextKey string

// CorrelationID keys a per-request correlation identifier in the context.
const CorrelationID LogContextKey = "correlation_id"

// GenerateCorrelationID creates a new unique correlation ID.
func GenerateCorrelationID() string {
	return uuid.NewString()
}

// WithCorrelationID returns a new context with the given correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationID, id)
}

// ExtractCorrelationID retrieves the correlation ID from the context.
func ExtractCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(CorrelationID).(string); ok {
		return id
	}
	return ""
}

// TableLogger provides structured logging for tabular store scans.
type TableLogger struct {
	table  string
	logger *Logger
}

// NewTableLogger creates a TableLogger for the given table.
func NewTableLogger(table string) *TableLogger {
	return &TableLogger{table: table, logger: GlobalLogger}
}

// LogScan logs a completed table scan.
func (l *TableLogger) LogScan(ctx context.Context, matched int, filterColumn string) {
	l.logger.InfoContext(ctx, "table scan",
		slog.String("table", l.table),
		slog.Int("matched", matched),
		slog.String("filter_column", filterColumn),
		slog.String("correlation_id", ExtractCorrelationID(ctx)),
	)
}

// LogError logs a scan failure. Scan failures degrade to empty results, so
// this is the only place they surface.
func (l *TableLogger) LogError(ctx context.Context, err error) {
	l.logger.ErrorContext(ctx, "table scan failed",
		slog.String("table", l.table),
		slog.String("correlation_id", ExtractCorrelationID(ctx)),
		slog.String("error", err.Error()),
	)
}
