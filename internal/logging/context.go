package logging

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type traceIDKey struct{}

// TraceIDField is the log field carrying the trace ID.
const TraceIDField = "trace_id"

//nolint:gochecknoglobals // Returned when no logger is attached to a context.
var nopLogger = zerolog.Nop()

// FromContext returns the logger attached to ctx, or a no-op logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return &nopLogger
	}
	l := zerolog.Ctx(ctx)
	if l == nil || l.GetLevel() == zerolog.Disabled {
		return &nopLogger
	}
	return l
}

// NewTraceID returns a fresh ULID string.
func NewTraceID() string {
	return ulid.Make().String()
}

// ContextWithTraceID stores traceID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(traceIDKey{}).(string)
	return id, ok && id != ""
}

// GetOrGenerateTraceID returns the trace ID in ctx, generating one if absent.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id, ok := TraceIDFromContext(ctx); ok {
		return id
	}
	return NewTraceID()
}

// WithTraceID returns l with the trace ID from ctx attached, if present.
func WithTraceID(ctx context.Context, l zerolog.Logger) zerolog.Logger {
	id, ok := TraceIDFromContext(ctx)
	if !ok {
		return l
	}
	return l.With().Str(TraceIDField, id).Logger()
}
