package telemetry

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const FieldRequestID = "request_id"

type requestContextKey struct{}

func NewRequestID() string {
	return uuid.NewString()
}

// WithRequestID stores id on the context for downstream log correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestContextKey{}, id)
}

// RequestIDFromContext returns the request id attached to ctx, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(requestContextKey{}).(string)
	return id, ok && id != ""
}

// EnsureRequestID reuses the context's request id or mints a new one.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := RequestIDFromContext(ctx); ok {
		return ctx, id
	}
	id := NewRequestID()
	return WithRequestID(ctx, id), id
}

// LoggerWithRequest returns base annotated with the context's request id.
func LoggerWithRequest(ctx context.Context, base *zap.Logger) *zap.Logger {
	logger := base
	if logger == nil {
		logger = zap.NewNop()
	}
	if id, ok := RequestIDFromContext(ctx); ok {
		return logger.With(zap.String(FieldRequestID, id))
	}
	return logger
}
