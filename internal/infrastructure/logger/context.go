package logger

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is a type for context keys used by the logger package
type contextKey string

const (
	// LoggerKey is the context key for the logger
	LoggerKey contextKey = "logger"
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
	// ChannelCodeKey is the context key for the sales channel code
	ChannelCodeKey contextKey = "channel_code"
	// RemoteIDKey is the context key for the remote customer id
	RemoteIDKey contextKey = "remote_id"
)

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext retrieves the logger from context, returns a no-op logger if not found
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID adds request ID to context and returns enriched logger
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	enrichedLogger := logger.With(zap.String("request_id", requestID))
	return WithContext(ctx, enrichedLogger), enrichedLogger
}

// WithChannelCode adds the channel code to context and returns enriched logger
func WithChannelCode(ctx context.Context, logger *zap.Logger, code string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, ChannelCodeKey, code)
	enrichedLogger := logger.With(zap.String("channel_code", code))
	return WithContext(ctx, enrichedLogger), enrichedLogger
}

// WithRemoteID adds the remote customer id to context and returns enriched logger
func WithRemoteID(ctx context.Context, logger *zap.Logger, remoteID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, RemoteIDKey, remoteID)
	enrichedLogger := logger.With(zap.String("remote_id", remoteID))
	return WithContext(ctx, enrichedLogger), enrichedLogger
}

// GetRequestID retrieves request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetChannelCode retrieves the channel code from context
func GetChannelCode(ctx context.Context) string {
	if code, ok := ctx.Value(ChannelCodeKey).(string); ok {
		return code
	}
	return ""
}

// GetRemoteID retrieves the remote customer id from context
func GetRemoteID(ctx context.Context) string {
	if remoteID, ok := ctx.Value(RemoteIDKey).(string); ok {
		return remoteID
	}
	return ""
}
