package logs

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyEvaluationID is the key for storing the feed evaluation ID in context.
	KeyEvaluationID ContextKey = "evaluation_id"

	// KeyLogger is the key for storing the evaluation-scoped logger in context.
	KeyLogger ContextKey = "logger"
)

// WithEvaluation tags ctx with a new evaluation ID and a logger carrying it.
// An evaluation ID already present in ctx is kept.
func WithEvaluation(ctx context.Context, logger *slog.Logger) context.Context {
	id := EvaluationIDFromContext(ctx)
	if id == "" {
		id = uuid.New().String()
		ctx = context.WithValue(ctx, KeyEvaluationID, id)
	}

	return WithLogger(ctx, logger.With(slog.String(string(KeyEvaluationID), id)))
}

// EvaluationIDFromContext extracts the evaluation ID from ctx.
// If not found, returns empty string.
func EvaluationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyEvaluationID).(string); ok {
		return id
	}

	return ""
}

// FromContext extracts the evaluation-scoped logger from ctx.
// If not found, returns the provided fallback logger.
func FromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
