package ctxutil

import (
	"context"

	"github.com/edgeskills/edge-backend/internal/domain"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "request_id"
)

// WithCaller stores the authenticated caller in the context.
func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// CallerFromCtx extracts the caller from the context.
// Returns false if the value is missing, has a zero ID, or the wrong type.
func CallerFromCtx(ctx context.Context) (domain.Caller, bool) {
	caller, ok := ctx.Value(callerKey).(domain.Caller)
	if !ok || caller.ID == 0 {
		return domain.Caller{}, false
	}
	return caller, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
