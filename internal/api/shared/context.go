package shared

import (
	"context"

	"github.com/google/uuid"

	"github.com/treetap/treetap-api/internal/domain"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// AccountIDContextKey is the context key for the authenticated account ID
	AccountIDContextKey ContextKey = "accountID"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a fresh trace ID to the context.
// This is useful for correlating log lines belonging to one request.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetAccountID stores the authenticated account ID in the context.
// Called by the auth middleware once the bearer credential decodes.
func SetAccountID(ctx context.Context, id domain.ID) context.Context {
	return context.WithValue(ctx, AccountIDContextKey, id)
}

// GetAccountID retrieves the authenticated account ID from the context.
// Returns the ID and a boolean indicating whether it was present.
func GetAccountID(ctx context.Context) (domain.ID, bool) {
	id, ok := ctx.Value(AccountIDContextKey).(domain.ID)
	return id, ok
}
