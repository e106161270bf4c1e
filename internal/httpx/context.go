package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	userEmailKey contextKey = "userEmail"
	requestIDKey contextKey = "requestID"
)

// UserEmailFrom retrieves the verified caller email from the request context.
func UserEmailFrom(r *http.Request) string {
	if v, ok := r.Context().Value(userEmailKey).(string); ok {
		return v
	}
	return ""
}

// RequestIDFrom retrieves the request id from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithUser returns a new context carrying the verified caller email.
func ContextWithUser(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
