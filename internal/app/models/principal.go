package models

import (
	"context"
	"konsulin-portal/internal/pkg/constvars"
)

// Principal is the authenticated caller a portal request acts for. Token is
// forwarded to the booking backend unchanged.
type Principal struct {
	UserID string
	Role   constvars.Role
	Token  string
}

func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_PRINCIPAL_KEY, principal)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(constvars.CONTEXT_PRINCIPAL_KEY).(Principal)
	return principal, ok
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
