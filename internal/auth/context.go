package auth

import (
	"charity_system/internal/domain"
	"context"
)

type contextKey string

const principalKey = contextKey("principal")

// WithPrincipal returns a child context carrying the request's principal
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFrom returns the principal of the request, if one was authenticated
func PrincipalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok
}
