package backend

import (
	"context"

	"github.com/louisbranch/studyabroad/internal/services/web/session"
)

type principalKey struct{}

// WithPrincipal attaches the browser session's backend credentials to ctx.
func WithPrincipal(ctx context.Context, principal session.Principal) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, principalKey{}, principal)
}

// PrincipalFromContext returns the credentials attached by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (session.Principal, bool) {
	if ctx == nil {
		return session.Principal{}, false
	}
	principal, ok := ctx.Value(principalKey{}).(session.Principal)
	return principal, ok
}
