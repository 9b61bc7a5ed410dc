// Package webctx provides shared web request context helpers.
package webctx

import (
	"context"
	"net/http"

	"github.com/louisbranch/studyabroad/internal/services/web/integration/backend"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
)

type clientKey struct{}

// WithClient returns ctx carrying the browser session client.
func WithClient(ctx context.Context, client *session.Client) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		return ctx
	}
	return context.WithValue(ctx, clientKey{}, client)
}

// Client returns the browser session client bound by WithClient.
func Client(ctx context.Context) (*session.Client, bool) {
	if ctx == nil {
		return nil, false
	}
	client, ok := ctx.Value(clientKey{}).(*session.Client)
	return client, ok && client != nil
}

// RequestClient returns the client bound to r, or nil.
func RequestClient(r *http.Request) *session.Client {
	if r == nil {
		return nil
	}
	client, _ := Client(r.Context())
	return client
}

// WithBackendPrincipal returns request context enriched with the backend
// credentials of client.
func WithBackendPrincipal(r *http.Request, client *session.Client) context.Context {
	if r == nil {
		return context.Background()
	}
	ctx := r.Context()
	if client == nil || client.Session == nil {
		return ctx
	}
	return backend.WithPrincipal(ctx, client.Session.Principal())
}
