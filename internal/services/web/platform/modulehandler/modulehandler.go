// Package modulehandler provides a composable base for web module handlers.
//
// Every page module resolves the browser session client, localizes copy,
// renders pages, and writes errors the same way. Modules embed Base rather
// than duplicating that scaffold.
package modulehandler

import (
	"context"
	"net/http"

	"github.com/a-h/templ"

	module "github.com/louisbranch/studyabroad/internal/services/web/module"
	"github.com/louisbranch/studyabroad/internal/services/web/notify"
	webi18n "github.com/louisbranch/studyabroad/internal/services/web/platform/i18n"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/pagerender"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/webctx"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/weberror"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
)

// Base carries the request-scoped resolvers shared by module handlers.
type Base struct {
	resolveClient   module.ResolveClient
	resolveLanguage module.ResolveLanguage
	resolveViewer   module.ResolveViewer
	policy          requestmeta.SchemePolicy
}

// NewBase builds a handler base from explicit resolver functions. A nil
// client resolver reads the client bound to the request context.
func NewBase(resolveClient module.ResolveClient, resolveLanguage module.ResolveLanguage, resolveViewer module.ResolveViewer) Base {
	return Base{
		resolveClient:   resolveClient,
		resolveLanguage: resolveLanguage,
		resolveViewer:   resolveViewer,
	}
}

// NewTestBase builds a base that binds every request to client.
func NewTestBase(client *session.Client) Base {
	return NewBase(func(*http.Request) *session.Client { return client }, nil, nil)
}

// WithSchemePolicy returns a copy of b using policy for cookies.
func (b Base) WithSchemePolicy(policy requestmeta.SchemePolicy) Base {
	b.policy = policy
	return b
}

// SchemePolicy returns the request scheme policy used for cookies.
func (b Base) SchemePolicy() requestmeta.SchemePolicy {
	return b.policy
}

// ResolveRequestViewer resolves app chrome viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.resolveViewer == nil {
		return module.Viewer{}
	}
	return b.resolveViewer(r)
}

// ResolveRequestLanguage returns the effective request language.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	if b.resolveLanguage == nil {
		return ""
	}
	return b.resolveLanguage(r)
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webi18n.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r, b.resolveLanguage)
}

// Client returns the browser session client bound to r, or nil.
func (b Base) Client(r *http.Request) *session.Client {
	if r == nil {
		return nil
	}
	if b.resolveClient != nil {
		return b.resolveClient(r)
	}
	return webctx.RequestClient(r)
}

// Session returns the session store of the request's client, or nil.
func (b Base) Session(r *http.Request) *session.Store {
	if client := b.Client(r); client != nil {
		return client.Session
	}
	return nil
}

// Notices returns the notification queue of the request's client. The
// queue is nil-safe, so callers may enqueue unconditionally.
func (b Base) Notices(r *http.Request) *notify.Queue {
	if client := b.Client(r); client != nil {
		return client.Notices
	}
	return nil
}

// RequestContext returns a context carrying the client's backend
// credentials for downstream calls.
func (b Base) RequestContext(r *http.Request) context.Context {
	return webctx.WithBackendPrincipal(r, b.Client(r))
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b)
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b)
}

// WritePage renders an app-shell page.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteAppPage(w, r, b, pagerender.Page{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WritePublicPage renders a signed-out page.
func (b Base) WritePublicPage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.WritePublicPage(w, r, b, page); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteFragment renders a bare component for HTMX swaps.
func (b Base) WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteFragment(w, r, statusCode, fragment); err != nil {
		b.WriteError(w, r, err)
	}
}
