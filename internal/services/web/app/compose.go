// Package app composes web modules behind the session route guard.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	module "github.com/louisbranch/studyabroad/internal/services/web/module"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/httpx"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/pagerender"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/webctx"
	"github.com/louisbranch/studyabroad/internal/services/web/routeguard"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
	webtemplates "github.com/louisbranch/studyabroad/internal/services/web/templates"
)

const (
	// DefaultSessionCheckWait bounds how long a page load waits for the
	// first session check before the loading placeholder is served.
	DefaultSessionCheckWait = 750 * time.Millisecond

	// DefaultCookieMaxAge is the session cookie lifetime used when none is
	// configured.
	DefaultCookieMaxAge = 7 * 24 * time.Hour

	loadingRefreshAfter = time.Second
)

// SessionResolver maps a session cookie value to its browser session
// client. A client returned under a different id must be re-issued.
type SessionResolver interface {
	Resolve(ctx context.Context, id string) (*session.Client, error)
}

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	Sessions            SessionResolver
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
	SessionCheckWait    time.Duration
	CookieMaxAge        time.Duration

	// Base renders the loading placeholder.
	Base modulehandler.Base
}

// Compose builds a root HTTP handler from module groups. Every module is
// served behind the route guard.
func Compose(input ComposeInput) (http.Handler, error) {
	if input.Sessions == nil {
		return nil, fmt.Errorf("session resolver is required")
	}
	root := http.NewServeMux()
	seen := make(map[string]string)
	guard := newGuard(input)

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		if err := mountGuardedModule(root, feature, seen, guard.wrap); err != nil {
			return nil, err
		}
	}
	for _, feature := range input.ProtectedModules {
		if feature == nil {
			return nil, fmt.Errorf("protected module is nil")
		}
		if err := mountGuardedModule(root, feature, seen, guard.wrap); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	handler http.Handler,
	prefix string,
	seen map[string]string,
) error {
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()
	root.Handle(prefix, handler)
	return nil
}

func mountGuardedModule(root *http.ServeMux, feature module.Module, seen map[string]string, wrap func(http.Handler) http.Handler) error {
	mount, prefix, err := resolveMount(feature)
	if err != nil {
		return err
	}
	handler := wrap(mount.Handler)
	if err := mountModule(root, feature, handler, prefix, seen); err != nil {
		return err
	}
	if alias := slashlessPrefixAlias(prefix); alias != "" {
		if err := mountModule(root, feature, handler, alias, seen); err != nil {
			return err
		}
	}
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	return nil
}

// slashlessPrefixAlias returns "/tasks" for "/tasks/" so the section root is
// served without a redirect. Exact prefixes and the root have no alias.
func slashlessPrefixAlias(prefix string) string {
	if prefix == "/" || !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}

type guard struct {
	sessions     SessionResolver
	policy       requestmeta.SchemePolicy
	wait         time.Duration
	cookieMaxAge time.Duration
	base         modulehandler.Base
}

func newGuard(input ComposeInput) guard {
	g := guard{
		sessions:     input.Sessions,
		policy:       input.RequestSchemePolicy,
		wait:         input.SessionCheckWait,
		cookieMaxAge: input.CookieMaxAge,
		base:         input.Base.WithSchemePolicy(input.RequestSchemePolicy),
	}
	if g.wait <= 0 {
		g.wait = DefaultSessionCheckWait
	}
	if g.cookieMaxAge <= 0 {
		g.cookieMaxAge = DefaultCookieMaxAge
	}
	return g
}

func (g guard) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieID, hasCookie := sessioncookie.Read(r)
		if !requestmeta.IsSafeMethod(r.Method) && hasCookie && !requestmeta.SameOrigin(r, g.policy) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		client, err := g.sessions.Resolve(r.Context(), cookieID)
		if err != nil {
			log.Printf("web: session resolve failed path=%s err=%v", r.URL.Path, err)
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		if client.ID != cookieID {
			sessioncookie.Write(w, r, client.ID, g.cookieMaxAge, g.policy)
		}

		if !g.awaitSession(r, client.Session) {
			return
		}

		ctx := webctx.WithClient(r.Context(), client)
		r = r.WithContext(ctx)
		decision := routeguard.Decide(client.Session.Snapshot(), r.URL.Path)
		switch {
		case decision.Kind == routeguard.Loading:
			g.writeLoading(w, r)
		case decision.Redirect():
			httpx.WriteRedirect(w, r, decision.Location)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// awaitSession starts the first session check and waits for it. Safe
// methods wait at most the configured bound; mutations wait for the result
// so they never run against an unresolved identity. It reports false when
// the request was abandoned.
func (g guard) awaitSession(r *http.Request, store *session.Store) bool {
	ctx := r.Context()
	store.Start(ctx)
	if !requestmeta.IsSafeMethod(r.Method) {
		return store.Initialize(ctx) == nil
	}
	timer := time.NewTimer(g.wait)
	defer timer.Stop()
	select {
	case <-store.Ready():
	case <-timer.C:
	case <-ctx.Done():
		return false
	}
	return true
}

func (g guard) writeLoading(w http.ResponseWriter, r *http.Request) {
	loc, _ := g.base.PageLocalizer(w, r)
	g.base.WritePublicPage(w, r, pagerender.Page{
		Title:        webtemplates.T(loc, "session.loading"),
		StatusCode:   http.StatusOK,
		Fragment:     webtemplates.LoadingPage(loc),
		RefreshAfter: loadingRefreshAfter,
		RefreshURL:   r.URL.RequestURI(),
	})
}
