// Package web hosts the browser-facing study-abroad advisory server.
//
// The server owns the browser session cookie, keeps one session client per
// browser, and serves every page module behind the route guard. Business
// state lives in the advisory backend and is reached over its REST API.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/studyabroad/internal/services/web/app"
	"github.com/louisbranch/studyabroad/internal/services/web/integration/backend"
	"github.com/louisbranch/studyabroad/internal/services/web/integration/sessionstore"
	module "github.com/louisbranch/studyabroad/internal/services/web/module"
	"github.com/louisbranch/studyabroad/internal/services/web/modules"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/httpx"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
	"github.com/louisbranch/studyabroad/internal/services/web/static"
	"github.com/louisbranch/studyabroad/internal/services/web/storage"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string

	BackendBaseURL string
	BackendTimeout time.Duration

	// SessionStore selects where identity tokens are persisted.
	SessionStore sessionstore.Options
	// CookieMaxAge is the lifetime of the browser session cookie.
	CookieMaxAge time.Duration
	// SessionCheckWait bounds how long a page load waits for the first
	// session check before serving the loading placeholder.
	SessionCheckWait time.Duration
	// IdleTTL evicts in-memory session clients unused for this long.
	IdleTTL       time.Duration
	SweepInterval time.Duration

	TrustForwardedProto bool
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr      string
	httpServer    *http.Server
	sessions      *session.Manager
	records       storage.SessionStore
	sweepInterval time.Duration
}

// HandlerDependencies carries the collaborators the root handler is built
// from. A nil Backend leaves every page module degraded.
type HandlerDependencies struct {
	Sessions *session.Manager
	Backend  modules.BackendClient
}

// NewServer opens the session store, connects the backend client, and
// builds the HTTP server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	client, err := backend.New(cfg.BackendBaseURL, backend.WithTimeout(cfg.BackendTimeout))
	if err != nil {
		return nil, fmt.Errorf("init backend client: %w", err)
	}
	records, err := sessionstore.Open(ctx, cfg.SessionStore)
	if err != nil {
		return nil, err
	}
	sessions := session.NewManager(backend.NewAuthenticator(client), records,
		session.WithRecordTTL(cfg.SessionStore.TTL),
		session.WithIdleTTL(cfg.IdleTTL),
		session.WithTokenExpiry(backend.TokenExpiry),
	)

	handler, err := NewHandler(cfg, HandlerDependencies{Sessions: sessions, Backend: client})
	if err != nil {
		_ = records.Close()
		return nil, err
	}
	return &Server{
		httpAddr: cfg.HTTPAddr,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		sessions:      sessions,
		records:       records,
		sweepInterval: cfg.SweepInterval,
	}, nil
}

// NewHandler composes the root handler: static assets, the health probe,
// and every page module behind the route guard.
func NewHandler(cfg Config, deps HandlerDependencies) (http.Handler, error) {
	if deps.Sessions == nil {
		return nil, errors.New("session manager is required")
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	base := modulehandler.NewBase(nil, nil, app.ResolveViewer).WithSchemePolicy(policy)

	moduleDeps := modules.NewDependencies(deps.Backend, deps.Sessions, cfg.CookieMaxAge)
	public := modules.PublicModules(moduleDeps, base)
	protected := modules.ProtectedModules(moduleDeps, base)

	composed, err := app.Compose(app.ComposeInput{
		Sessions:            deps.Sessions,
		PublicModules:       public,
		ProtectedModules:    protected,
		RequestSchemePolicy: policy,
		SessionCheckWait:    cfg.SessionCheckWait,
		CookieMaxAge:        cfg.CookieMaxAge,
		Base:                base,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	root := http.NewServeMux()
	root.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	root.Handle("GET "+routepath.Health, healthHandler(append(public, protected...)))
	root.Handle(routepath.Root, composed)

	return httpx.Chain(root, httpx.RequestID(), httpx.RecoverPanic(), httpx.AccessLog()), nil
}

type healthResponse struct {
	Status  string          `json:"status"`
	Modules map[string]bool `json:"modules"`
}

// healthHandler reports process liveness. Modules without a backend are
// listed as unhealthy but do not fail the probe, since they still serve
// degraded pages.
func healthHandler(features []module.Module) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := healthResponse{Status: "ok", Modules: make(map[string]bool, len(features))}
		for _, feature := range features {
			healthy := true
			if reporter, ok := feature.(module.HealthReporter); ok {
				healthy = reporter.Healthy()
			}
			resp.Modules[feature.ID()] = healthy
			if !healthy {
				resp.Status = "degraded"
			}
		}
		_ = httpx.WriteJSON(w, http.StatusOK, resp)
	})
}

// ListenAndServe serves HTTP and sweeps idle sessions until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	group, groupCtx := errgroup.WithContext(ctx)
	log.Printf("web listening on %s", s.httpAddr)
	group.Go(func() error {
		err := s.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	})
	group.Go(func() error {
		s.sessions.Run(groupCtx, s.sweepInterval)
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})
	return group.Wait()
}

// Close releases the session store.
func (s *Server) Close() {
	if s == nil || s.records == nil {
		return
	}
	if err := s.records.Close(); err != nil {
		log.Printf("web: close session store: %v", err)
	}
}
