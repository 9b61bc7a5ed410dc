// Package publicauth serves sign-in, registration, and sign-out.
package publicauth

import (
	"net/http"
	"strings"
	"time"

	module "github.com/louisbranch/studyabroad/internal/services/web/module"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// DefaultCookieMaxAge is the session cookie lifetime used when none is
// configured.
const DefaultCookieMaxAge = 7 * 24 * time.Hour

// Module provides one auth surface mounted at its own path.
type Module struct {
	id             string
	prefix         string
	registerRoutes func(*http.ServeMux, handlers)
	gateway        SessionGateway
	base           modulehandler.Base
	cookieMaxAge   time.Duration
}

// Option configures an auth module.
type Option func(*Module)

// WithCookieMaxAge sets the lifetime of the session cookie issued on sign-in.
func WithCookieMaxAge(maxAge time.Duration) Option {
	return func(m *Module) {
		if maxAge > 0 {
			m.cookieMaxAge = maxAge
		}
	}
}

// NewLogin returns the sign-in module.
func NewLogin(gateway SessionGateway, base modulehandler.Base, opts ...Option) Module {
	return newAuthModule("publicauth-login", routepath.Login, registerLoginRoutes, gateway, base, opts)
}

// NewRegister returns the registration module.
func NewRegister(gateway SessionGateway, base modulehandler.Base, opts ...Option) Module {
	return newAuthModule("publicauth-register", routepath.Register, registerRegisterRoutes, gateway, base, opts)
}

// NewLogout returns the sign-out module.
func NewLogout(gateway SessionGateway, base modulehandler.Base, opts ...Option) Module {
	return newAuthModule("publicauth-logout", routepath.Logout, registerLogoutRoutes, gateway, base, opts)
}

// Modules returns every auth surface sharing one gateway.
func Modules(gateway SessionGateway, base modulehandler.Base, opts ...Option) []module.Module {
	return []module.Module{
		NewLogin(gateway, base, opts...),
		NewRegister(gateway, base, opts...),
		NewLogout(gateway, base, opts...),
	}
}

func newAuthModule(id, prefix string, register func(*http.ServeMux, handlers), gateway SessionGateway, base modulehandler.Base, opts []Option) Module {
	m := Module{
		id:             strings.TrimSpace(id),
		prefix:         strings.TrimSpace(prefix),
		registerRoutes: register,
		gateway:        gateway,
		base:           base,
		cookieMaxAge:   DefaultCookieMaxAge,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	if m.id == "" {
		return "publicauth"
	}
	return m.id
}

// Healthy reports whether the module has a session gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires the auth surface routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base, m.cookieMaxAge)
	if m.registerRoutes != nil {
		m.registerRoutes(mux, h)
	}
	return module.Mount{Prefix: m.prefix, Handler: mux}, nil
}
