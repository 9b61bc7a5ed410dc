// Package profile serves the account profile: identity, study preferences,
// and account deletion.
package profile

import (
	"net/http"

	module "github.com/louisbranch/studyabroad/internal/services/web/module"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// Module provides profile routes.
type Module struct {
	gateway  ProfileGateway
	sessions SessionGateway
	base     modulehandler.Base
}

// New returns a profile module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a profile module with explicit dependencies.
func NewWithGateway(gateway ProfileGateway, sessions SessionGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, sessions: sessions, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "profile" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires profile route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway, m.sessions), m.base))
	return module.Mount{Prefix: routepath.ProfilePrefix, Handler: mux}, nil
}
