// Package dashboard serves the signed-in progress summary.
package dashboard

import (
	"net/http"

	module "github.com/louisbranch/studyabroad/internal/services/web/module"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// Module provides authenticated dashboard routes.
type Module struct {
	gateway DashboardGateway
	base    modulehandler.Base
}

// New returns a dashboard module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a dashboard module with explicit dependencies.
func NewWithGateway(gateway DashboardGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Healthy reports whether the dashboard module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base))
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}
