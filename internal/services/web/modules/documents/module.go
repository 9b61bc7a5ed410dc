// Package documents serves the application document checklist.
package documents

import (
	"net/http"

	module "github.com/louisbranch/studyabroad/internal/services/web/module"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// Module provides document checklist routes.
type Module struct {
	gateway DocumentGateway
	base    modulehandler.Base
}

// New returns a documents module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a documents module with explicit dependencies.
func NewWithGateway(gateway DocumentGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "documents" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires document route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base))
	return module.Mount{Prefix: routepath.DocumentsPrefix, Handler: mux}, nil
}
