// Package universities serves university discovery and the shortlist.
package universities

import (
	"net/http"
	"strings"

	module "github.com/louisbranch/studyabroad/internal/services/web/module"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// Module provides one university surface mounted at its own prefix.
type Module struct {
	id             string
	prefix         string
	registerRoutes func(*http.ServeMux, handlers)
	gateway        UniversityGateway
	base           modulehandler.Base
}

// New returns the discovery module with zero-value dependencies (degraded mode).
func New() Module {
	return NewWithGateway(nil, modulehandler.Base{})
}

// NewWithGateway returns the discovery module with explicit dependencies.
func NewWithGateway(gateway UniversityGateway, base modulehandler.Base) Module {
	return Module{
		id:             "universities",
		prefix:         routepath.UniversitiesPrefix,
		registerRoutes: registerRoutes,
		gateway:        gateway,
		base:           base,
	}
}

// NewShortlistWithGateway returns the shortlist module.
func NewShortlistWithGateway(gateway UniversityGateway, base modulehandler.Base) Module {
	return Module{
		id:             "shortlist",
		prefix:         routepath.ShortlistPrefix,
		registerRoutes: registerShortlistRoutes,
		gateway:        gateway,
		base:           base,
	}
}

// ID returns a stable module identifier.
func (m Module) ID() string {
	if id := strings.TrimSpace(m.id); id != "" {
		return id
	}
	return "universities"
}

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires the surface route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base)
	register := m.registerRoutes
	if register == nil {
		register = registerRoutes
	}
	register(mux, h)
	prefix := strings.TrimSpace(m.prefix)
	if prefix == "" {
		prefix = routepath.UniversitiesPrefix
	}
	return module.Mount{Prefix: prefix, Handler: mux}, nil
}
