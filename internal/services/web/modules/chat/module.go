// Package chat serves the counselling conversation.
package chat

import (
	"net/http"

	module "github.com/louisbranch/studyabroad/internal/services/web/module"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// Module provides chat routes.
type Module struct {
	gateway ChatGateway
	base    modulehandler.Base
}

// New returns a chat module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a chat module with explicit dependencies.
func NewWithGateway(gateway ChatGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "chat" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires chat route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base))
	return module.Mount{Prefix: routepath.ChatPrefix, Handler: mux}, nil
}
