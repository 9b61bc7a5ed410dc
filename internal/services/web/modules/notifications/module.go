// Package notifications exposes the session's transient notification queue.
package notifications

import (
	"net/http"

	module "github.com/louisbranch/studyabroad/internal/services/web/module"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// Module provides notification routes.
type Module struct {
	base modulehandler.Base
}

// New returns a notifications module with zero-value dependencies.
func New() Module {
	return Module{}
}

// NewWithBase returns a notifications module with explicit handler
// dependencies.
func NewWithBase(base modulehandler.Base) Module {
	return Module{base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "notifications" }

// Healthy reports true; the queue lives in process.
func (Module) Healthy() bool { return true }

// Mount wires notification route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base))
	return module.Mount{Prefix: routepath.NotificationsPrefix, Handler: mux}, nil
}
