// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/louisbranch/studyabroad/internal/services/web/notify"
	"github.com/louisbranch/studyabroad/internal/services/web/roles"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
)

// Viewer contains user-facing chrome data for authenticated app pages.
type Viewer struct {
	DisplayName   string
	Email         string
	BadgeColor    string
	CurrentPath   string
	Navigation    []roles.NavigationItem
	Notifications []notify.Notification
}

// SignedIn reports whether the viewer carries an identity.
func (v Viewer) SignedIn() bool {
	return v.DisplayName != "" || v.Email != ""
}

// ResolveViewer resolves app chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// ResolveClient returns the browser session client bound to a request.
type ResolveClient func(*http.Request) *session.Client

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}
