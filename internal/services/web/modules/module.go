// Package modules defines web module registry helpers.
package modules

import (
	"time"

	module "github.com/louisbranch/studyabroad/internal/services/web/module"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/chat"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/dashboard"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/documents"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/onboarding"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/profile"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/publicauth"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/tasks"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/universities"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the backend clients and session gateway required to
// compose the web module registry. Each client field is typed as the narrow
// interface defined by the consuming module, so modules physically cannot
// reach endpoints they were not given. A nil field leaves that module in
// degraded mode.
type Dependencies struct {
	// Sessions performs sign-in, registration, and logout transitions.
	Sessions publicauth.SessionGateway

	// SessionCookieMaxAge is the lifetime of the browser session cookie.
	SessionCookieMaxAge time.Duration

	OnboardingClient onboarding.BackendClient
	DashboardClient  dashboard.BackendClient
	UniversityClient universities.BackendClient
	TaskClient       tasks.BackendClient
	DocumentClient   documents.BackendClient
	ProfileClient    profile.BackendClient
	ChatClient       chat.BackendClient
}

// BackendClient is satisfied by the shared REST client and covers every
// module's narrow client interface.
type BackendClient interface {
	onboarding.BackendClient
	dashboard.BackendClient
	universities.BackendClient
	tasks.BackendClient
	documents.BackendClient
	profile.BackendClient
	chat.BackendClient
}

// NewDependencies wires every module to one backend client.
func NewDependencies(client BackendClient, sessions publicauth.SessionGateway, cookieMaxAge time.Duration) Dependencies {
	deps := Dependencies{Sessions: sessions, SessionCookieMaxAge: cookieMaxAge}
	if client == nil {
		return deps
	}
	deps.OnboardingClient = client
	deps.DashboardClient = client
	deps.UniversityClient = client
	deps.TaskClient = client
	deps.DocumentClient = client
	deps.ProfileClient = client
	deps.ChatClient = client
	return deps
}
