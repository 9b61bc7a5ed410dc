package modules

import (
	"github.com/louisbranch/studyabroad/internal/services/web/modules/chat"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/dashboard"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/documents"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/notifications"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/onboarding"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/profile"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/public"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/publicauth"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/tasks"
	"github.com/louisbranch/studyabroad/internal/services/web/modules/universities"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
)

// PublicModules returns the signed-out surfaces: landing, sign-in,
// registration, and sign-out.
func PublicModules(deps Dependencies, base modulehandler.Base) []Module {
	features := []Module{public.New(base)}
	return append(features, publicauth.Modules(deps.Sessions, base, publicauth.WithCookieMaxAge(deps.SessionCookieMaxAge))...)
}

// ProtectedModules returns the modules gated by the route guard.
func ProtectedModules(deps Dependencies, base modulehandler.Base) []Module {
	var sessions profile.SessionGateway
	if deps.Sessions != nil {
		sessions = deps.Sessions
	}
	return []Module{
		onboarding.NewWithGateway(onboarding.NewHTTPGateway(deps.OnboardingClient), base),
		dashboard.NewWithGateway(dashboard.NewHTTPGateway(deps.DashboardClient), base),
		universities.NewWithGateway(universities.NewHTTPGateway(deps.UniversityClient), base),
		universities.NewShortlistWithGateway(universities.NewHTTPGateway(deps.UniversityClient), base),
		tasks.NewWithGateway(tasks.NewHTTPGateway(deps.TaskClient), base),
		documents.NewWithGateway(documents.NewHTTPGateway(deps.DocumentClient), base),
		profile.NewWithGateway(profile.NewHTTPGateway(deps.ProfileClient), sessions, base),
		chat.NewWithGateway(chat.NewHTTPGateway(deps.ChatClient), base),
		notifications.NewWithBase(base),
	}
}
