// Package routeguard decides how a navigation is served from the session
// snapshot and the requested path.
//
// Decide is a pure function and holds no state of its own, so it is
// re-evaluated on every request.
package routeguard

import (
	"strings"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
)

// Kind is the outcome of a guard decision.
type Kind string

const (
	Render             Kind = "render"
	RedirectLogin      Kind = "redirect_login"
	RedirectOnboarding Kind = "redirect_onboarding"
	RedirectDashboard  Kind = "redirect_dashboard"
	Loading            Kind = "loading"
)

// Decision is what to do with one navigation.
type Decision struct {
	Kind     Kind
	Location string
}

// Redirect reports whether the decision sends the browser elsewhere.
func (d Decision) Redirect() bool {
	return d.Location != ""
}

// Class groups paths by who may reach them.
type Class string

const (
	ClassPublic       Class = "public"
	ClassProtected    Class = "protected"
	ClassOnboarding   Class = "onboarding"
	// ClassSessionBound paths serve every signed-in state but read the
	// session, so they wait for the first check.
	ClassSessionBound Class = "session_bound"
	ClassUnclassified Class = "unclassified"
)

var publicPaths = map[string]struct{}{
	routepath.Root:     {},
	routepath.Login:    {},
	routepath.Register: {},
}

var protectedSections = map[string]struct{}{
	routepath.Dashboard:    {},
	routepath.Universities: {},
	routepath.Shortlist:    {},
	routepath.Tasks:        {},
	routepath.Documents:    {},
	routepath.Profile:      {},
	routepath.Chat:         {},
}

var sessionBoundSections = map[string]struct{}{
	routepath.Notifications: {},
}

// Classify returns the access class of path. Nested paths inherit the class
// of their top-level section.
func Classify(path string) Class {
	path = normalize(path)
	if _, ok := publicPaths[path]; ok {
		return ClassPublic
	}
	section := routepath.Section(path)
	if section == routepath.Onboarding {
		return ClassOnboarding
	}
	if _, ok := protectedSections[section]; ok {
		return ClassProtected
	}
	if _, ok := sessionBoundSections[section]; ok {
		return ClassSessionBound
	}
	return ClassUnclassified
}

// Decide maps the session snapshot and path to a decision. Unclassified
// paths always render so that fallbacks and utility routes stay reachable.
func Decide(state session.State, path string) Decision {
	class := Classify(path)
	if class == ClassUnclassified {
		return Decision{Kind: Render}
	}

	switch state.Phase() {
	case session.PhaseLoading:
		return Decision{Kind: Loading}
	}
	if class == ClassSessionBound {
		return Decision{Kind: Render}
	}

	switch state.Phase() {
	case session.PhaseAnonymous:
		if class == ClassPublic {
			return Decision{Kind: Render}
		}
		return Decision{Kind: RedirectLogin, Location: routepath.Login}
	case session.PhaseOnboardingRequired:
		if class == ClassOnboarding {
			return Decision{Kind: Render}
		}
		return Decision{Kind: RedirectOnboarding, Location: routepath.Onboarding}
	default:
		if class == ClassProtected {
			return Decision{Kind: Render}
		}
		return Decision{Kind: RedirectDashboard, Location: routepath.Dashboard}
	}
}

func normalize(path string) string {
	path = strings.TrimSpace(path)
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	if path == "" {
		return routepath.Root
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return routepath.Root
		}
	}
	return path
}
