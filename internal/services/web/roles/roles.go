// Package roles holds the capability seam keyed by a user's role tag.
//
// Every capability question (navigation, feature availability, badge styling,
// role comparison) dispatches through a registered Profile, so introducing a
// new role means registering one more Profile rather than editing callers.
// Today only the user role is registered.
package roles

import (
	"strings"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// Role tags an account's capability profile.
type Role string

// User is the only role issued by the backend. The legacy "student" tag
// normalizes to it.
const User Role = "user"

// NavigationItem is one static entry of the app chrome navigation.
type NavigationItem struct {
	Name    string
	Path    string
	IconKey string
}

// Features toggles page-level capabilities for a role.
type Features struct {
	UniversityDiscovery bool
	UniversityLock      bool
	TaskGeneration      bool
	Documents           bool
	Counsellor          bool
}

// Profile answers capability questions for one role.
type Profile interface {
	Role() Role
	Level() int
	Navigation() []NavigationItem
	Features() Features
	BadgeColor() string
}

var registry = map[Role]Profile{
	User: userProfile{},
}

// Normalize maps a raw backend role value to a known Role.
func Normalize(raw string) Role {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "", "user", "student":
		return User
	default:
		return Role(value)
	}
}

// ProfileFor returns the registered profile, falling back to User for roles
// this client does not know about.
func ProfileFor(role Role) Profile {
	if profile, ok := registry[Normalize(string(role))]; ok {
		return profile
	}
	return registry[User]
}

// IsKnown reports whether a profile is registered for role.
func IsKnown(role Role) bool {
	_, ok := registry[Normalize(string(role))]
	return ok
}

// HasRole reports whether a holder of have satisfies a requirement of want.
// Unknown requirements are never satisfied.
func HasRole(have Role, want Role) bool {
	if !IsKnown(want) {
		return false
	}
	return ProfileFor(have).Level() >= ProfileFor(want).Level()
}

// NavigationItems returns the chrome navigation for role.
func NavigationItems(role Role) []NavigationItem {
	items := ProfileFor(role).Navigation()
	out := make([]NavigationItem, len(items))
	copy(out, items)
	return out
}

// FeaturesFor returns the feature switches for role.
func FeaturesFor(role Role) Features {
	return ProfileFor(role).Features()
}

// BadgeColor returns the badge color token used when rendering role.
func BadgeColor(role Role) string {
	return ProfileFor(role).BadgeColor()
}

type userProfile struct{}

func (userProfile) Role() Role { return User }

func (userProfile) Level() int { return 1 }

func (userProfile) Navigation() []NavigationItem {
	return []NavigationItem{
		{Name: "nav.dashboard", Path: routepath.Dashboard, IconKey: "home"},
		{Name: "nav.universities", Path: routepath.Universities, IconKey: "search"},
		{Name: "nav.shortlist", Path: routepath.Shortlist, IconKey: "star"},
		{Name: "nav.tasks", Path: routepath.Tasks, IconKey: "check"},
		{Name: "nav.documents", Path: routepath.Documents, IconKey: "file"},
		{Name: "nav.chat", Path: routepath.Chat, IconKey: "chat"},
		{Name: "nav.profile", Path: routepath.Profile, IconKey: "user"},
	}
}

func (userProfile) Features() Features {
	return Features{
		UniversityDiscovery: true,
		UniversityLock:      true,
		TaskGeneration:      true,
		Documents:           true,
		Counsellor:          true,
	}
}

func (userProfile) BadgeColor() string { return "blue" }
