package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/louisbranch/studyabroad/internal/services/web/roles"
)

// User is the authenticated identity as reported by the backend.
type User struct {
	ID                  string
	Name                string
	Email               string
	Role                roles.Role
	OnboardingCompleted bool
}

// State is the observable session snapshot.
type State struct {
	User *User
	// Loading is true while the first session check is in flight.
	Loading bool
	// Initialized is true once the first session check has resolved.
	Initialized bool
	// Err holds the localization key of the last failed auth action.
	Err string
}

// Phase names the lifecycle stage a State is in.
type Phase string

const (
	PhaseLoading            Phase = "loading"
	PhaseAnonymous          Phase = "anonymous"
	PhaseOnboardingRequired Phase = "onboarding_required"
	PhaseActive             Phase = "active"
)

// Phase classifies the snapshot for navigation decisions.
func (s State) Phase() Phase {
	switch {
	case s.Loading || !s.Initialized:
		return PhaseLoading
	case s.User == nil:
		return PhaseAnonymous
	case !s.User.OnboardingCompleted:
		return PhaseOnboardingRequired
	default:
		return PhaseActive
	}
}

// Authenticated reports whether a user is present.
func (s State) Authenticated() bool {
	return s.User != nil
}

// DisplayName returns the name shown in the app chrome.
func (s State) DisplayName() string {
	if s.User == nil {
		return ""
	}
	if name := strings.TrimSpace(s.User.Name); name != "" {
		return name
	}
	return strings.TrimSpace(s.User.Email)
}

// Credentials is the login form payload.
type Credentials struct {
	Email    string
	Password string
}

// Registration is the account creation payload.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// Grant is a successful login or registration result.
type Grant struct {
	User  User
	Token string
}

// Principal carries the credentials attached to backend calls for one
// browser session.
type Principal struct {
	Token string
	Jar   http.CookieJar
}

// Authenticator is the backend auth contract the Store depends on.
type Authenticator interface {
	CurrentUser(ctx context.Context, principal Principal) (User, error)
	Login(ctx context.Context, principal Principal, credentials Credentials) (Grant, error)
	Register(ctx context.Context, principal Principal, registration Registration) (Grant, error)
	Logout(ctx context.Context, principal Principal) error
}
