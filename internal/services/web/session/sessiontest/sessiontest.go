// Package sessiontest provides session fixtures for handler tests.
package sessiontest

import (
	"context"
	"sync"

	"github.com/louisbranch/studyabroad/internal/services/web/notify"
	"github.com/louisbranch/studyabroad/internal/services/web/roles"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
)

// Token is the identity token carried by clients built here.
const Token = "tok-test"

// Authenticator is a configurable in-memory session.Authenticator.
type Authenticator struct {
	mu sync.Mutex

	User       session.User
	CurrentErr error
	LoginErr   error
	// RegisterErr fails registration when set.
	RegisterErr error

	currentCalls int
	logoutCalls  int
}

// CurrentUser returns the configured user.
func (a *Authenticator) CurrentUser(context.Context, session.Principal) (session.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.currentCalls++
	return a.User, a.CurrentErr
}

// Login grants the configured user.
func (a *Authenticator) Login(context.Context, session.Principal, session.Credentials) (session.Grant, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.LoginErr != nil {
		return session.Grant{}, a.LoginErr
	}
	return session.Grant{User: a.User, Token: Token}, nil
}

// Register grants the configured user.
func (a *Authenticator) Register(context.Context, session.Principal, session.Registration) (session.Grant, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.RegisterErr != nil {
		return session.Grant{}, a.RegisterErr
	}
	return session.Grant{User: a.User, Token: Token}, nil
}

// Logout records the call.
func (a *Authenticator) Logout(context.Context, session.Principal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logoutCalls++
	return nil
}

// SetUser replaces the user returned by later calls.
func (a *Authenticator) SetUser(user session.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.User = user
}

// CurrentCalls returns how many session checks ran.
func (a *Authenticator) CurrentCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentCalls
}

// LogoutCalls returns how many backend logouts ran.
func (a *Authenticator) LogoutCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.logoutCalls
}

// ActiveUser returns a user who finished onboarding.
func ActiveUser() session.User {
	return session.User{ID: "u-1", Name: "Ada Lovelace", Email: "ada@example.com", Role: roles.User, OnboardingCompleted: true}
}

// NewClient returns a client whose store has resolved to user. A nil user
// yields an anonymous client.
func NewClient(auth *Authenticator, user *session.User) *session.Client {
	if auth == nil {
		auth = &Authenticator{}
	}
	var opts []session.StoreOption
	if user != nil {
		auth.SetUser(*user)
		opts = append(opts, session.WithToken(Token))
	}
	store := session.NewStore(auth, opts...)
	_ = store.Initialize(context.Background())
	return &session.Client{ID: "sid-test", Session: store, Notices: notify.NewQueue()}
}

// NewActiveClient returns a signed-in client for ActiveUser.
func NewActiveClient() *session.Client {
	user := ActiveUser()
	return NewClient(nil, &user)
}
