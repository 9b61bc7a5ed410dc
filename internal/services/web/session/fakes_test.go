package session

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

type statusErr int

func (e statusErr) Error() string   { return http.StatusText(int(e)) }
func (e statusErr) StatusCode() int { return int(e) }

var errNetwork = errors.New("dial tcp: connection refused")

type fakeAuthenticator struct {
	mu sync.Mutex

	currentUser User
	currentErr  error
	// block, when set, holds CurrentUser until it is closed.
	block chan struct{}

	loginGrant    Grant
	loginErr      error
	registerGrant Grant
	registerErr   error
	logoutErr     error

	currentCalls int
	logoutCalls  int
	lastToken    string
}

func (f *fakeAuthenticator) CurrentUser(ctx context.Context, principal Principal) (User, error) {
	f.mu.Lock()
	f.currentCalls++
	f.lastToken = principal.Token
	block := f.block
	f.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return User{}, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentUser, f.currentErr
}

func (f *fakeAuthenticator) Login(_ context.Context, _ Principal, _ Credentials) (Grant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loginGrant, f.loginErr
}

func (f *fakeAuthenticator) Register(_ context.Context, _ Principal, _ Registration) (Grant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registerGrant, f.registerErr
}

func (f *fakeAuthenticator) Logout(_ context.Context, principal Principal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	f.lastToken = principal.Token
	return f.logoutErr
}

func (f *fakeAuthenticator) calls() (current int, logout int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentCalls, f.logoutCalls
}

func (f *fakeAuthenticator) setCurrent(user User, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.currentUser = user
	f.currentErr = err
}
