package profile

import (
	"context"
	"net/url"
	"sync"

	"github.com/louisbranch/studyabroad/internal/services/web/session"
	"github.com/louisbranch/studyabroad/internal/services/web/studyplan"
)

// fakeGateway implements ProfileGateway for tests with configurable return
// values and call tracking.
type fakeGateway struct {
	mu          sync.Mutex
	profile     Profile
	loadErr     error
	updateErr   error
	deleteErr   error
	preferences []studyplan.Answers
	identities  []Identity
	deletes     int
}

var _ ProfileGateway = (*fakeGateway)(nil)

func (f *fakeGateway) LoadProfile(context.Context) (Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return Profile{}, f.loadErr
	}
	return f.profile, nil
}

func (f *fakeGateway) UpdatePreferences(_ context.Context, answers studyplan.Answers) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.preferences = append(f.preferences, answers)
	return f.updateErr
}

func (f *fakeGateway) UpdateIdentity(_ context.Context, identity Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.identities = append(f.identities, identity)
	return f.updateErr
}

func (f *fakeGateway) DeleteAccount(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	return f.deleteErr
}

func (f *fakeGateway) deleteCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deletes
}

// fakeSessions records logouts and clears the client's session.
type fakeSessions struct {
	mu      sync.Mutex
	logouts []string
}

func (f *fakeSessions) Logout(ctx context.Context, client *session.Client) {
	f.mu.Lock()
	f.logouts = append(f.logouts, client.ID)
	f.mu.Unlock()
	client.Session.Logout(ctx)
}

// fakeBackendClient records requests and answers GETs from a canned payload.
type fakeBackendClient struct {
	mu      sync.Mutex
	profile profilePayload
	calls   []string
	bodies  []any
}

func (f *fakeBackendClient) Get(_ context.Context, path string, _ url.Values, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "GET "+path)
	if dst, ok := out.(*profilePayload); ok {
		*dst = f.profile
	}
	return nil
}

func (f *fakeBackendClient) Patch(_ context.Context, path string, body any, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "PATCH "+path)
	f.bodies = append(f.bodies, body)
	return nil
}

func (f *fakeBackendClient) Delete(_ context.Context, path string, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "DELETE "+path)
	return nil
}
