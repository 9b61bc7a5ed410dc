package publicauth

import (
	"context"
	"sync"

	"github.com/louisbranch/studyabroad/internal/services/web/session"
)

// recordingGateway counts calls and never reaches a backend.
type recordingGateway struct {
	mu          sync.Mutex
	loginCalls  int
	logoutCalls int
}

var _ SessionGateway = (*recordingGateway)(nil)

func (g *recordingGateway) Login(_ context.Context, client *session.Client, _ session.Credentials) (*session.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.loginCalls++
	return client, nil
}

func (g *recordingGateway) Register(_ context.Context, client *session.Client, _ session.Registration) (*session.Client, error) {
	return client, nil
}

func (g *recordingGateway) Logout(context.Context, *session.Client) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.logoutCalls++
}

func (g *recordingGateway) counts() (login int, logout int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loginCalls, g.logoutCalls
}
