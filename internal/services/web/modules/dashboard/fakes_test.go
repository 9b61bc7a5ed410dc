package dashboard

import (
	"context"
	"net/url"
	"sync"
)

// fakeGateway implements DashboardGateway for tests with configurable return
// values and call tracking.
type fakeGateway struct {
	mu       sync.Mutex
	stats    Stats
	statsErr error
	stage    int
	stageErr error
	calls    int
}

var _ DashboardGateway = (*fakeGateway)(nil)

func (f *fakeGateway) LoadStats(context.Context) (Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.statsErr != nil {
		return Stats{}, f.statsErr
	}
	return f.stats, nil
}

func (f *fakeGateway) LoadStage(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.stageErr != nil {
		return 0, f.stageErr
	}
	return f.stage, nil
}

// fakeBackendClient answers GETs from canned JSON-shaped values.
type fakeBackendClient struct {
	responses map[string]any
	err       error
}

func (f fakeBackendClient) Get(_ context.Context, path string, _ url.Values, out any) error {
	if f.err != nil {
		return f.err
	}
	switch dst := out.(type) {
	case *statsPayload:
		*dst = f.responses[path].(statsPayload)
	case *stagePayload:
		*dst = f.responses[path].(stagePayload)
	}
	return nil
}
