package documents

import (
	"context"
	"net/url"
	"sync"
)

// fakeGateway implements DocumentGateway for tests with configurable return
// values and call tracking.
type fakeGateway struct {
	mu        sync.Mutex
	items     []Document
	listErr   error
	stats     Stats
	statsErr  error
	updateErr error
	updates   map[string]Update
}

var _ DocumentGateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListDocuments(context.Context) ([]Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeGateway) LoadStats(context.Context) (Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statsErr != nil {
		return Stats{}, f.statsErr
	}
	return f.stats, nil
}

func (f *fakeGateway) UpdateDocument(_ context.Context, documentID string, update Update) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updates == nil {
		f.updates = make(map[string]Update)
	}
	f.updates[documentID] = update
	return f.updateErr
}

// fakeBackendClient answers GETs from canned payloads and records PATCHes.
type fakeBackendClient struct {
	mu        sync.Mutex
	list      []documentPayload
	stats     statsPayload
	patchPath string
	patchBody any
}

func (f *fakeBackendClient) Get(_ context.Context, path string, _ url.Values, out any) error {
	switch dst := out.(type) {
	case *[]documentPayload:
		*dst = f.list
	case *statsPayload:
		*dst = f.stats
	}
	return nil
}

func (f *fakeBackendClient) Patch(_ context.Context, path string, body any, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patchPath = path
	f.patchBody = body
	return nil
}
