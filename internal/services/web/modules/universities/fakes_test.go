package universities

import (
	"context"
	"net/url"
	"sync"
)

// fakeGateway implements UniversityGateway for tests with configurable
// return values and call tracking.
type fakeGateway struct {
	mu           sync.Mutex
	items        []University
	listErr      error
	shortlisted  []University
	shortlistErr error
	toggleErr    error
	lockErr      error
	lastFilters  Filters
	toggled      []string
	locked       []string
}

var _ UniversityGateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListUniversities(_ context.Context, filters Filters) ([]University, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilters = filters
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeGateway) ListShortlisted(context.Context) ([]University, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shortlistErr != nil {
		return nil, f.shortlistErr
	}
	return f.shortlisted, nil
}

func (f *fakeGateway) ToggleShortlist(_ context.Context, universityID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toggled = append(f.toggled, universityID)
	if f.toggleErr != nil {
		return false, f.toggleErr
	}
	return true, nil
}

func (f *fakeGateway) LockUniversity(_ context.Context, universityID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locked = append(f.locked, universityID)
	return f.lockErr
}

// fakeBackendClient records requests and answers from canned payloads.
type fakeBackendClient struct {
	mu        sync.Mutex
	list      []universityPayload
	shortlist shortlistPayload
	err       error
	gets      []string
	queries   []url.Values
	posts     []string
}

func (f *fakeBackendClient) Get(_ context.Context, path string, query url.Values, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets = append(f.gets, path)
	f.queries = append(f.queries, query)
	if f.err != nil {
		return f.err
	}
	if dst, ok := out.(*[]universityPayload); ok {
		*dst = f.list
	}
	return nil
}

func (f *fakeBackendClient) Post(_ context.Context, path string, _ any, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, path)
	if f.err != nil {
		return f.err
	}
	if dst, ok := out.(*shortlistPayload); ok {
		*dst = f.shortlist
	}
	return nil
}
