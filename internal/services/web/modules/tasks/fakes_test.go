package tasks

import (
	"context"
	"net/url"
	"sync"
)

// fakeGateway implements TaskGateway for tests with configurable return
// values and call tracking.
type fakeGateway struct {
	mu          sync.Mutex
	items       []Task
	listErr     error
	setErr      error
	generateErr error
	listCalls   int
	updates     map[string]bool
	generated   int
}

var _ TaskGateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListTasks(context.Context) ([]Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]Task(nil), f.items...), nil
}

func (f *fakeGateway) SetTaskCompleted(_ context.Context, taskID string, completed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updates == nil {
		f.updates = make(map[string]bool)
	}
	f.updates[taskID] = completed
	return f.setErr
}

func (f *fakeGateway) GenerateTasks(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generated++
	return f.generateErr
}

type backendCall struct {
	method string
	path   string
	body   any
}

// fakeBackendClient records requests and answers GETs from canned payloads.
type fakeBackendClient struct {
	mu    sync.Mutex
	list  []taskPayload
	calls []backendCall
}

func (f *fakeBackendClient) record(method, path string, body any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, backendCall{method: method, path: path, body: body})
}

func (f *fakeBackendClient) Get(_ context.Context, path string, _ url.Values, out any) error {
	f.record("GET", path, nil)
	if dst, ok := out.(*[]taskPayload); ok {
		*dst = f.list
	}
	return nil
}

func (f *fakeBackendClient) Post(_ context.Context, path string, body any, _ any) error {
	f.record("POST", path, body)
	return nil
}

func (f *fakeBackendClient) Patch(_ context.Context, path string, body any, _ any) error {
	f.record("PATCH", path, body)
	return nil
}
