package chat

import (
	"context"
	"net/url"
	"sync"
)

// fakeGateway implements ChatGateway for tests with configurable return
// values and call tracking.
type fakeGateway struct {
	mu        sync.Mutex
	stage     int
	stageErr  error
	reply     Reply
	sendErr   error
	histories [][]Turn
}

var _ ChatGateway = (*fakeGateway)(nil)

func (f *fakeGateway) LoadStage(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stage, f.stageErr
}

func (f *fakeGateway) SendMessage(_ context.Context, _ string, history []Turn) (Reply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.histories = append(f.histories, history)
	if f.sendErr != nil {
		return Reply{}, f.sendErr
	}
	return f.reply, nil
}

// fakeBackendClient records the chat POST and answers from canned payloads.
type fakeBackendClient struct {
	mu       sync.Mutex
	stage    stagePayload
	response messageResponse
	posted   any
}

func (f *fakeBackendClient) Get(_ context.Context, _ string, _ url.Values, out any) error {
	if dst, ok := out.(*stagePayload); ok {
		*dst = f.stage
	}
	return nil
}

func (f *fakeBackendClient) Post(_ context.Context, _ string, body any, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posted = body
	if dst, ok := out.(*messageResponse); ok {
		*dst = f.response
	}
	return nil
}
