package onboarding

import (
	"context"
	"sync"

	"github.com/louisbranch/studyabroad/internal/services/web/studyplan"
)

// fakeGateway records submissions and runs onSubmit to emulate the backend
// marking onboarding complete.
type fakeGateway struct {
	mu        sync.Mutex
	err       error
	submitted []studyplan.Answers
	onSubmit  func()
}

var _ Gateway = (*fakeGateway)(nil)

func (f *fakeGateway) SubmitOnboarding(_ context.Context, answers studyplan.Answers) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, answers)
	if f.err != nil {
		return f.err
	}
	if f.onSubmit != nil {
		f.onSubmit()
	}
	return nil
}

func (f *fakeGateway) calls() []studyplan.Answers {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]studyplan.Answers(nil), f.submitted...)
}

type fakeBackendClient struct {
	path string
	body any
}

func (f *fakeBackendClient) Post(_ context.Context, path string, body any, _ any) error {
	f.path = path
	f.body = body
	return nil
}
