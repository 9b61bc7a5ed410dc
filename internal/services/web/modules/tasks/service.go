package tasks

import (
	"context"
	"slices"
	"strings"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
)

// cacheKey holds the last task list seen by this session.
const cacheKey = "tasks.list"

// Task is one application task.
type Task struct {
	ID          string
	Title       string
	Description string
	Category    string
	DueDate     string
	Completed   bool
}

// TaskGateway reads and mutates application tasks on the backend.
type TaskGateway interface {
	ListTasks(ctx context.Context) ([]Task, error)
	SetTaskCompleted(ctx context.Context, taskID string, completed bool) error
	GenerateTasks(ctx context.Context) error
}

type service struct {
	gateway TaskGateway
}

func newService(gateway TaskGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// listTasks fetches the task list and caches it for optimistic toggles.
func (s service) listTasks(ctx context.Context, store *session.Store) ([]Task, error) {
	items, err := s.gateway.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	if store != nil {
		store.Remember(cacheKey, slices.Clone(items))
	}
	return items, nil
}

// toggleTask flips one task's completion. The cached list reflects the new
// value before the backend confirms; on failure the task is restored and the
// restored task is returned with the error.
func (s service) toggleTask(ctx context.Context, store *session.Store, taskID string) (Task, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return Task{}, apperrors.E(apperrors.KindInvalidInput, "task id is required")
	}
	items, ok := session.RecallAs[[]Task](store, cacheKey)
	if !ok {
		var err error
		items, err = s.listTasks(ctx, store)
		if err != nil {
			return Task{}, err
		}
	}
	idx := slices.IndexFunc(items, func(t Task) bool { return t.ID == taskID })
	if idx < 0 {
		return Task{}, apperrors.E(apperrors.KindNotFound, "task not found")
	}
	previous := items[idx]
	next := previous
	next.Completed = !previous.Completed
	setCached(store, next)

	if err := s.gateway.SetTaskCompleted(ctx, taskID, next.Completed); err != nil {
		setCached(store, previous)
		return previous, err
	}
	return next, nil
}

func (s service) generateTasks(ctx context.Context, store *session.Store) error {
	if err := s.gateway.GenerateTasks(ctx); err != nil {
		return err
	}
	if store != nil {
		store.Forget(cacheKey)
	}
	return nil
}

// setCached replaces one task in the cached list without disturbing other
// entries updated concurrently.
func setCached(store *session.Store, task Task) {
	items, ok := session.RecallAs[[]Task](store, cacheKey)
	if !ok {
		return
	}
	items = slices.Clone(items)
	for i := range items {
		if items[i].ID == task.ID {
			items[i] = task
		}
	}
	store.Remember(cacheKey, items)
}

func countTasks(items []Task) (pending, completed int) {
	for _, item := range items {
		if item.Completed {
			completed++
		} else {
			pending++
		}
	}
	return pending, completed
}
