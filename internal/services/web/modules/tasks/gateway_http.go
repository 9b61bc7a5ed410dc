package tasks

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/studyabroad/internal/services/web/integration/backend"
)

const (
	pathTasks    = "/api/tasks"
	pathGenerate = "/api/tasks/generate"
)

// BackendClient is the subset of the REST client used by the task list.
type BackendClient interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Patch(ctx context.Context, path string, body any, out any) error
}

type taskPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"`
}

type completionRequest struct {
	Completed bool `json:"completed"`
}

type httpGateway struct {
	client BackendClient
}

// NewHTTPGateway returns a gateway over the backend REST API.
func NewHTTPGateway(client BackendClient) TaskGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return httpGateway{client: client}
}

func (g httpGateway) ListTasks(ctx context.Context) ([]Task, error) {
	var resp []taskPayload
	if err := g.client.Get(ctx, pathTasks, nil, &resp); err != nil {
		return nil, err
	}
	items := make([]Task, 0, len(resp))
	for _, p := range resp {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			continue
		}
		items = append(items, Task{
			ID:          id,
			Title:       strings.TrimSpace(p.Title),
			Description: strings.TrimSpace(p.Description),
			Category:    strings.TrimSpace(p.Category),
			DueDate:     formatDueDate(p.DueDate),
			Completed:   p.Completed,
		})
	}
	return items, nil
}

func (g httpGateway) SetTaskCompleted(ctx context.Context, taskID string, completed bool) error {
	return g.client.Patch(ctx, pathTasks+"/"+backend.PathSegment(taskID), completionRequest{Completed: completed}, nil)
}

func (g httpGateway) GenerateTasks(ctx context.Context) error {
	return g.client.Post(ctx, pathGenerate, nil, nil)
}

// formatDueDate renders backend timestamps as calendar dates and passes
// anything unparseable through unchanged.
func formatDueDate(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format(time.DateOnly)
		}
	}
	return raw
}
