package documents

import (
	"context"
	"net/url"
	"strings"

	"github.com/louisbranch/studyabroad/internal/services/web/integration/backend"
)

const (
	pathDocuments = "/api/documents"
	pathStats     = "/api/documents/stats"
)

// BackendClient is the subset of the REST client used by the checklist.
type BackendClient interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Patch(ctx context.Context, path string, body any, out any) error
}

type documentPayload struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	University string `json:"university"`
	Category   string `json:"category"`
	Notes      string `json:"notes"`
	Completed  bool   `json:"completed"`
}

type statsPayload struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

type updateRequest struct {
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
}

type httpGateway struct {
	client BackendClient
}

// NewHTTPGateway returns a gateway over the backend REST API.
func NewHTTPGateway(client BackendClient) DocumentGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return httpGateway{client: client}
}

func (g httpGateway) ListDocuments(ctx context.Context) ([]Document, error) {
	var resp []documentPayload
	if err := g.client.Get(ctx, pathDocuments, nil, &resp); err != nil {
		return nil, err
	}
	items := make([]Document, 0, len(resp))
	for _, p := range resp {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			continue
		}
		items = append(items, Document{
			ID:         id,
			Name:       strings.TrimSpace(p.Name),
			University: strings.TrimSpace(p.University),
			Category:   strings.TrimSpace(p.Category),
			Notes:      p.Notes,
			Completed:  p.Completed,
		})
	}
	return items, nil
}

func (g httpGateway) LoadStats(ctx context.Context) (Stats, error) {
	var resp statsPayload
	if err := g.client.Get(ctx, pathStats, nil, &resp); err != nil {
		return Stats{}, err
	}
	return Stats{Total: resp.Total, Completed: resp.Completed, Pending: resp.Pending}, nil
}

func (g httpGateway) UpdateDocument(ctx context.Context, documentID string, update Update) error {
	body := updateRequest{Completed: update.Completed, Notes: update.Notes}
	return g.client.Patch(ctx, pathDocuments+"/"+backend.PathSegment(documentID), body, nil)
}
