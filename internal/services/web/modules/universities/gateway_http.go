package universities

import (
	"context"
	"net/url"
	"strings"

	"github.com/louisbranch/studyabroad/internal/services/web/integration/backend"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

const (
	pathUniversities = "/api/universities"
	pathShortlisted  = "/api/universities/shortlisted"
)

// BackendClient is the subset of the REST client used by university pages.
type BackendClient interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
}

type universityPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Category    string `json:"category"`
	Tuition     int    `json:"tuition"`
	Ranking     int    `json:"ranking"`
	Shortlisted bool   `json:"shortlisted"`
	Locked      bool   `json:"locked"`
}

type shortlistPayload struct {
	Shortlisted bool `json:"shortlisted"`
}

type httpGateway struct {
	client BackendClient
}

// NewHTTPGateway returns a gateway over the backend REST API.
func NewHTTPGateway(client BackendClient) UniversityGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return httpGateway{client: client}
}

func (g httpGateway) ListUniversities(ctx context.Context, filters Filters) ([]University, error) {
	query := url.Values{}
	if filters.Country != "" {
		query.Set(routepath.UniversityFilterCountry, filters.Country)
	}
	if filters.Budget != "" {
		query.Set(routepath.UniversityFilterBudget, filters.Budget)
	}
	if filters.Category != "" {
		query.Set(routepath.UniversityFilterCategory, filters.Category)
	}
	var resp []universityPayload
	if err := g.client.Get(ctx, pathUniversities, query, &resp); err != nil {
		return nil, err
	}
	return mapUniversities(resp), nil
}

func (g httpGateway) ListShortlisted(ctx context.Context) ([]University, error) {
	var resp []universityPayload
	if err := g.client.Get(ctx, pathShortlisted, nil, &resp); err != nil {
		return nil, err
	}
	items := mapUniversities(resp)
	for i := range items {
		items[i].Shortlisted = true
	}
	return items, nil
}

func (g httpGateway) ToggleShortlist(ctx context.Context, universityID string) (bool, error) {
	var resp shortlistPayload
	if err := g.client.Post(ctx, pathUniversities+"/"+backend.PathSegment(universityID)+"/shortlist", nil, &resp); err != nil {
		return false, err
	}
	return resp.Shortlisted, nil
}

func (g httpGateway) LockUniversity(ctx context.Context, universityID string) error {
	return g.client.Post(ctx, pathUniversities+"/"+backend.PathSegment(universityID)+"/lock", nil, nil)
}

func mapUniversities(payloads []universityPayload) []University {
	items := make([]University, 0, len(payloads))
	for _, p := range payloads {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			continue
		}
		items = append(items, University{
			ID:          id,
			Name:        strings.TrimSpace(p.Name),
			Country:     strings.TrimSpace(p.Country),
			City:        strings.TrimSpace(p.City),
			Category:    strings.ToLower(strings.TrimSpace(p.Category)),
			Tuition:     p.Tuition,
			Ranking:     p.Ranking,
			Shortlisted: p.Shortlisted,
			Locked:      p.Locked,
		})
	}
	return items
}
