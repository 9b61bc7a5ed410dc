package profile

import (
	"context"
	"net/url"
	"strings"

	"github.com/louisbranch/studyabroad/internal/services/web/studyplan"
)

const (
	pathProfile     = "/api/profile"
	pathPreferences = "/api/profile/preferences"
	pathIdentity    = "/api/profile/identity"
)

// BackendClient is the subset of the REST client used by the profile page.
type BackendClient interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Patch(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// profilePayload is the flat profile document: identity plus questionnaire
// answers.
type profilePayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	studyplan.Answers
}

type identityRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type httpGateway struct {
	client BackendClient
}

// NewHTTPGateway returns a gateway over the backend REST API.
func NewHTTPGateway(client BackendClient) ProfileGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return httpGateway{client: client}
}

func (g httpGateway) LoadProfile(ctx context.Context) (Profile, error) {
	var resp profilePayload
	if err := g.client.Get(ctx, pathProfile, nil, &resp); err != nil {
		return Profile{}, err
	}
	return Profile{
		Name:    strings.TrimSpace(resp.Name),
		Email:   strings.TrimSpace(resp.Email),
		Answers: resp.Answers,
	}, nil
}

func (g httpGateway) UpdatePreferences(ctx context.Context, answers studyplan.Answers) error {
	return g.client.Patch(ctx, pathPreferences, answers, nil)
}

func (g httpGateway) UpdateIdentity(ctx context.Context, identity Identity) error {
	return g.client.Patch(ctx, pathIdentity, identityRequest{Name: identity.Name, Email: identity.Email}, nil)
}

func (g httpGateway) DeleteAccount(ctx context.Context) error {
	return g.client.Delete(ctx, pathProfile, nil)
}
