package onboarding

import (
	"context"

	"github.com/louisbranch/studyabroad/internal/services/web/studyplan"
)

const pathOnboarding = "/api/onboarding"

// BackendClient is the subset of the REST client used by onboarding.
type BackendClient interface {
	Post(ctx context.Context, path string, body any, out any) error
}

type httpGateway struct {
	client BackendClient
}

// NewHTTPGateway returns a gateway over the backend REST API.
func NewHTTPGateway(client BackendClient) Gateway {
	if client == nil {
		return unavailableGateway{}
	}
	return httpGateway{client: client}
}

func (g httpGateway) SubmitOnboarding(ctx context.Context, answers studyplan.Answers) error {
	return g.client.Post(ctx, pathOnboarding, answers, nil)
}
