package onboarding

import (
	"context"
	"net/url"

	"github.com/louisbranch/studyabroad/internal/services/web/studyplan"
)

// Gateway submits the questionnaire to the backend.
type Gateway interface {
	SubmitOnboarding(ctx context.Context, answers studyplan.Answers) error
}

type service struct {
	gateway Gateway
}

func newService(gateway Gateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// submit validates the form and sends it. The parsed answers are returned
// even on failure so the form can be re-rendered as submitted.
func (s service) submit(ctx context.Context, values url.Values) (studyplan.Answers, error) {
	answers, err := studyplan.Parse(values)
	if err != nil {
		return studyplan.Answers{}, err
	}
	if err := studyplan.RequireComplete(answers); err != nil {
		return answers, err
	}
	return answers, s.gateway.SubmitOnboarding(ctx, answers)
}
