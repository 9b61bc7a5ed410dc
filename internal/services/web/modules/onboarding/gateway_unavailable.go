package onboarding

import (
	"context"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
	"github.com/louisbranch/studyabroad/internal/services/web/studyplan"
)

type unavailableGateway struct{}

func (unavailableGateway) SubmitOnboarding(context.Context, studyplan.Answers) error {
	return apperrors.E(apperrors.KindUnavailable, "onboarding backend is not configured")
}
