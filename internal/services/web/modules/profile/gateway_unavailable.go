package profile

import (
	"context"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
	"github.com/louisbranch/studyabroad/internal/services/web/studyplan"
)

type unavailableGateway struct{}

func (unavailableGateway) LoadProfile(context.Context) (Profile, error) {
	return Profile{}, apperrors.E(apperrors.KindUnavailable, "profile backend is not configured")
}

func (unavailableGateway) UpdatePreferences(context.Context, studyplan.Answers) error {
	return apperrors.E(apperrors.KindUnavailable, "profile backend is not configured")
}

func (unavailableGateway) UpdateIdentity(context.Context, Identity) error {
	return apperrors.E(apperrors.KindUnavailable, "profile backend is not configured")
}

func (unavailableGateway) DeleteAccount(context.Context) error {
	return apperrors.E(apperrors.KindUnavailable, "profile backend is not configured")
}
