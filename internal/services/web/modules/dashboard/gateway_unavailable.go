package dashboard

import (
	"context"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) LoadStats(context.Context) (Stats, error) {
	return Stats{}, apperrors.E(apperrors.KindUnavailable, "dashboard backend is not configured")
}

func (unavailableGateway) LoadStage(context.Context) (int, error) {
	return 0, apperrors.E(apperrors.KindUnavailable, "dashboard backend is not configured")
}
