package chat

import (
	"context"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) LoadStage(context.Context) (int, error) {
	return 0, apperrors.E(apperrors.KindUnavailable, "chat backend is not configured")
}

func (unavailableGateway) SendMessage(context.Context, string, []Turn) (Reply, error) {
	return Reply{}, apperrors.E(apperrors.KindUnavailable, "chat backend is not configured")
}
