package documents

import (
	"context"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListDocuments(context.Context) ([]Document, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "documents backend is not configured")
}

func (unavailableGateway) LoadStats(context.Context) (Stats, error) {
	return Stats{}, apperrors.E(apperrors.KindUnavailable, "documents backend is not configured")
}

func (unavailableGateway) UpdateDocument(context.Context, string, Update) error {
	return apperrors.E(apperrors.KindUnavailable, "documents backend is not configured")
}
