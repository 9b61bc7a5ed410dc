package universities

import (
	"context"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListUniversities(context.Context, Filters) ([]University, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "universities backend is not configured")
}

func (unavailableGateway) ListShortlisted(context.Context) ([]University, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "universities backend is not configured")
}

func (unavailableGateway) ToggleShortlist(context.Context, string) (bool, error) {
	return false, apperrors.E(apperrors.KindUnavailable, "universities backend is not configured")
}

func (unavailableGateway) LockUniversity(context.Context, string) error {
	return apperrors.E(apperrors.KindUnavailable, "universities backend is not configured")
}
