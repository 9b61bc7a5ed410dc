package tasks

import (
	"context"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListTasks(context.Context) ([]Task, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "tasks backend is not configured")
}

func (unavailableGateway) SetTaskCompleted(context.Context, string, bool) error {
	return apperrors.E(apperrors.KindUnavailable, "tasks backend is not configured")
}

func (unavailableGateway) GenerateTasks(context.Context) error {
	return apperrors.E(apperrors.KindUnavailable, "tasks backend is not configured")
}
