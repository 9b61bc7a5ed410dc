package publicauth

import (
	"context"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
)

type unavailableGateway struct{}

func (unavailableGateway) Login(_ context.Context, client *session.Client, _ session.Credentials) (*session.Client, error) {
	return client, apperrors.EK(apperrors.KindUnavailable, session.ErrKeyUnavailable, "session manager is not configured")
}

func (unavailableGateway) Register(_ context.Context, client *session.Client, _ session.Registration) (*session.Client, error) {
	return client, apperrors.EK(apperrors.KindUnavailable, session.ErrKeyUnavailable, "session manager is not configured")
}

func (unavailableGateway) Logout(context.Context, *session.Client) {}
