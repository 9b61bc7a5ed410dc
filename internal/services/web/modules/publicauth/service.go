package publicauth

import (
	"context"
	"net/mail"
	"strings"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
)

// SessionGateway performs auth transitions on a browser session. Sign-in
// returns the client under its rotated id.
type SessionGateway interface {
	Login(ctx context.Context, client *session.Client, credentials session.Credentials) (*session.Client, error)
	Register(ctx context.Context, client *session.Client, registration session.Registration) (*session.Client, error)
	Logout(ctx context.Context, client *session.Client)
}

type service struct {
	gateway SessionGateway
}

func newService(gateway SessionGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) login(ctx context.Context, client *session.Client, credentials session.Credentials) (*session.Client, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)
	if credentials.Email == "" || credentials.Password == "" {
		return client, invalidInput("email and password are required")
	}
	if client == nil {
		return nil, apperrors.E(apperrors.KindUnavailable, "browser session is not bound")
	}
	return s.gateway.Login(ctx, client, credentials)
}

func (s service) register(ctx context.Context, client *session.Client, registration session.Registration) (*session.Client, error) {
	registration.Name = strings.TrimSpace(registration.Name)
	registration.Email = strings.TrimSpace(registration.Email)
	if registration.Name == "" || registration.Email == "" || registration.Password == "" {
		return client, invalidInput("name, email, and password are required")
	}
	if _, err := mail.ParseAddress(registration.Email); err != nil {
		return client, invalidInput("email is malformed")
	}
	if client == nil {
		return nil, apperrors.E(apperrors.KindUnavailable, "browser session is not bound")
	}
	return s.gateway.Register(ctx, client, registration)
}

func (s service) logout(ctx context.Context, client *session.Client) {
	if client == nil {
		return
	}
	s.gateway.Logout(ctx, client)
}

func invalidInput(message string) error {
	return apperrors.EK(apperrors.KindInvalidInput, session.ErrKeyInvalidInput, message)
}
