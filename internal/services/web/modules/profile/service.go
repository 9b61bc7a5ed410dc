package profile

import (
	"context"
	"net/mail"
	"net/url"
	"strings"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
	"github.com/louisbranch/studyabroad/internal/services/web/studyplan"
)

// DeletePhrase must be typed exactly to confirm account deletion.
const DeletePhrase = "delete"

// Localization keys for inline profile validation.
const (
	ErrKeyDeleteMismatch   = "profile.delete_mismatch"
	ErrKeyIdentityRequired = "profile.identity_required"
)

// Profile is the account data shown on the profile page.
type Profile struct {
	Name    string
	Email   string
	Answers studyplan.Answers
}

// Identity is the editable account identity.
type Identity struct {
	Name  string
	Email string
}

// ProfileGateway reads and mutates the account on the backend.
type ProfileGateway interface {
	LoadProfile(ctx context.Context) (Profile, error)
	UpdatePreferences(ctx context.Context, answers studyplan.Answers) error
	UpdateIdentity(ctx context.Context, identity Identity) error
	DeleteAccount(ctx context.Context) error
}

// SessionGateway ends a browser session after its account is deleted.
type SessionGateway interface {
	Logout(ctx context.Context, client *session.Client)
}

type service struct {
	gateway  ProfileGateway
	sessions SessionGateway
}

func newService(gateway ProfileGateway, sessions SessionGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, sessions: sessions}
}

func (s service) loadProfile(ctx context.Context) (Profile, error) {
	return s.gateway.LoadProfile(ctx)
}

// updatePreferences validates the questionnaire. Partial answers are allowed
// here; only onboarding requires every field.
func (s service) updatePreferences(ctx context.Context, form url.Values) (studyplan.Answers, error) {
	answers, err := studyplan.Parse(form)
	if err != nil {
		return answers, err
	}
	return answers, s.gateway.UpdatePreferences(ctx, answers)
}

func (s service) updateIdentity(ctx context.Context, store *session.Store, identity Identity) (Identity, error) {
	identity.Name = strings.TrimSpace(identity.Name)
	identity.Email = strings.TrimSpace(identity.Email)
	if identity.Name == "" || identity.Email == "" {
		return identity, apperrors.EK(apperrors.KindInvalidInput, ErrKeyIdentityRequired, "name and email are required")
	}
	if _, err := mail.ParseAddress(identity.Email); err != nil {
		return identity, apperrors.EK(apperrors.KindInvalidInput, session.ErrKeyInvalidInput, "email is malformed")
	}
	if err := s.gateway.UpdateIdentity(ctx, identity); err != nil {
		return identity, err
	}
	if store != nil {
		if err := store.Refresh(ctx); err != nil {
			return identity, err
		}
	}
	return identity, nil
}

// deleteAccount issues no request unless confirmation is exactly
// DeletePhrase. On success the browser session is logged out and discarded.
func (s service) deleteAccount(ctx context.Context, client *session.Client, confirmation string) error {
	if confirmation != DeletePhrase {
		return apperrors.EK(apperrors.KindInvalidInput, ErrKeyDeleteMismatch, "confirmation phrase does not match")
	}
	if err := s.gateway.DeleteAccount(ctx); err != nil {
		return err
	}
	if s.sessions != nil && client != nil {
		s.sessions.Logout(context.WithoutCancel(ctx), client)
	} else if client != nil && client.Session != nil {
		client.Session.Logout(context.WithoutCancel(ctx))
	}
	return nil
}
