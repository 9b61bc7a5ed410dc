package backend

import (
	"context"
	"net/http"
	"strings"

	"github.com/louisbranch/studyabroad/internal/services/web/roles"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
)

const (
	pathLogin    = "/api/auth/login"
	pathRegister = "/api/auth/register"
	pathMe       = "/api/auth/me"
	pathLogout   = "/api/auth/logout"

	// tokenCookieName is where the backend also sets the identity token.
	tokenCookieName = "token"
)

type userPayload struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Role                string `json:"role"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
}

// authResponse accepts the user either nested under "user" or inline.
type authResponse struct {
	Token string       `json:"token"`
	User  *userPayload `json:"user"`
	userPayload
}

func (r authResponse) user() (userPayload, bool) {
	if r.User != nil {
		return *r.User, true
	}
	if strings.TrimSpace(r.userPayload.ID) != "" {
		return r.userPayload, true
	}
	return userPayload{}, false
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Authenticator implements the session auth contract over the REST API.
type Authenticator struct {
	client *Client
}

// NewAuthenticator wraps client.
func NewAuthenticator(client *Client) *Authenticator {
	return &Authenticator{client: client}
}

// CurrentUser calls the who-am-I endpoint.
func (a *Authenticator) CurrentUser(ctx context.Context, principal session.Principal) (session.User, error) {
	var resp authResponse
	if err := a.client.Get(WithPrincipal(ctx, principal), pathMe, nil, &resp); err != nil {
		return session.User{}, err
	}
	user, ok := resp.user()
	if !ok {
		return session.User{}, &StatusError{Method: http.MethodGet, Path: pathMe, Code: http.StatusUnauthorized}
	}
	return user.toSession(), nil
}

// Login exchanges credentials for a token.
func (a *Authenticator) Login(ctx context.Context, principal session.Principal, credentials session.Credentials) (session.Grant, error) {
	body := loginRequest{
		Email:    strings.TrimSpace(credentials.Email),
		Password: credentials.Password,
	}
	return a.grant(ctx, principal, pathLogin, body)
}

// Register creates an account.
func (a *Authenticator) Register(ctx context.Context, principal session.Principal, registration session.Registration) (session.Grant, error) {
	body := registerRequest{
		Name:     strings.TrimSpace(registration.Name),
		Email:    strings.TrimSpace(registration.Email),
		Password: registration.Password,
	}
	return a.grant(ctx, principal, pathRegister, body)
}

// Logout invalidates the server-side session.
func (a *Authenticator) Logout(ctx context.Context, principal session.Principal) error {
	return a.client.Post(WithPrincipal(ctx, principal), pathLogout, nil, nil)
}

func (a *Authenticator) grant(ctx context.Context, principal session.Principal, path string, body any) (session.Grant, error) {
	var resp authResponse
	if err := a.client.Post(WithPrincipal(ctx, principal), path, body, &resp); err != nil {
		return session.Grant{}, err
	}
	user, ok := resp.user()
	if !ok {
		return session.Grant{}, &StatusError{Method: http.MethodPost, Path: path, Code: http.StatusBadGateway}
	}
	token := strings.TrimSpace(resp.Token)
	if token == "" {
		token = a.tokenFromJar(principal.Jar)
	}
	// Refresh and logout authenticate with the token, so a grant without
	// one would leave a user the backend can never be asked about again.
	if token == "" {
		return session.Grant{}, &StatusError{Method: http.MethodPost, Path: path, Code: http.StatusBadGateway, Body: "missing token"}
	}
	return session.Grant{User: user.toSession(), Token: token}, nil
}

func (a *Authenticator) tokenFromJar(jar http.CookieJar) string {
	if jar == nil {
		return ""
	}
	for _, cookie := range jar.Cookies(a.client.BaseURL()) {
		if cookie.Name == tokenCookieName {
			return strings.TrimSpace(cookie.Value)
		}
	}
	return ""
}

func (p userPayload) toSession() session.User {
	return session.User{
		ID:                  strings.TrimSpace(p.ID),
		Name:                strings.TrimSpace(p.Name),
		Email:               strings.TrimSpace(p.Email),
		Role:                roles.Normalize(p.Role),
		OnboardingCompleted: p.OnboardingCompleted,
	}
}

var _ session.Authenticator = (*Authenticator)(nil)
