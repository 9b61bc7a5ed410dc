package publicauth

import (
	"net/http"
	"time"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/studyabroad/internal/services/web/platform/flash"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/studyabroad/internal/services/web/platform/i18n"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/pagerender"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
	webtemplates "github.com/louisbranch/studyabroad/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service      service
	cookieMaxAge time.Duration
}

func newHandlers(s service, base modulehandler.Base, cookieMaxAge time.Duration) handlers {
	return handlers{Base: base, service: s, cookieMaxAge: cookieMaxAge}
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.writeLogin(w, r, http.StatusOK, webtemplates.AuthFormState{})
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeLoginError(w, r, webtemplates.AuthFormState{}, invalidInput("failed to parse login form"))
		return
	}
	credentials := session.Credentials{Email: r.FormValue("email"), Password: r.FormValue("password")}
	client, err := h.service.login(r.Context(), h.Client(r), credentials)
	if err != nil {
		h.writeLoginError(w, r, webtemplates.AuthFormState{Email: credentials.Email}, err)
		return
	}
	h.completeSignIn(w, r, client)
}

func (h handlers) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	h.writeRegister(w, r, http.StatusOK, webtemplates.AuthFormState{})
}

func (h handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeRegisterError(w, r, webtemplates.AuthFormState{}, invalidInput("failed to parse registration form"))
		return
	}
	registration := session.Registration{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	client, err := h.service.register(r.Context(), h.Client(r), registration)
	if err != nil {
		h.writeRegisterError(w, r, webtemplates.AuthFormState{Name: registration.Name, Email: registration.Email}, err)
		return
	}
	h.completeSignIn(w, r, client)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.service.logout(r.Context(), h.Client(r))
	sessioncookie.Clear(w, r, h.SchemePolicy())
	flashnotice.Write(w, r, flashnotice.Info("notice.signed_out"), h.SchemePolicy())
	httpx.WriteRedirect(w, r, routepath.Root)
}

// completeSignIn reissues the cookie under the rotated id and sends the
// user to the first page their session may reach.
func (h handlers) completeSignIn(w http.ResponseWriter, r *http.Request, client *session.Client) {
	sessioncookie.Write(w, r, client.ID, h.cookieMaxAge, h.SchemePolicy())
	location := routepath.Dashboard
	if client.Session.Snapshot().Phase() == session.PhaseOnboardingRequired {
		location = routepath.Onboarding
	}
	httpx.WriteRedirect(w, r, location)
}

func (h handlers) writeLoginError(w http.ResponseWriter, r *http.Request, state webtemplates.AuthFormState, err error) {
	loc, _ := h.PageLocalizer(w, r)
	state.ErrorMessage = webi18n.LocalizeError(loc, err)
	h.writeLogin(w, r, apperrors.HTTPStatus(err), state)
}

func (h handlers) writeRegisterError(w http.ResponseWriter, r *http.Request, state webtemplates.AuthFormState, err error) {
	loc, _ := h.PageLocalizer(w, r)
	state.ErrorMessage = webi18n.LocalizeError(loc, err)
	h.writeRegister(w, r, apperrors.HTTPStatus(err), state)
}

func (h handlers) writeLogin(w http.ResponseWriter, r *http.Request, status int, state webtemplates.AuthFormState) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePublicPage(w, r, pagerender.Page{
		Title:      webtemplates.T(loc, "login.heading"),
		StatusCode: status,
		Fragment:   webtemplates.LoginPage(state, loc),
	})
}

func (h handlers) writeRegister(w http.ResponseWriter, r *http.Request, status int, state webtemplates.AuthFormState) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePublicPage(w, r, pagerender.Page{
		Title:      webtemplates.T(loc, "register.heading"),
		StatusCode: status,
		Fragment:   webtemplates.RegisterPage(state, loc),
	})
}
