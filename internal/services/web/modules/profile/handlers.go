package profile

import (
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/studyabroad/internal/services/web/notify"
	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/studyabroad/internal/services/web/platform/i18n"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/pagerender"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/studyabroad/internal/services/web/templates"
)

// goodbyeRedirectDelay is how long the goodbye page stays before returning
// to the landing page.
const goodbyeRedirectDelay = 3 * time.Second

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

// formErrors carries inline messages for the profile forms.
type formErrors struct {
	identity string
	delete   string
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.writeProfile(w, r, http.StatusOK, nil, formErrors{})
}

func (h handlers) handlePreferences(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	if err := r.ParseForm(); err != nil {
		h.notifyFailure(r, loc, "profile preferences", apperrors.E(apperrors.KindInvalidInput, "failed to parse preferences form"))
		httpx.WriteRedirect(w, r, routepath.Profile)
		return
	}
	if _, err := h.service.updatePreferences(h.RequestContext(r), r.PostForm); err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		h.notifyFailure(r, loc, "profile preferences", err)
		httpx.WriteRedirect(w, r, routepath.Profile)
		return
	}
	h.Notices(r).Success(webtemplates.T(loc, "notice.preferences_saved"))
	httpx.WriteRedirect(w, r, routepath.Profile)
}

func (h handlers) handleIdentity(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	identity := Identity{Name: r.PostFormValue("name"), Email: r.PostFormValue("email")}
	identity, err := h.service.updateIdentity(h.RequestContext(r), h.Session(r), identity)
	if err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		if apperrors.IsKind(err, apperrors.KindInvalidInput) {
			h.writeProfile(w, r, http.StatusBadRequest, &identity, formErrors{identity: webi18n.LocalizeError(loc, err)})
			return
		}
		h.notifyFailure(r, loc, "profile identity", err)
		httpx.WriteRedirect(w, r, routepath.Profile)
		return
	}
	h.Notices(r).Success(webtemplates.T(loc, "notice.identity_saved"))
	httpx.WriteRedirect(w, r, routepath.Profile)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	err := h.service.deleteAccount(h.RequestContext(r), h.Client(r), r.PostFormValue("confirmation"))
	if err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		if apperrors.LocalizationKey(err) == ErrKeyDeleteMismatch {
			message := webtemplates.T(loc, ErrKeyDeleteMismatch, DeletePhrase)
			h.writeProfile(w, r, http.StatusBadRequest, nil, formErrors{delete: message})
			return
		}
		h.notifyFailure(r, loc, "account deletion", err)
		httpx.WriteRedirect(w, r, routepath.Profile)
		return
	}
	sessioncookie.Clear(w, r, h.SchemePolicy())
	h.WritePublicPage(w, r, pagerender.Page{
		Title:        webtemplates.T(loc, "goodbye.heading"),
		StatusCode:   http.StatusOK,
		Fragment:     webtemplates.GoodbyePage(loc),
		RefreshAfter: goodbyeRedirectDelay,
		RefreshURL:   routepath.Root,
	})
}

// writeProfile renders the page from the backend profile. A submitted
// identity replaces the stored one so the user can correct it.
func (h handlers) writeProfile(w http.ResponseWriter, r *http.Request, status int, submitted *Identity, errs formErrors) {
	loc, _ := h.PageLocalizer(w, r)
	profile, err := h.service.loadProfile(h.RequestContext(r))
	degraded := false
	if err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		log.Printf("web: profile load failed err=%v", err)
		degraded = true
		if store := h.Session(r); store != nil {
			if user := store.Snapshot().User; user != nil {
				profile.Name, profile.Email = user.Name, user.Email
			}
		}
	}
	if submitted != nil {
		profile.Name, profile.Email = submitted.Name, submitted.Email
	}
	preferences, countries := webtemplates.StudyPlanFields(profile.Answers, loc)
	h.WritePage(w, r, webtemplates.T(loc, "profile.heading"), status, webtemplates.ProfilePage(webtemplates.ProfileView{
		Name:         profile.Name,
		Email:        profile.Email,
		Preferences:  preferences,
		Countries:    countries,
		IdentityErr:  errs.identity,
		DeleteErr:    errs.delete,
		DeletePhrase: DeletePhrase,
		Degraded:     degraded,
	}, loc))
}

func (h handlers) notifyFailure(r *http.Request, loc webi18n.Localizer, action string, err error) {
	log.Printf("web: %s failed err=%v", action, err)
	h.Notices(r).Error(
		webtemplates.T(loc, "notice.action_failed"),
		notify.WithMessage(webi18n.LocalizeError(loc, err)),
	)
}
