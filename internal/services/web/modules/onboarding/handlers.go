package onboarding

import (
	"log"
	"net/http"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/studyabroad/internal/services/web/platform/i18n"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
	"github.com/louisbranch/studyabroad/internal/services/web/studyplan"
	webtemplates "github.com/louisbranch/studyabroad/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.writeForm(w, r, http.StatusOK, studyplan.Answers{}, "")
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	if err := r.ParseForm(); err != nil {
		h.writeForm(w, r, http.StatusBadRequest, studyplan.Answers{}, webi18n.LocalizeError(loc, apperrors.E(apperrors.KindInvalidInput, "failed to parse onboarding form")))
		return
	}
	answers, err := h.service.submit(h.RequestContext(r), r.PostForm)
	if err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		if apperrors.IsKind(err, apperrors.KindInvalidInput) {
			h.writeForm(w, r, http.StatusBadRequest, answers, webi18n.LocalizeError(loc, err))
			return
		}
		log.Printf("web: onboarding submit failed err=%v", err)
		h.Notices(r).Error(webi18n.LocalizeError(loc, err))
		h.writeForm(w, r, apperrors.HTTPStatus(err), answers, "")
		return
	}

	if store := h.Session(r); store != nil {
		if err := store.Refresh(r.Context()); err != nil {
			log.Printf("web: session refresh after onboarding failed err=%v", err)
		}
	}
	h.Notices(r).Success(webtemplates.T(loc, "notice.onboarding_complete"))
	httpx.WriteRedirect(w, r, routepath.Dashboard)
}

func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, status int, answers studyplan.Answers, errorMessage string) {
	loc, _ := h.PageLocalizer(w, r)
	fields, countries := webtemplates.StudyPlanFields(answers, loc)
	h.WritePage(w, r, webtemplates.T(loc, "onboarding.heading"), status, webtemplates.OnboardingPage(webtemplates.OnboardingView{
		Fields:       fields,
		Countries:    countries,
		ErrorMessage: errorMessage,
	}, loc))
}
