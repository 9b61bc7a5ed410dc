package chat

import (
	"log"
	"net/http"

	"github.com/louisbranch/studyabroad/internal/services/web/notify"
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

// sendResponse is the JSON reply to a chat message.
type sendResponse struct {
	Reply string `json:"reply"`
	Stage int    `json:"stage"`
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.writeChat(w, r, http.StatusOK, "")
}

func (h handlers) handleSend(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	question, answer, stage, err := h.service.send(h.RequestContext(r), h.Session(r), r.PostFormValue("message"))
	if err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		h.writeSendError(w, r, loc, err)
		return
	}

	switch {
	case httpx.WantsJSON(r):
		_ = httpx.WriteJSON(w, http.StatusOK, sendResponse{Reply: answer.Content, Stage: stage})
	case httpx.IsHTMXRequest(r):
		h.WriteFragment(w, r, http.StatusOK, webtemplates.ChatTurns([]webtemplates.ChatTurn{
			{Role: question.Role, Content: question.Content},
			{Role: answer.Role, Content: answer.Content},
		}))
	default:
		httpx.WriteRedirect(w, r, routepath.Chat)
	}
}

func (h handlers) writeSendError(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, err error) {
	message := webi18n.LocalizeError(loc, err)
	invalid := apperrors.IsKind(err, apperrors.KindInvalidInput)
	if !invalid {
		log.Printf("web: chat message failed err=%v", err)
		h.Notices(r).Error(webtemplates.T(loc, "notice.chat_failed"), notify.WithMessage(message))
	}
	switch {
	case httpx.WantsJSON(r):
		_ = httpx.WriteJSONError(w, apperrors.HTTPStatus(err), message)
	case httpx.IsHTMXRequest(r):
		w.WriteHeader(http.StatusNoContent)
	case invalid:
		h.writeChat(w, r, http.StatusBadRequest, message)
	default:
		httpx.WriteRedirect(w, r, routepath.Chat)
	}
}

func (h handlers) writeChat(w http.ResponseWriter, r *http.Request, status int, errorMessage string) {
	loc, _ := h.PageLocalizer(w, r)
	data, err := h.service.loadConversation(h.RequestContext(r), h.Session(r))
	if err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		log.Printf("web: chat stage unavailable err=%v", err)
	}
	view := webtemplates.ChatView{Stage: data.Stage, ErrorMessage: errorMessage}
	if key := studyplan.StageKey(data.Stage); key != "" {
		view.StageLabel = webtemplates.T(loc, key)
	}
	for _, turn := range data.Turns {
		view.Turns = append(view.Turns, webtemplates.ChatTurn{Role: turn.Role, Content: turn.Content})
	}
	h.WritePage(w, r, webtemplates.T(loc, "chat.heading"), status, webtemplates.ChatPage(view, loc))
}
