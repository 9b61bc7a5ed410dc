package notifications

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/studyabroad/internal/services/web/notify"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/httpx"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/studyabroad/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

// listResponse is the JSON notification list.
type listResponse struct {
	Notifications []notify.Notification `json:"notifications"`
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	if httpx.IsHTMXRequest(r) && !httpx.WantsJSON(r) {
		h.writeTray(w, r)
		return
	}
	items := h.Notices(r).List()
	if items == nil {
		items = []notify.Notification{}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, listResponse{Notifications: items})
}

func (h handlers) handleDismiss(w http.ResponseWriter, r *http.Request) {
	h.Notices(r).Remove(strings.TrimSpace(r.PathValue("notificationID")))
	h.respond(w, r)
}

func (h handlers) handleClear(w http.ResponseWriter, r *http.Request) {
	h.Notices(r).ClearAll()
	h.respond(w, r)
}

func (h handlers) respond(w http.ResponseWriter, r *http.Request) {
	switch {
	case httpx.WantsJSON(r):
		w.WriteHeader(http.StatusNoContent)
	case httpx.IsHTMXRequest(r):
		h.writeTray(w, r)
	default:
		httpx.WriteRedirect(w, r, returnPath(r))
	}
}

func (h handlers) writeTray(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	h.WriteFragment(w, r, http.StatusOK, webtemplates.NotificationTray(h.Notices(r).List(), loc))
}

// returnPath sends the browser back to the same-origin page it came from.
func returnPath(r *http.Request) string {
	referer, err := url.Parse(r.Referer())
	if err != nil || referer.Host != r.Host || !strings.HasPrefix(referer.Path, "/") || strings.HasPrefix(referer.Path, "//") {
		return routepath.Dashboard
	}
	if routepath.Section(referer.Path) == routepath.Notifications {
		return routepath.Dashboard
	}
	if referer.RawQuery != "" {
		return referer.Path + "?" + referer.RawQuery
	}
	return referer.Path
}
