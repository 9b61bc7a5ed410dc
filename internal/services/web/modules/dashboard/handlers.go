package dashboard

import (
	"net/http"

	"github.com/louisbranch/studyabroad/internal/services/web/platform/httpx"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
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
	loc, _ := h.PageLocalizer(w, r)
	snapshot, err := h.service.loadDashboard(h.RequestContext(r))
	if err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		h.WriteError(w, r, err)
		return
	}
	view := webtemplates.DashboardView{
		ShortlistedCount: snapshot.Stats.ShortlistedCount,
		PendingTasks:     snapshot.Stats.PendingTasks,
		CompletedTasks:   snapshot.Stats.CompletedTasks,
		LockedUniversity: snapshot.Stats.LockedUniversity,
		Stage:            snapshot.Stage,
		Degraded:         snapshot.Degraded(),
	}
	if store := h.Session(r); store != nil {
		view.Name = store.Snapshot().DisplayName()
	}
	if key := studyplan.StageKey(snapshot.Stage); key != "" {
		view.StageLabel = webtemplates.T(loc, key)
	}
	h.WritePage(w, r, webtemplates.T(loc, "nav.dashboard"), http.StatusOK, webtemplates.DashboardPage(view, loc))
}
