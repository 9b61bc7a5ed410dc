package public

import (
	"net/http"

	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/studyabroad/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePublicPage(w, r, pagerender.Page{
		Title:    webtemplates.T(loc, "landing.heading"),
		Fragment: webtemplates.LandingPage(loc),
	})
}
