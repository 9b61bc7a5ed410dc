package documents

import (
	"log"
	"net/http"

	"github.com/louisbranch/studyabroad/internal/services/web/notify"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/studyabroad/internal/services/web/platform/i18n"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
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
	data, err := h.service.loadChecklist(h.RequestContext(r))
	if err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		h.WriteError(w, r, err)
		return
	}
	view := webtemplates.DocumentsView{
		Groups:    documentGroups(data.Groups, loc),
		Total:     data.Stats.Total,
		Completed: data.Stats.Completed,
		Pending:   data.Stats.Pending,
		Degraded:  data.Degraded,
	}
	h.WritePage(w, r, webtemplates.T(loc, "documents.heading"), http.StatusOK, webtemplates.DocumentsPage(view, loc))
}

func (h handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	documentID := r.PathValue("documentID")
	err := h.service.updateDocument(h.RequestContext(r), documentID, r.PostFormValue("completed"), r.PostFormValue("notes"))
	if err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		log.Printf("web: document update failed document_id=%s err=%v", documentID, err)
		h.Notices(r).Error(
			webtemplates.T(loc, "notice.action_failed"),
			notify.WithMessage(webi18n.LocalizeError(loc, err)),
		)
	} else {
		h.Notices(r).Success(webtemplates.T(loc, "notice.document_updated"))
	}
	httpx.WriteRedirect(w, r, routepath.Documents)
}

func documentGroups(groups []Group, loc webtemplates.Localizer) []webtemplates.DocumentGroup {
	general := webtemplates.T(loc, "documents.general")
	out := make([]webtemplates.DocumentGroup, 0, len(groups))
	for _, group := range groups {
		viewGroup := webtemplates.DocumentGroup{University: group.University}
		if viewGroup.University == "" {
			viewGroup.University = general
		}
		for _, category := range group.Categories {
			viewCategory := webtemplates.DocumentCategory{Name: category.Name}
			if viewCategory.Name == "" {
				viewCategory.Name = general
			}
			for _, doc := range category.Documents {
				viewCategory.Rows = append(viewCategory.Rows, webtemplates.DocumentRow{
					ID:        doc.ID,
					Name:      doc.Name,
					Notes:     doc.Notes,
					Completed: doc.Completed,
				})
			}
			viewGroup.Categories = append(viewGroup.Categories, viewCategory)
		}
		out = append(out, viewGroup)
	}
	return out
}
