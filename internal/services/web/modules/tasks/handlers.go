package tasks

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
	var view webtemplates.TasksView
	items, err := h.service.listTasks(h.RequestContext(r), h.Session(r))
	if err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		log.Printf("web: tasks list failed err=%v", err)
		view.Degraded = true
	}
	view.Rows = taskRows(items)
	view.Pending, view.Completed = countTasks(items)
	view.CanGenerate = len(items) == 0 && !view.Degraded
	h.WritePage(w, r, webtemplates.T(loc, "tasks.heading"), http.StatusOK, webtemplates.TasksPage(view, loc))
}

func (h handlers) handleToggle(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	task, err := h.service.toggleTask(h.RequestContext(r), h.Session(r), r.PathValue("taskID"))
	if err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		log.Printf("web: task toggle failed task_id=%s err=%v", r.PathValue("taskID"), err)
		h.Notices(r).Error(
			webtemplates.T(loc, "notice.task_update_failed"),
			notify.WithMessage(webi18n.LocalizeError(loc, err)),
		)
	}
	if httpx.IsHTMXRequest(r) && task.ID != "" {
		h.WriteFragment(w, r, http.StatusOK, webtemplates.TaskItem(taskRow(task), loc))
		return
	}
	httpx.WriteRedirect(w, r, routepath.Tasks)
}

func (h handlers) handleGenerate(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	if err := h.service.generateTasks(h.RequestContext(r), h.Session(r)); err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		log.Printf("web: task generation failed err=%v", err)
		h.Notices(r).Error(
			webtemplates.T(loc, "notice.action_failed"),
			notify.WithMessage(webi18n.LocalizeError(loc, err)),
		)
		httpx.WriteRedirect(w, r, routepath.Shortlist)
		return
	}
	h.Notices(r).Success(webtemplates.T(loc, "notice.tasks_generated"))
	httpx.WriteRedirect(w, r, routepath.Tasks)
}

func taskRows(items []Task) []webtemplates.TaskRow {
	rows := make([]webtemplates.TaskRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, taskRow(item))
	}
	return rows
}

func taskRow(task Task) webtemplates.TaskRow {
	return webtemplates.TaskRow{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Category:    task.Category,
		DueDate:     task.DueDate,
		Completed:   task.Completed,
	}
}
