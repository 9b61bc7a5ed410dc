package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// DashboardView is the aggregate progress summary.
type DashboardView struct {
	Name             string
	ShortlistedCount int
	PendingTasks     int
	CompletedTasks   int
	LockedUniversity string
	Stage            int
	StageLabel       string
	Degraded         bool
}

// DashboardPage renders the dashboard summary.
func DashboardPage(view DashboardView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<section id="dashboard">`)
		w.element("h1", "", T(loc, "dashboard.heading", view.Name))
		writeDegraded(w, view.Degraded, loc)
		if view.Stage > 0 {
			w.raw(`<p class="stage"`)
			w.attr("data-stage", itoa(view.Stage))
			w.raw(`>`)
			w.text(T(loc, "dashboard.stage", view.Stage, view.StageLabel))
			w.raw(`</p>`)
		}
		w.raw(`<dl class="stats">`)
		writeStat(w, "shortlisted", T(loc, "dashboard.shortlisted"), view.ShortlistedCount)
		writeStat(w, "pending-tasks", T(loc, "dashboard.pending_tasks"), view.PendingTasks)
		writeStat(w, "completed-tasks", T(loc, "dashboard.completed_tasks"), view.CompletedTasks)
		w.raw(`</dl>`)
		if view.LockedUniversity != "" {
			w.raw(`<p id="locked-university">`)
			w.text(T(loc, "dashboard.locked", view.LockedUniversity))
			w.raw(`</p>`)
		} else {
			w.raw(`<p><a`)
			w.href("href", routepath.Universities)
			w.raw(`>`)
			w.text(T(loc, "dashboard.explore"))
			w.raw(`</a></p>`)
		}
		w.raw(`</section>`)
		return w.err
	})
}

func writeStat(w *htmlWriter, id, label string, value int) {
	w.raw(`<div`)
	w.attr("id", "stat-"+id)
	w.raw(`><dt>`)
	w.text(label)
	w.raw(`</dt><dd>`)
	w.number(value)
	w.raw(`</dd></div>`)
}
