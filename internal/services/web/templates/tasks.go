package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// TaskRow is one application task.
type TaskRow struct {
	ID          string
	Title       string
	Description string
	Category    string
	DueDate     string
	Completed   bool
}

// TasksView is the task list state.
type TasksView struct {
	Rows        []TaskRow
	Pending     int
	Completed   int
	CanGenerate bool
	Degraded    bool
}

// TasksPage renders the task list.
func TasksPage(view TasksView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<section id="tasks">`)
		w.element("h1", "", T(loc, "tasks.heading"))
		writeDegraded(w, view.Degraded, loc)
		w.raw(`<p class="summary">`)
		w.text(T(loc, "tasks.summary", view.Pending, view.Completed))
		w.raw(`</p>`)
		if view.CanGenerate {
			w.raw(`<form method="post"`)
			w.href("action", routepath.TasksGenerate)
			w.raw(`><button type="submit">`)
			w.text(T(loc, "tasks.generate"))
			w.raw(`</button></form>`)
		}
		if len(view.Rows) == 0 && !view.Degraded {
			w.element("p", "empty", T(loc, "tasks.empty"))
		}
		w.raw(`<ul id="task-list">`)
		for _, row := range view.Rows {
			w.render(ctx, TaskItem(row, loc))
		}
		w.raw(`</ul></section>`)
		return w.err
	})
}

// TaskItem renders one task with its completion toggle. It is also the
// HTMX swap target after a toggle.
func TaskItem(row TaskRow, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		class := "task"
		if row.Completed {
			class += " done"
		}
		w.raw(`<li`)
		w.attr("id", "task-"+row.ID)
		w.attr("class", class)
		w.attr("data-completed", boolString(row.Completed))
		w.raw(`>`)
		w.element("strong", "", row.Title)
		if row.Description != "" {
			w.element("p", "", row.Description)
		}
		if row.Category != "" || row.DueDate != "" {
			w.raw(`<p class="meta">`)
			w.text(row.Category)
			if row.DueDate != "" {
				w.raw(` &middot; `)
				w.text(T(loc, "tasks.due", row.DueDate))
			}
			w.raw(`</p>`)
		}
		label := "tasks.mark_done"
		if row.Completed {
			label = "tasks.mark_pending"
		}
		w.raw(`<form method="post"`)
		w.href("action", routepath.TaskToggle(row.ID))
		w.attr("hx-post", routepath.TaskToggle(row.ID))
		w.attr("hx-target", "#task-"+row.ID)
		w.attr("hx-swap", "outerHTML")
		w.raw(`><button type="submit">`)
		w.text(T(loc, label))
		w.raw(`</button></form></li>`)
		return w.err
	})
}

func boolString(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
