package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// DocumentRow is one required application document.
type DocumentRow struct {
	ID        string
	Name      string
	Notes     string
	Completed bool
}

// DocumentCategory groups documents of one category.
type DocumentCategory struct {
	Name string
	Rows []DocumentRow
}

// DocumentGroup groups document categories for one university.
type DocumentGroup struct {
	University string
	Categories []DocumentCategory
}

// DocumentsView is the documents page state.
type DocumentsView struct {
	Groups    []DocumentGroup
	Total     int
	Completed int
	Pending   int
	Degraded  bool
}

// DocumentsPage renders documents grouped by university and category.
func DocumentsPage(view DocumentsView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<section id="documents">`)
		w.element("h1", "", T(loc, "documents.heading"))
		writeDegraded(w, view.Degraded, loc)
		w.raw(`<p class="summary">`)
		w.text(T(loc, "documents.summary", view.Completed, view.Total))
		w.raw(`</p>`)
		if len(view.Groups) == 0 && !view.Degraded {
			w.element("p", "empty", T(loc, "documents.empty"))
		}
		for _, group := range view.Groups {
			w.raw(`<section class="document-group"`)
			w.attr("data-university", group.University)
			w.raw(`>`)
			w.element("h2", "", group.University)
			for _, category := range group.Categories {
				w.element("h3", "", category.Name)
				w.raw(`<ul>`)
				for _, row := range category.Rows {
					writeDocument(w, row, loc)
				}
				w.raw(`</ul>`)
			}
			w.raw(`</section>`)
		}
		w.raw(`</section>`)
		return w.err
	})
}

func writeDocument(w *htmlWriter, row DocumentRow, loc Localizer) {
	class := "document"
	if row.Completed {
		class += " done"
	}
	w.raw(`<li`)
	w.attr("id", "document-"+row.ID)
	w.attr("class", class)
	w.attr("data-completed", boolString(row.Completed))
	w.raw(`>`)
	w.element("strong", "", row.Name)
	w.raw(`<form method="post"`)
	w.href("action", routepath.DocumentToggle(row.ID))
	w.raw(`>`)
	w.hiddenInput("completed", boolString(!row.Completed))
	w.raw(`<input type="text" name="notes"`)
	w.attr("value", row.Notes)
	w.attr("placeholder", T(loc, "documents.notes"))
	w.raw(`><button type="submit">`)
	label := "documents.mark_done"
	if row.Completed {
		label = "documents.mark_pending"
	}
	w.text(T(loc, label))
	w.raw(`</button></form></li>`)
}
