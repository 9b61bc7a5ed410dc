package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// UniversityRow is one university card.
type UniversityRow struct {
	ID          string
	Name        string
	Country     string
	City        string
	Category    string
	Tuition     string
	Ranking     int
	Shortlisted bool
	Locked      bool
}

// UniversitiesView is the discovery page state.
type UniversitiesView struct {
	Filters  []ChoiceField
	Rows     []UniversityRow
	ReturnTo string
	Degraded bool
}

// ShortlistView is the shortlist page state.
type ShortlistView struct {
	Rows        []UniversityRow
	LockedName  string
	CanLock     bool
	CanGenerate bool
	Degraded    bool
}

// UniversitiesPage renders the filterable discovery list.
func UniversitiesPage(view UniversitiesView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<section id="universities">`)
		w.element("h1", "", T(loc, "universities.heading"))
		w.raw(`<form method="get" class="filters"`)
		w.href("action", routepath.Universities)
		w.raw(`>`)
		for _, field := range view.Filters {
			writeSelect(w, field, T(loc, "universities.filter_any"))
		}
		w.raw(`<button type="submit">`)
		w.text(T(loc, "universities.apply_filters"))
		w.raw(`</button></form>`)
		writeDegraded(w, view.Degraded, loc)
		if len(view.Rows) == 0 && !view.Degraded {
			w.element("p", "empty", T(loc, "universities.empty"))
		}
		w.raw(`<ul class="universities">`)
		for _, row := range view.Rows {
			writeUniversity(w, row, loc, false, view.ReturnTo)
		}
		w.raw(`</ul></section>`)
		return w.err
	})
}

// ShortlistPage renders the shortlisted subset with lock and task generation.
func ShortlistPage(view ShortlistView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<section id="shortlist">`)
		w.element("h1", "", T(loc, "shortlist.heading"))
		writeDegraded(w, view.Degraded, loc)
		if view.LockedName != "" {
			w.raw(`<p id="locked-university">`)
			w.text(T(loc, "shortlist.locked", view.LockedName))
			w.raw(`</p>`)
		}
		if view.CanGenerate {
			w.raw(`<form method="post"`)
			w.href("action", routepath.TasksGenerate)
			w.raw(`><button type="submit">`)
			w.text(T(loc, "shortlist.generate_tasks"))
			w.raw(`</button></form>`)
		}
		if len(view.Rows) == 0 && !view.Degraded {
			w.raw(`<p class="empty">`)
			w.text(T(loc, "shortlist.empty"))
			w.raw(` <a`)
			w.href("href", routepath.Universities)
			w.raw(`>`)
			w.text(T(loc, "shortlist.browse"))
			w.raw(`</a></p>`)
		}
		w.raw(`<ul class="universities">`)
		for _, row := range view.Rows {
			writeUniversity(w, row, loc, view.CanLock, routepath.Shortlist)
		}
		w.raw(`</ul></section>`)
		return w.err
	})
}

func writeUniversity(w *htmlWriter, row UniversityRow, loc Localizer, offerLock bool, returnTo string) {
	w.raw(`<li class="university"`)
	w.attr("data-university-id", row.ID)
	w.raw(`>`)
	w.element("h2", "", row.Name)
	w.raw(`<p class="meta">`)
	w.text(row.City)
	if row.City != "" && row.Country != "" {
		w.raw(`, `)
	}
	w.text(row.Country)
	if row.Category != "" {
		w.raw(` &middot; `)
		w.text(row.Category)
	}
	if row.Tuition != "" {
		w.raw(` &middot; `)
		w.text(row.Tuition)
	}
	if row.Ranking > 0 {
		w.raw(` &middot; #`)
		w.number(row.Ranking)
	}
	w.raw(`</p>`)
	if row.Locked {
		w.element("span", "locked", T(loc, "universities.locked"))
	} else {
		label := "universities.shortlist_add"
		if row.Shortlisted {
			label = "universities.shortlist_remove"
		}
		w.raw(`<form method="post"`)
		w.href("action", routepath.UniversityShortlist(row.ID))
		w.raw(`>`)
		w.hiddenInput("return_to", returnTo)
		w.raw(`<button type="submit">`)
		w.text(T(loc, label))
		w.raw(`</button></form>`)
		if offerLock && row.Shortlisted {
			w.raw(`<form method="post"`)
			w.href("action", routepath.UniversityLock(row.ID))
			w.raw(`><button type="submit">`)
			w.text(T(loc, "universities.lock"))
			w.raw(`</button></form>`)
		}
	}
	w.raw(`</li>`)
}
