package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// ErrorPageTitle returns the browser title for app error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, "error.page.title_not_found")
	}
	return T(loc, "error.page.title_server_error")
}

// ErrorState renders the body of an app error page.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		status := normalizeErrorStatus(statusCode)
		heading, message := "error.page.heading_server_error", "error.page.message_server_error"
		if status == http.StatusNotFound {
			heading, message = "error.page.heading_not_found", "error.page.message_not_found"
		}
		w := newHTMLWriter(out)
		w.raw(`<section id="app-error-state"`)
		w.attr("data-status", http.StatusText(status))
		w.raw(`>`)
		w.element("h1", "", T(loc, heading))
		w.element("p", "", T(loc, message))
		w.raw(`<a`)
		w.href("href", routepath.Dashboard)
		w.raw(`>`)
		w.text(T(loc, "error.page.back_to_dashboard"))
		w.raw(`</a></section>`)
		return w.err
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
