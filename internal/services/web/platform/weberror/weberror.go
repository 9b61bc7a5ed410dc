// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log"
	"net/http"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/studyabroad/internal/services/web/platform/i18n"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/studyabroad/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// WriteAppError writes a localized error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	var resolveLanguage func(*http.Request) string
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, _ := webi18n.ResolveLocalizer(nil, r, resolveLanguage)
	if httpx.WantsJSON(r) {
		_ = httpx.WriteJSONError(w, statusCode, webtemplates.ErrorPageTitle(statusCode, loc))
		return
	}
	if err := pagerender.WriteAppPage(w, r, resolver, pagerender.Page{
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.ErrorState(statusCode, loc),
	}); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a user-safe response for err. Results for a
// browser that already went away are dropped.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolver pagerender.RequestResolver) {
	if w == nil || err == nil {
		return
	}
	if r != nil && httpx.ClientGone(r.Context(), err) {
		log.Printf("web: request abandoned method=%s path=%s", r.Method, r.URL.Path)
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		if statusCode >= http.StatusInternalServerError && r != nil {
			log.Printf("web: request failed method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		}
		WriteAppError(w, r, statusCode, resolver)
		return
	}
	var resolveLanguage func(*http.Request) string
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, _ := webi18n.ResolveLocalizer(nil, r, resolveLanguage)
	message := webi18n.LocalizeError(loc, err)
	if httpx.WantsJSON(r) {
		_ = httpx.WriteJSONError(w, statusCode, message)
		return
	}
	http.Error(w, message, statusCode)
}
