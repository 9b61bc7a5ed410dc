// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	module "github.com/louisbranch/studyabroad/internal/services/web/module"
	flashnotice "github.com/louisbranch/studyabroad/internal/services/web/platform/flash"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/studyabroad/internal/services/web/platform/i18n"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/requestmeta"
	webtemplates "github.com/louisbranch/studyabroad/internal/services/web/templates"
)

// RequestResolver resolves viewer and language state from a request.
type RequestResolver interface {
	ResolveRequestViewer(r *http.Request) module.Viewer
	ResolveRequestLanguage(r *http.Request) string
	SchemePolicy() requestmeta.SchemePolicy
}

// Page describes one page response for both full-page and HTMX flows.
type Page struct {
	Title        string
	StatusCode   int
	Fragment     templ.Component
	RefreshAfter time.Duration
	RefreshURL   string
}

// WriteAppPage writes a page inside the authenticated app shell. HTMX
// requests receive only the main content.
func WriteAppPage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page Page) error {
	return write(w, r, resolver, page, true)
}

// WritePublicPage writes a page inside the signed-out shell.
func WritePublicPage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page Page) error {
	return write(w, r, resolver, page, false)
}

// WriteFragment writes a bare component, used for HTMX partial swaps.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil || fragment == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	return httpx.WriteHTML(w, statusCode, buf.String())
}

func write(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page Page, app bool) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	var resolveLanguage func(*http.Request) string
	var policy requestmeta.SchemePolicy
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
		policy = resolver.SchemePolicy()
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.MainContent().Render(ctx, &buf); err != nil {
			return err
		}
		return httpx.WriteHTML(w, statusCode, buf.String())
	}

	opts := webtemplates.LayoutOptions{
		Title:        page.Title,
		Lang:         lang,
		Loc:          loc,
		Toast:        takeToast(w, r, loc, policy),
		RefreshAfter: page.RefreshAfter,
		RefreshURL:   page.RefreshURL,
	}
	layout := webtemplates.PublicLayout(opts)
	if app {
		if resolver != nil {
			opts.Viewer = resolver.ResolveRequestViewer(r)
		}
		layout = webtemplates.AppLayout(opts)
	}
	if err := layout.Render(ctx, &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.String())
}

func takeToast(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, policy requestmeta.SchemePolicy) *webtemplates.Toast {
	notice, ok := flashnotice.Take(w, r, policy)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(loc.Sprintf(notice.Key))
	if message == "" {
		return nil
	}
	return &webtemplates.Toast{Kind: string(notice.Kind), Message: message}
}
