package templates

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	module "github.com/louisbranch/studyabroad/internal/services/web/module"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// Toast is a one-time notice rendered at the top of a page.
type Toast struct {
	Kind    string
	Message string
}

// LayoutOptions configures the document shell.
type LayoutOptions struct {
	Title  string
	Lang   string
	Loc    Localizer
	Viewer module.Viewer
	Toast  *Toast
	// RefreshAfter, when positive, reloads RefreshURL after the delay.
	RefreshAfter time.Duration
	RefreshURL   string
}

// AppLayout renders the authenticated app shell around the children.
func AppLayout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		writeHead(w, opts)
		w.raw(`<body>`)
		writeNav(w, opts)
		writeToast(w, opts.Toast)
		w.render(ctx, NotificationTray(opts.Viewer.Notifications, opts.Loc))
		w.raw(`<main id="main" class="app-main">`)
		w.children(ctx)
		w.raw(`</main></body></html>`)
		return w.err
	})
}

// PublicLayout renders the signed-out document shell around the children.
func PublicLayout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		writeHead(w, opts)
		w.raw(`<body class="public">`)
		writeToast(w, opts.Toast)
		w.raw(`<main id="main" class="app-main">`)
		w.children(ctx)
		w.raw(`</main></body></html>`)
		return w.err
	})
}

// MainContent renders only the main region, for HTMX swaps.
func MainContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<div id="main-content">`)
		w.children(ctx)
		w.raw(`</div>`)
		return w.err
	})
}

func writeHead(w *htmlWriter, opts LayoutOptions) {
	lang := opts.Lang
	if lang == "" {
		lang = "en-US"
	}
	w.raw(`<!doctype html><html`)
	w.attr("lang", lang)
	w.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
	if opts.RefreshAfter > 0 {
		target := opts.RefreshURL
		if target == "" {
			target = routepath.Root
		}
		seconds := int(opts.RefreshAfter.Round(time.Second) / time.Second)
		if seconds < 1 {
			seconds = 1
		}
		w.raw(`<meta http-equiv="refresh"`)
		w.attr("content", strconv.Itoa(seconds)+"; url="+string(templ.URL(target)))
		w.raw(`>`)
	}
	w.raw(`<title>`)
	w.text(pageTitle(opts))
	w.raw(`</title><link rel="stylesheet" href="/static/app.css"><script src="/static/app.js" defer></script></head>`)
}

func pageTitle(opts LayoutOptions) string {
	app := T(opts.Loc, "app.name")
	if opts.Title == "" {
		return app
	}
	return opts.Title + " | " + app
}

func writeNav(w *htmlWriter, opts LayoutOptions) {
	viewer := opts.Viewer
	w.raw(`<nav class="app-nav" id="app-nav">`)
	for _, item := range viewer.Navigation {
		w.raw(`<a`)
		w.href("href", item.Path)
		w.attr("data-icon", item.IconKey)
		if routepath.Section(viewer.CurrentPath) == item.Path {
			w.attr("class", "active")
		}
		w.raw(`>`)
		w.text(T(opts.Loc, item.Name))
		w.raw(`</a>`)
	}
	if viewer.SignedIn() {
		w.raw(`<span class="viewer">`)
		w.text(viewer.DisplayName)
		if viewer.BadgeColor != "" {
			w.raw(` `)
			w.element("span", "badge-"+viewer.BadgeColor, T(opts.Loc, "role.user"))
		}
		w.raw(`</span><form method="post"`)
		w.href("action", routepath.Logout)
		w.raw(`><button type="submit">`)
		w.text(T(opts.Loc, "nav.sign_out"))
		w.raw(`</button></form>`)
	}
	w.raw(`</nav>`)
}

func writeToast(w *htmlWriter, toast *Toast) {
	if toast == nil || toast.Message == "" {
		return
	}
	w.raw(`<div role="status"`)
	w.attr("class", "notice notice-"+toast.Kind)
	w.raw(`>`)
	w.text(toast.Message)
	w.raw(`</div>`)
}

// LoadingPage is the placeholder shown while the session check is pending.
// It reloads path so the check result is applied once available.
func LoadingPage(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<section id="session-loading" aria-busy="true">`)
		w.element("p", "", T(loc, "session.loading"))
		w.raw(`</section>`)
		return w.err
	})
}
