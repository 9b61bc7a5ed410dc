package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// AuthFormState captures the values and inline error of a login or
// registration form.
type AuthFormState struct {
	Name         string
	Email        string
	ErrorMessage string
}

// LandingPage renders the public landing page.
func LandingPage(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<section id="landing">`)
		w.element("h1", "", T(loc, "landing.heading"))
		w.element("p", "", T(loc, "landing.tagline"))
		w.raw(`<p><a`)
		w.href("href", routepath.Register)
		w.raw(` class="cta">`)
		w.text(T(loc, "landing.get_started"))
		w.raw(`</a> <a`)
		w.href("href", routepath.Login)
		w.raw(`>`)
		w.text(T(loc, "landing.sign_in"))
		w.raw(`</a></p></section>`)
		return w.err
	})
}

// LoginPage renders the sign-in form.
func LoginPage(state AuthFormState, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<section id="login">`)
		w.element("h1", "", T(loc, "login.heading"))
		writeFormError(w, state.ErrorMessage)
		w.raw(`<form method="post"`)
		w.href("action", routepath.Login)
		w.raw(`>`)
		writeInput(w, "email", "email", T(loc, "form.email"), state.Email, true)
		writeInput(w, "password", "password", T(loc, "form.password"), "", true)
		w.raw(`<button type="submit">`)
		w.text(T(loc, "login.submit"))
		w.raw(`</button></form><p><a`)
		w.href("href", routepath.Register)
		w.raw(`>`)
		w.text(T(loc, "login.register_link"))
		w.raw(`</a></p></section>`)
		return w.err
	})
}

// RegisterPage renders the account creation form.
func RegisterPage(state AuthFormState, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<section id="register">`)
		w.element("h1", "", T(loc, "register.heading"))
		writeFormError(w, state.ErrorMessage)
		w.raw(`<form method="post"`)
		w.href("action", routepath.Register)
		w.raw(`>`)
		writeInput(w, "text", "name", T(loc, "form.name"), state.Name, true)
		writeInput(w, "email", "email", T(loc, "form.email"), state.Email, true)
		writeInput(w, "password", "password", T(loc, "form.password"), "", true)
		w.raw(`<button type="submit">`)
		w.text(T(loc, "register.submit"))
		w.raw(`</button></form><p><a`)
		w.href("href", routepath.Login)
		w.raw(`>`)
		w.text(T(loc, "register.login_link"))
		w.raw(`</a></p></section>`)
		return w.err
	})
}

// GoodbyePage confirms account deletion before returning to the landing page.
func GoodbyePage(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<section id="goodbye">`)
		w.element("h1", "", T(loc, "goodbye.heading"))
		w.element("p", "", T(loc, "goodbye.message"))
		w.raw(`<a`)
		w.href("href", routepath.Root)
		w.raw(`>`)
		w.text(T(loc, "goodbye.home_link"))
		w.raw(`</a></section>`)
		return w.err
	})
}

func writeFormError(w *htmlWriter, message string) {
	if message == "" {
		return
	}
	w.raw(`<p class="form-error" role="alert">`)
	w.text(message)
	w.raw(`</p>`)
}

func writeInput(w *htmlWriter, kind, name, label, value string, required bool) {
	w.raw(`<label>`)
	w.text(label)
	w.raw(`<input`)
	w.attr("type", kind)
	w.attr("name", name)
	if value != "" {
		w.attr("value", value)
	}
	w.boolAttr("required", required)
	w.raw(`></label>`)
}
