package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// ProfileView is the profile page state.
type ProfileView struct {
	Name         string
	Email        string
	Preferences  []ChoiceField
	Countries    ChoiceField
	IdentityErr  string
	DeleteErr    string
	DeletePhrase string
	Degraded     bool
}

// ProfilePage renders identity, preferences, and the account deletion form.
func ProfilePage(view ProfileView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<section id="profile">`)
		w.element("h1", "", T(loc, "profile.heading"))
		writeDegraded(w, view.Degraded, loc)

		w.raw(`<form method="post" id="profile-identity"`)
		w.href("action", routepath.ProfileIdentity)
		w.raw(`>`)
		w.element("h2", "", T(loc, "profile.identity"))
		writeFormError(w, view.IdentityErr)
		writeInput(w, "text", "name", T(loc, "form.name"), view.Name, true)
		writeInput(w, "email", "email", T(loc, "form.email"), view.Email, true)
		w.raw(`<button type="submit">`)
		w.text(T(loc, "profile.save"))
		w.raw(`</button></form>`)

		w.raw(`<form method="post" id="profile-preferences"`)
		w.href("action", routepath.ProfilePreferences)
		w.raw(`>`)
		w.element("h2", "", T(loc, "profile.preferences"))
		for _, field := range view.Preferences {
			writeSelect(w, field, T(loc, "form.choose"))
		}
		writeCheckboxes(w, view.Countries)
		w.raw(`<button type="submit">`)
		w.text(T(loc, "profile.save"))
		w.raw(`</button></form>`)

		w.raw(`<form method="post" id="profile-delete" class="danger"`)
		w.href("action", routepath.ProfileDelete)
		w.raw(`>`)
		w.element("h2", "", T(loc, "profile.delete_heading"))
		w.element("p", "", T(loc, "profile.delete_warning", view.DeletePhrase))
		writeFormError(w, view.DeleteErr)
		writeInput(w, "text", "confirmation", T(loc, "profile.delete_confirmation"), "", true)
		w.raw(`<button type="submit">`)
		w.text(T(loc, "profile.delete_submit"))
		w.raw(`</button></form></section>`)
		return w.err
	})
}
