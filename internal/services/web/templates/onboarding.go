package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// OnboardingView is the questionnaire form state.
type OnboardingView struct {
	Fields       []ChoiceField
	Countries    ChoiceField
	ErrorMessage string
}

// OnboardingPage renders the onboarding questionnaire.
func OnboardingPage(view OnboardingView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<section id="onboarding">`)
		w.element("h1", "", T(loc, "onboarding.heading"))
		w.element("p", "", T(loc, "onboarding.intro"))
		writeFormError(w, view.ErrorMessage)
		w.raw(`<form method="post"`)
		w.href("action", routepath.Onboarding)
		w.raw(`>`)
		for _, field := range view.Fields {
			writeSelect(w, field, T(loc, "form.choose"))
		}
		writeCheckboxes(w, view.Countries)
		w.raw(`<button type="submit">`)
		w.text(T(loc, "onboarding.submit"))
		w.raw(`</button></form></section>`)
		return w.err
	})
}
