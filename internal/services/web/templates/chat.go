package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// ChatTurn is one message of the counselling conversation.
type ChatTurn struct {
	Role    string
	Content string
}

// ChatView is the counselling page state.
type ChatView struct {
	Stage        int
	StageLabel   string
	Turns        []ChatTurn
	ErrorMessage string
}

// ChatPage renders the conversation and the message form.
func ChatPage(view ChatView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<section id="chat">`)
		w.element("h1", "", T(loc, "chat.heading"))
		w.render(ctx, ChatStage(view.Stage, view.StageLabel, loc))
		w.raw(`<ol id="chat-log">`)
		for _, turn := range view.Turns {
			w.render(ctx, ChatMessage(turn))
		}
		w.raw(`</ol>`)
		writeFormError(w, view.ErrorMessage)
		w.raw(`<form method="post"`)
		w.href("action", routepath.ChatMessages)
		w.attr("hx-post", routepath.ChatMessages)
		w.attr("hx-target", "#chat-log")
		w.attr("hx-swap", "beforeend")
		w.raw(`><textarea name="message" required`)
		w.attr("placeholder", T(loc, "chat.placeholder"))
		w.raw(`></textarea><button type="submit">`)
		w.text(T(loc, "chat.send"))
		w.raw(`</button></form></section>`)
		return w.err
	})
}

// ChatStage renders the stage marker.
func ChatStage(stage int, label string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		if stage <= 0 {
			return nil
		}
		w := newHTMLWriter(out)
		w.raw(`<p id="chat-stage"`)
		w.attr("data-stage", itoa(stage))
		w.raw(`>`)
		w.text(T(loc, "dashboard.stage", stage, label))
		w.raw(`</p>`)
		return w.err
	})
}

// ChatMessage renders one turn.
func ChatMessage(turn ChatTurn) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<li`)
		w.attr("class", "chat-"+turn.Role)
		w.raw(`>`)
		w.text(turn.Content)
		w.raw(`</li>`)
		return w.err
	})
}

// ChatTurns renders consecutive turns. It is the HTMX append target after a
// message is sent.
func ChatTurns(turns []ChatTurn) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		for _, turn := range turns {
			w.render(ctx, ChatMessage(turn))
		}
		return w.err
	})
}
