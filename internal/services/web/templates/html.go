// Package templates renders web pages as templ components.
package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can emit
// markup without checking every call.
type htmlWriter struct {
	out io.Writer
	err error
}

func newHTMLWriter(out io.Writer) *htmlWriter {
	return &htmlWriter{out: out}
}

func (w *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.out, part)
	}
}

func (w *htmlWriter) text(value string) {
	w.raw(templ.EscapeString(value))
}

func (w *htmlWriter) attr(name, value string) {
	w.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (w *htmlWriter) href(name, value string) {
	w.attr(name, string(templ.URL(value)))
}

func (w *htmlWriter) boolAttr(name string, on bool) {
	if on {
		w.raw(" ", name)
	}
}

func (w *htmlWriter) number(value int) {
	w.raw(itoa(value))
}

// element writes <tag attrs>text</tag> with escaped text.
func (w *htmlWriter) element(tag, class, value string) {
	w.raw("<", tag)
	if class != "" {
		w.attr("class", class)
	}
	w.raw(">")
	w.text(value)
	w.raw("</", tag, ">")
}

func (w *htmlWriter) render(ctx context.Context, component templ.Component) {
	if w.err != nil || component == nil {
		return
	}
	w.err = component.Render(ctx, w.out)
}

func (w *htmlWriter) children(ctx context.Context) {
	w.render(ctx, templ.GetChildren(ctx))
}

// hiddenInput writes a hidden form field.
func (w *htmlWriter) hiddenInput(name, value string) {
	w.raw(`<input type="hidden"`)
	w.attr("name", name)
	w.attr("value", value)
	w.raw(">")
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
