package templates

// Choice is one selectable option.
type Choice struct {
	Value    string
	Label    string
	Selected bool
}

// ChoiceField is a labeled single-choice field.
type ChoiceField struct {
	Name    string
	Label   string
	Choices []Choice
}

func writeSelect(w *htmlWriter, field ChoiceField, placeholder string) {
	w.raw(`<label>`)
	w.text(field.Label)
	w.raw(`<select`)
	w.attr("name", field.Name)
	w.raw(`>`)
	if placeholder != "" {
		w.raw(`<option value="">`)
		w.text(placeholder)
		w.raw(`</option>`)
	}
	for _, choice := range field.Choices {
		w.raw(`<option`)
		w.attr("value", choice.Value)
		w.boolAttr("selected", choice.Selected)
		w.raw(`>`)
		w.text(choice.Label)
		w.raw(`</option>`)
	}
	w.raw(`</select></label>`)
}

func writeCheckboxes(w *htmlWriter, field ChoiceField) {
	w.raw(`<fieldset><legend>`)
	w.text(field.Label)
	w.raw(`</legend>`)
	for _, choice := range field.Choices {
		w.raw(`<label><input type="checkbox"`)
		w.attr("name", field.Name)
		w.attr("value", choice.Value)
		w.boolAttr("checked", choice.Selected)
		w.raw(`>`)
		w.text(choice.Label)
		w.raw(`</label>`)
	}
	w.raw(`</fieldset>`)
}

func writeDegraded(w *htmlWriter, degraded bool, loc Localizer) {
	if !degraded {
		return
	}
	w.raw(`<p class="degraded" role="status">`)
	w.text(T(loc, "page.degraded"))
	w.raw(`</p>`)
}
