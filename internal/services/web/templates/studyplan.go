package templates

import "github.com/louisbranch/studyabroad/internal/services/web/studyplan"

// StudyPlanFields maps questionnaire answers to form fields with the
// current answers selected.
func StudyPlanFields(answers studyplan.Answers, loc Localizer) ([]ChoiceField, ChoiceField) {
	questions := studyplan.Questions()
	fields := make([]ChoiceField, 0, len(questions))
	for _, q := range questions {
		selected := answers.Value(q.Field)
		field := ChoiceField{Name: q.Field, Label: T(loc, q.LabelKey())}
		for _, option := range q.Options {
			field.Choices = append(field.Choices, Choice{
				Value:    option,
				Label:    T(loc, q.OptionKey(option)),
				Selected: option == selected,
			})
		}
		fields = append(fields, field)
	}

	countries := ChoiceField{
		Name:  studyplan.FieldPreferredCountries,
		Label: T(loc, "plan.field."+studyplan.FieldPreferredCountries),
	}
	for _, code := range studyplan.Countries() {
		selected := false
		for _, chosen := range answers.PreferredCountries {
			if chosen == code {
				selected = true
				break
			}
		}
		countries.Choices = append(countries.Choices, Choice{Value: code, Label: T(loc, studyplan.CountryKey(code)), Selected: selected})
	}
	return fields, countries
}
