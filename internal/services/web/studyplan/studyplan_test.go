package studyplan

import (
	"net/url"
	"slices"
	"testing"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
)

func TestParseOnboardingScenario(t *testing.T) {
	t.Parallel()

	answers, err := Parse(url.Values{
		FieldAcademicBackground: {"masters"},
		FieldStudyGoals:         {"phd"},
		FieldBudget:             {"20000-40000"},
		FieldPreferredCountries: {"usa", "UK", "USA"},
		FieldExamReadiness:      {"completed"},
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if answers.AcademicBackground != "masters" || answers.StudyGoals != "phd" || answers.Budget != "20000-40000" || answers.ExamReadiness != "completed" {
		t.Fatalf("answers = %+v", answers)
	}
	if !slices.Equal(answers.PreferredCountries, []string{"USA", "UK"}) {
		t.Fatalf("PreferredCountries = %v, want [USA UK]", answers.PreferredCountries)
	}
	if err := RequireComplete(answers); err != nil {
		t.Fatalf("RequireComplete() error = %v", err)
	}
}

func TestParseRejectsUnknownOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values url.Values
	}{
		{name: "option", values: url.Values{FieldBudget: {"a lot"}}},
		{name: "country", values: url.Values{FieldPreferredCountries: {"Atlantis"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Parse(tc.values); !apperrors.IsKind(err, apperrors.KindInvalidInput) {
				t.Fatalf("Parse() error = %v, want invalid input", err)
			}
		})
	}
}

func TestRequireCompleteFlagsMissingAnswers(t *testing.T) {
	t.Parallel()

	err := RequireComplete(Answers{AcademicBackground: "masters"})
	if got := apperrors.LocalizationKey(err); got != ErrKeyIncomplete {
		t.Fatalf("LocalizationKey() = %q, want %q", got, ErrKeyIncomplete)
	}
}

func TestAnswersValueAndEmpty(t *testing.T) {
	t.Parallel()

	if !(Answers{}).Empty() {
		t.Fatalf("zero answers should be empty")
	}
	answers := Answers{CurrentStage: "applying"}
	if answers.Empty() || answers.Value(FieldCurrentStage) != "applying" || answers.Value("unknown") != "" {
		t.Fatalf("answers = %+v", answers)
	}
}

func TestStageKey(t *testing.T) {
	t.Parallel()

	tests := map[int]string{0: "", 1: "stage.1", 5: "stage.5", 6: ""}
	for stage, want := range tests {
		if got := StageKey(stage); got != want {
			t.Fatalf("StageKey(%d) = %q, want %q", stage, got, want)
		}
	}
}

func TestLocalizationKeys(t *testing.T) {
	t.Parallel()

	q := Questions()[0]
	if q.LabelKey() != "plan.field.academic_background" || q.OptionKey("masters") != "plan.academic_background.masters" {
		t.Fatalf("keys = %q %q", q.LabelKey(), q.OptionKey("masters"))
	}
	if CountryKey(" UK ") != "country.uk" {
		t.Fatalf("CountryKey() = %q", CountryKey(" UK "))
	}
}
