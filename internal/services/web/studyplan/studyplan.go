// Package studyplan defines the study preferences questionnaire shared by
// onboarding and the profile page.
package studyplan

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
)

// Form field names.
const (
	FieldAcademicBackground = "academic_background"
	FieldStudyGoals         = "study_goals"
	FieldBudget             = "budget"
	FieldExamReadiness      = "exam_readiness"
	FieldCurrentStage       = "current_stage"
	FieldPreferredCountries = "preferred_countries"
)

// ErrKeyIncomplete is the localization key for a partially answered
// onboarding questionnaire.
const ErrKeyIncomplete = "onboarding.incomplete"

// Question is one single-choice question.
type Question struct {
	Field   string
	Options []string
}

// LabelKey returns the localization key of the question label.
func (q Question) LabelKey() string {
	return "plan.field." + q.Field
}

// OptionKey returns the localization key of one option label.
func (q Question) OptionKey(value string) string {
	return "plan." + q.Field + "." + value
}

var questions = []Question{
	{Field: FieldAcademicBackground, Options: []string{"high_school", "bachelors", "masters", "phd"}},
	{Field: FieldStudyGoals, Options: []string{"bachelors", "masters", "mba", "phd"}},
	{Field: FieldBudget, Options: []string{"0-20000", "20000-40000", "40000-60000", "60000+"}},
	{Field: FieldExamReadiness, Options: []string{"not_started", "preparing", "scheduled", "completed"}},
	{Field: FieldCurrentStage, Options: []string{"exploring", "shortlisting", "applying"}},
}

var countries = []string{"USA", "UK", "Canada", "Australia", "Germany", "Ireland"}

// Questions returns the single-choice questions in display order.
func Questions() []Question {
	return slices.Clone(questions)
}

// Countries returns the selectable destination countries.
func Countries() []string {
	return slices.Clone(countries)
}

// CountryKey returns the localization key for a country code.
func CountryKey(code string) string {
	return "country." + strings.ToLower(strings.TrimSpace(code))
}

// Answers is the questionnaire payload sent to the backend.
type Answers struct {
	AcademicBackground string   `json:"academicBackground,omitempty"`
	StudyGoals         string   `json:"studyGoals,omitempty"`
	Budget             string   `json:"budget,omitempty"`
	ExamReadiness      string   `json:"examReadiness,omitempty"`
	CurrentStage       string   `json:"currentStage,omitempty"`
	PreferredCountries []string `json:"preferredCountries,omitempty"`
}

// Value returns the answer stored for a single-choice field.
func (a Answers) Value(field string) string {
	switch field {
	case FieldAcademicBackground:
		return a.AcademicBackground
	case FieldStudyGoals:
		return a.StudyGoals
	case FieldBudget:
		return a.Budget
	case FieldExamReadiness:
		return a.ExamReadiness
	case FieldCurrentStage:
		return a.CurrentStage
	default:
		return ""
	}
}

func (a *Answers) set(field, value string) {
	switch field {
	case FieldAcademicBackground:
		a.AcademicBackground = value
	case FieldStudyGoals:
		a.StudyGoals = value
	case FieldBudget:
		a.Budget = value
	case FieldExamReadiness:
		a.ExamReadiness = value
	case FieldCurrentStage:
		a.CurrentStage = value
	}
}

// Empty reports whether no answer was given.
func (a Answers) Empty() bool {
	return a.AcademicBackground == "" && a.StudyGoals == "" && a.Budget == "" &&
		a.ExamReadiness == "" && a.CurrentStage == "" && len(a.PreferredCountries) == 0
}

// Parse reads answers from submitted form values. Unknown option values are
// rejected; blank fields are left empty.
func Parse(values url.Values) (Answers, error) {
	var answers Answers
	for _, q := range questions {
		value := strings.TrimSpace(values.Get(q.Field))
		if value == "" {
			continue
		}
		if !slices.Contains(q.Options, value) {
			return Answers{}, apperrors.E(apperrors.KindInvalidInput, "unknown "+q.Field+" option")
		}
		answers.set(q.Field, value)
	}
	for _, raw := range values[FieldPreferredCountries] {
		code := canonicalCountry(raw)
		if code == "" {
			return Answers{}, apperrors.E(apperrors.KindInvalidInput, "unknown preferred country")
		}
		if !slices.Contains(answers.PreferredCountries, code) {
			answers.PreferredCountries = append(answers.PreferredCountries, code)
		}
	}
	return answers, nil
}

// RequireComplete rejects answers missing any onboarding question. The
// current stage is optional.
func RequireComplete(answers Answers) error {
	if answers.AcademicBackground == "" || answers.StudyGoals == "" || answers.Budget == "" ||
		answers.ExamReadiness == "" || len(answers.PreferredCountries) == 0 {
		return apperrors.EK(apperrors.KindInvalidInput, ErrKeyIncomplete, "onboarding questionnaire is incomplete")
	}
	return nil
}

func canonicalCountry(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, code := range countries {
		if strings.EqualFold(code, raw) {
			return code
		}
	}
	return ""
}

// StageKey returns the localization key of an advisory stage, or "" when
// the stage is outside 1..5.
func StageKey(stage int) string {
	if stage < 1 || stage > 5 {
		return ""
	}
	return "stage." + strconv.Itoa(stage)
}
