package universities

import (
	"context"
	"net/url"
	"slices"
	"strings"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
	"github.com/louisbranch/studyabroad/internal/services/web/studyplan"
)

// Categories are the admission-likelihood buckets the backend assigns.
var Categories = []string{"dream", "target", "safe"}

// Filters narrows the discovery listing. Empty fields do not filter.
type Filters struct {
	Country  string
	Budget   string
	Category string
}

// University is one listing entry.
type University struct {
	ID          string
	Name        string
	Country     string
	City        string
	Category    string
	Tuition     int
	Ranking     int
	Shortlisted bool
	Locked      bool
}

// UniversityGateway reads and mutates university state on the backend.
type UniversityGateway interface {
	ListUniversities(ctx context.Context, filters Filters) ([]University, error)
	ListShortlisted(ctx context.Context) ([]University, error)
	ToggleShortlist(ctx context.Context, universityID string) (bool, error)
	LockUniversity(ctx context.Context, universityID string) error
}

type service struct {
	gateway UniversityGateway
}

func newService(gateway UniversityGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// parseFilters keeps only recognized filter values.
func parseFilters(query url.Values) Filters {
	var filters Filters
	country := strings.TrimSpace(query.Get(routepath.UniversityFilterCountry))
	for _, code := range studyplan.Countries() {
		if strings.EqualFold(code, country) {
			filters.Country = code
		}
	}
	budget := strings.TrimSpace(query.Get(routepath.UniversityFilterBudget))
	if slices.Contains(budgetOptions(), budget) {
		filters.Budget = budget
	}
	category := strings.ToLower(strings.TrimSpace(query.Get(routepath.UniversityFilterCategory)))
	if slices.Contains(Categories, category) {
		filters.Category = category
	}
	return filters
}

func budgetOptions() []string {
	for _, q := range studyplan.Questions() {
		if q.Field == studyplan.FieldBudget {
			return q.Options
		}
	}
	return nil
}

func (s service) listUniversities(ctx context.Context, filters Filters) ([]University, error) {
	return s.gateway.ListUniversities(ctx, filters)
}

// shortlistState is the shortlist page derived from the shortlisted subset.
type shortlistState struct {
	Universities []University
	Locked       *University
}

func (s service) loadShortlist(ctx context.Context) (shortlistState, error) {
	items, err := s.gateway.ListShortlisted(ctx)
	if err != nil {
		return shortlistState{}, err
	}
	state := shortlistState{Universities: items}
	for i := range items {
		if items[i].Locked {
			state.Locked = &items[i]
			break
		}
	}
	return state, nil
}

func (s service) toggleShortlist(ctx context.Context, universityID string) (bool, error) {
	universityID = strings.TrimSpace(universityID)
	if universityID == "" {
		return false, apperrors.E(apperrors.KindInvalidInput, "university id is required")
	}
	return s.gateway.ToggleShortlist(ctx, universityID)
}

func (s service) lockUniversity(ctx context.Context, universityID string) error {
	universityID = strings.TrimSpace(universityID)
	if universityID == "" {
		return apperrors.E(apperrors.KindInvalidInput, "university id is required")
	}
	return s.gateway.LockUniversity(ctx, universityID)
}

// safeReturnTo accepts only local discovery or shortlist paths.
func safeReturnTo(raw string, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, "\\") {
		return fallback
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return fallback
	}
	switch routepath.Section(parsed.Path) {
	case routepath.Universities, routepath.Shortlist:
		return raw
	default:
		return fallback
	}
}
