package universities

import (
	"log"
	"net/http"
	"slices"

	"github.com/louisbranch/studyabroad/internal/services/web/notify"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/studyabroad/internal/services/web/platform/i18n"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
	"github.com/louisbranch/studyabroad/internal/services/web/studyplan"
	webtemplates "github.com/louisbranch/studyabroad/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	filters := parseFilters(r.URL.Query())
	view := webtemplates.UniversitiesView{
		Filters:  filterFields(filters, loc),
		ReturnTo: routepath.UniversitiesWithFilters(filters.Country, filters.Budget, filters.Category),
	}
	items, err := h.service.listUniversities(h.RequestContext(r), filters)
	if err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		log.Printf("web: universities list failed err=%v", err)
		view.Degraded = true
	}
	view.Rows = universityRows(items, loc)
	h.WritePage(w, r, webtemplates.T(loc, "universities.heading"), http.StatusOK, webtemplates.UniversitiesPage(view, loc))
}

func (h handlers) handleShortlist(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	var view webtemplates.ShortlistView
	state, err := h.service.loadShortlist(h.RequestContext(r))
	if err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		log.Printf("web: shortlist load failed err=%v", err)
		view.Degraded = true
	}
	view.Rows = universityRows(state.Universities, loc)
	if state.Locked != nil {
		view.LockedName = state.Locked.Name
		view.CanGenerate = true
	}
	view.CanLock = len(state.Universities) > 0 && state.Locked == nil
	h.WritePage(w, r, webtemplates.T(loc, "shortlist.heading"), http.StatusOK, webtemplates.ShortlistPage(view, loc))
}

func (h handlers) handleToggleShortlist(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	returnTo := safeReturnTo(r.PostFormValue("return_to"), routepath.Universities)
	if _, err := h.service.toggleShortlist(h.RequestContext(r), r.PathValue("universityID")); err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		h.notifyFailure(r, loc, "shortlist toggle", err)
		httpx.WriteRedirect(w, r, returnTo)
		return
	}
	h.Notices(r).Success(webtemplates.T(loc, "notice.shortlist_updated"))
	httpx.WriteRedirect(w, r, returnTo)
}

func (h handlers) handleLock(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	if err := h.service.lockUniversity(h.RequestContext(r), r.PathValue("universityID")); err != nil {
		if httpx.ClientGone(r.Context(), err) {
			return
		}
		h.notifyFailure(r, loc, "university lock", err)
		httpx.WriteRedirect(w, r, routepath.Shortlist)
		return
	}
	h.Notices(r).Success(webtemplates.T(loc, "notice.university_locked"))
	httpx.WriteRedirect(w, r, routepath.Shortlist)
}

func (h handlers) notifyFailure(r *http.Request, loc webi18n.Localizer, action string, err error) {
	log.Printf("web: %s failed err=%v", action, err)
	h.Notices(r).Error(
		webtemplates.T(loc, "notice.action_failed"),
		notify.WithMessage(webi18n.LocalizeError(loc, err)),
	)
}

func filterFields(filters Filters, loc webtemplates.Localizer) []webtemplates.ChoiceField {
	country := webtemplates.ChoiceField{
		Name:  routepath.UniversityFilterCountry,
		Label: webtemplates.T(loc, "universities.filter.country"),
	}
	for _, code := range studyplan.Countries() {
		country.Choices = append(country.Choices, webtemplates.Choice{
			Value:    code,
			Label:    webtemplates.T(loc, studyplan.CountryKey(code)),
			Selected: code == filters.Country,
		})
	}

	budget := webtemplates.ChoiceField{
		Name:  routepath.UniversityFilterBudget,
		Label: webtemplates.T(loc, "universities.filter.budget"),
	}
	for _, option := range budgetOptions() {
		budget.Choices = append(budget.Choices, webtemplates.Choice{
			Value:    option,
			Label:    webtemplates.T(loc, studyplan.Question{Field: studyplan.FieldBudget}.OptionKey(option)),
			Selected: option == filters.Budget,
		})
	}

	category := webtemplates.ChoiceField{
		Name:  routepath.UniversityFilterCategory,
		Label: webtemplates.T(loc, "universities.filter.category"),
	}
	for _, value := range Categories {
		category.Choices = append(category.Choices, webtemplates.Choice{
			Value:    value,
			Label:    webtemplates.T(loc, "universities.category."+value),
			Selected: value == filters.Category,
		})
	}
	return []webtemplates.ChoiceField{country, budget, category}
}

func universityRows(items []University, loc webtemplates.Localizer) []webtemplates.UniversityRow {
	rows := make([]webtemplates.UniversityRow, 0, len(items))
	for _, item := range items {
		row := webtemplates.UniversityRow{
			ID:          item.ID,
			Name:        item.Name,
			Country:     item.Country,
			City:        item.City,
			Ranking:     item.Ranking,
			Shortlisted: item.Shortlisted,
			Locked:      item.Locked,
		}
		if slices.Contains(studyplan.Countries(), item.Country) {
			row.Country = webtemplates.T(loc, studyplan.CountryKey(item.Country))
		}
		if item.Category != "" {
			row.Category = webtemplates.T(loc, "universities.category."+item.Category)
		}
		if item.Tuition > 0 {
			row.Tuition = webtemplates.T(loc, "universities.tuition", item.Tuition)
		}
		rows = append(rows, row)
	}
	return rows
}
