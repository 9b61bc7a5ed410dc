package universities

import (
	"net/http"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Universities, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.UniversitiesPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.UniversityShortlistPattern, h.handleToggleShortlist)
	mux.HandleFunc(http.MethodPost+" "+routepath.UniversityLockPattern, h.handleLock)
	mux.HandleFunc(http.MethodGet+" "+routepath.UniversitiesPrefix+"{rest...}", h.WriteNotFound)
}

func registerShortlistRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Shortlist, h.handleShortlist)
	mux.HandleFunc(http.MethodGet+" "+routepath.ShortlistPrefix+"{$}", h.handleShortlist)
	mux.HandleFunc(http.MethodGet+" "+routepath.ShortlistPrefix+"{rest...}", h.WriteNotFound)
}
