package profile

import (
	"net/http"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Profile, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProfilePrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProfilePreferences, h.handlePreferences)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProfileIdentity, h.handleIdentity)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProfileDelete, h.handleDelete)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProfilePrefix+"{rest...}", h.WriteNotFound)
}
