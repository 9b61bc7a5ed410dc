package onboarding

import (
	"net/http"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Onboarding, h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.Onboarding, h.handleSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.OnboardingPrefix+"{rest...}", h.WriteNotFound)
}
