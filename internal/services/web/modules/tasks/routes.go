package tasks

import (
	"net/http"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Tasks, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.TasksPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.TasksGenerate, h.handleGenerate)
	mux.HandleFunc(http.MethodPost+" "+routepath.TaskTogglePattern, h.handleToggle)
	mux.HandleFunc(http.MethodGet+" "+routepath.TasksPrefix+"{rest...}", h.WriteNotFound)
}
