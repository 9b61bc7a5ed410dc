package documents

import (
	"net/http"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Documents, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.DocumentsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.DocumentTogglePattern, h.handleUpdate)
	mux.HandleFunc(http.MethodGet+" "+routepath.DocumentsPrefix+"{rest...}", h.WriteNotFound)
}
