package chat

import (
	"net/http"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Chat, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ChatPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.ChatMessages, h.handleSend)
	mux.HandleFunc(http.MethodGet+" "+routepath.ChatPrefix+"{rest...}", h.WriteNotFound)
}
