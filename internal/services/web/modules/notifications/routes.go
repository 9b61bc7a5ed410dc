package notifications

import (
	"net/http"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Notifications, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.NotificationsPrefix+"{$}", h.handleList)
	mux.HandleFunc(http.MethodPost+" "+routepath.NotificationsClear, h.handleClear)
	mux.HandleFunc(http.MethodPost+" "+routepath.NotificationDismissPattern, h.handleDismiss)
	mux.HandleFunc(http.MethodGet+" "+routepath.NotificationsPrefix+"{rest...}", h.WriteNotFound)
}
