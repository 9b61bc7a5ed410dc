package app

import (
	"net/http"

	module "github.com/louisbranch/studyabroad/internal/services/web/module"
	"github.com/louisbranch/studyabroad/internal/services/web/platform/webctx"
	"github.com/louisbranch/studyabroad/internal/services/web/roles"
)

// ResolveViewer builds the app chrome for the signed-in user bound to r:
// role navigation, badge, and the pending notification queue.
func ResolveViewer(r *http.Request) module.Viewer {
	client := webctx.RequestClient(r)
	if client == nil || client.Session == nil {
		return module.Viewer{}
	}
	state := client.Session.Snapshot()
	if state.User == nil {
		return module.Viewer{}
	}
	viewer := module.Viewer{
		DisplayName:   state.DisplayName(),
		Email:         state.User.Email,
		BadgeColor:    roles.BadgeColor(state.User.Role),
		Navigation:    roles.NavigationItems(state.User.Role),
		Notifications: client.Notices.List(),
	}
	if r.URL != nil {
		viewer.CurrentPath = r.URL.Path
	}
	return viewer
}
