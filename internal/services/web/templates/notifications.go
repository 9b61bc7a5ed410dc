package templates

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/louisbranch/studyabroad/internal/services/web/notify"
	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
)

// NotificationTray renders pending notifications, oldest first. Timed
// entries carry their remaining lifetime for client-side removal.
func NotificationTray(items []notify.Notification, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := newHTMLWriter(out)
		w.raw(`<div id="notifications" class="notice-tray" aria-live="polite">`)
		now := time.Now()
		for _, item := range items {
			w.raw(`<div`)
			w.attr("class", "notice notice-"+string(item.Type))
			w.attr("data-notification-id", item.ID)
			if !item.Persistent() {
				remaining := item.Duration - now.Sub(item.CreatedAt)
				if remaining < 0 {
					remaining = 0
				}
				w.attr("data-expires-in", strconv.FormatInt(remaining.Milliseconds(), 10))
			}
			w.raw(`>`)
			w.element("strong", "", item.Title)
			if item.Message != "" {
				w.element("p", "", item.Message)
			}
			w.raw(`<form method="post"`)
			w.href("action", routepath.NotificationDismiss(item.ID))
			w.raw(`><button type="submit"`)
			w.attr("aria-label", T(loc, "notifications.dismiss"))
			w.raw(`>&times;</button></form></div>`)
		}
		w.raw(`</div>`)
		return w.err
	})
}
