// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root         = "/"
	Login        = "/login"
	Register     = "/register"
	Logout       = "/logout"
	Health       = "/up"
	StaticPrefix = "/static/"

	Onboarding       = "/onboarding"
	OnboardingPrefix = "/onboarding/"

	Dashboard       = "/dashboard"
	DashboardPrefix = "/dashboard/"

	Universities               = "/universities"
	UniversitiesPrefix         = "/universities/"
	UniversityShortlistPattern = UniversitiesPrefix + "{universityID}/shortlist"
	UniversityLockPattern      = UniversitiesPrefix + "{universityID}/lock"
	Shortlist                  = "/shortlist"
	ShortlistPrefix            = "/shortlist/"

	Tasks             = "/tasks"
	TasksPrefix       = "/tasks/"
	TasksGenerate     = "/tasks/generate"
	TaskTogglePattern = TasksPrefix + "{taskID}/toggle"

	Documents             = "/documents"
	DocumentsPrefix       = "/documents/"
	DocumentTogglePattern = DocumentsPrefix + "{documentID}/toggle"

	Profile            = "/profile"
	ProfilePrefix      = "/profile/"
	ProfilePreferences = "/profile/preferences"
	ProfileIdentity    = "/profile/identity"
	ProfileDelete      = "/profile/delete"

	Chat         = "/chat"
	ChatPrefix   = "/chat/"
	ChatMessages = "/chat/messages"

	Notifications              = "/notifications"
	NotificationsPrefix        = "/notifications/"
	NotificationsClear         = "/notifications/clear"
	NotificationDismissPattern = NotificationsPrefix + "{notificationID}/dismiss"

	UniversityFilterCountry  = "country"
	UniversityFilterBudget   = "budget"
	UniversityFilterCategory = "category"
)

// UniversityShortlist returns the shortlist-toggle route for one university.
func UniversityShortlist(universityID string) string {
	return UniversitiesPrefix + escapeSegment(universityID) + "/shortlist"
}

// UniversityLock returns the lock route for one university.
func UniversityLock(universityID string) string {
	return UniversitiesPrefix + escapeSegment(universityID) + "/lock"
}

// TaskToggle returns the completion-toggle route for one task.
func TaskToggle(taskID string) string {
	return TasksPrefix + escapeSegment(taskID) + "/toggle"
}

// DocumentToggle returns the completion-toggle route for one document.
func DocumentToggle(documentID string) string {
	return DocumentsPrefix + escapeSegment(documentID) + "/toggle"
}

// NotificationDismiss returns the dismiss route for one notification.
func NotificationDismiss(notificationID string) string {
	return NotificationsPrefix + escapeSegment(notificationID) + "/dismiss"
}

// UniversitiesWithFilters returns the discovery route carrying filter params.
func UniversitiesWithFilters(country, budget, category string) string {
	query := url.Values{}
	if value := strings.TrimSpace(country); value != "" {
		query.Set(UniversityFilterCountry, value)
	}
	if value := strings.TrimSpace(budget); value != "" {
		query.Set(UniversityFilterBudget, value)
	}
	if value := strings.TrimSpace(category); value != "" {
		query.Set(UniversityFilterCategory, value)
	}
	if len(query) == 0 {
		return Universities
	}
	return Universities + "?" + query.Encode()
}

// Section returns the top-level route a path belongs to, such as
// "/dashboard" for "/dashboard/anything". The root path maps to Root.
func Section(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == Root {
		return Root
	}
	trimmed := strings.TrimPrefix(path, "/")
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return "/" + trimmed
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
