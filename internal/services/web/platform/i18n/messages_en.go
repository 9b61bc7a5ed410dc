package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	// Chrome
	message.SetString(lang, "app.name", "Study Abroad Advisor")
	message.SetString(lang, "role.user", "Student")
	message.SetString(lang, "session.loading", "Checking your session…")
	message.SetString(lang, "page.degraded", "Some information could not be loaded. Showing what is available.")
	message.SetString(lang, "notifications.dismiss", "Dismiss")

	// Navigation
	message.SetString(lang, "nav.dashboard", "Dashboard")
	message.SetString(lang, "nav.universities", "Universities")
	message.SetString(lang, "nav.shortlist", "Shortlist")
	message.SetString(lang, "nav.tasks", "Tasks")
	message.SetString(lang, "nav.documents", "Documents")
	message.SetString(lang, "nav.chat", "Counsellor")
	message.SetString(lang, "nav.profile", "Profile")
	message.SetString(lang, "nav.sign_out", "Sign out")

	// Forms
	message.SetString(lang, "form.email", "Email")
	message.SetString(lang, "form.password", "Password")
	message.SetString(lang, "form.name", "Full name")
	message.SetString(lang, "form.choose", "Choose…")

	// Landing, login, register, goodbye
	message.SetString(lang, "landing.heading", "Plan your studies abroad")
	message.SetString(lang, "landing.tagline", "Find universities, build a shortlist, and track every application step in one place.")
	message.SetString(lang, "landing.get_started", "Get started")
	message.SetString(lang, "landing.sign_in", "Sign in")
	message.SetString(lang, "login.heading", "Sign in")
	message.SetString(lang, "login.submit", "Sign in")
	message.SetString(lang, "login.register_link", "New here? Create an account")
	message.SetString(lang, "register.heading", "Create your account")
	message.SetString(lang, "register.submit", "Create account")
	message.SetString(lang, "register.login_link", "Already registered? Sign in")
	message.SetString(lang, "goodbye.heading", "Your account has been deleted")
	message.SetString(lang, "goodbye.message", "Thanks for using Study Abroad Advisor. Returning to the home page shortly.")
	message.SetString(lang, "goodbye.home_link", "Go to the home page")

	// Onboarding and study plan questionnaire
	message.SetString(lang, "onboarding.heading", "Tell us about your plans")
	message.SetString(lang, "onboarding.intro", "Answer a few questions so we can tailor recommendations to you.")
	message.SetString(lang, "onboarding.submit", "Finish onboarding")
	message.SetString(lang, "onboarding.incomplete", "Answer every question and choose at least one country.")
	message.SetString(lang, "plan.field.academic_background", "Academic background")
	message.SetString(lang, "plan.field.study_goals", "Study goal")
	message.SetString(lang, "plan.field.budget", "Yearly budget (USD)")
	message.SetString(lang, "plan.field.exam_readiness", "Language and entrance exams")
	message.SetString(lang, "plan.field.current_stage", "Where are you today?")
	message.SetString(lang, "plan.field.preferred_countries", "Preferred countries")
	message.SetString(lang, "plan.academic_background.high_school", "High school")
	message.SetString(lang, "plan.academic_background.bachelors", "Bachelor's degree")
	message.SetString(lang, "plan.academic_background.masters", "Master's degree")
	message.SetString(lang, "plan.academic_background.phd", "Doctorate")
	message.SetString(lang, "plan.study_goals.bachelors", "Bachelor's degree")
	message.SetString(lang, "plan.study_goals.masters", "Master's degree")
	message.SetString(lang, "plan.study_goals.mba", "MBA")
	message.SetString(lang, "plan.study_goals.phd", "PhD")
	message.SetString(lang, "plan.budget.0-20000", "Up to 20,000")
	message.SetString(lang, "plan.budget.20000-40000", "20,000 to 40,000")
	message.SetString(lang, "plan.budget.40000-60000", "40,000 to 60,000")
	message.SetString(lang, "plan.budget.60000+", "More than 60,000")
	message.SetString(lang, "plan.exam_readiness.not_started", "Not started")
	message.SetString(lang, "plan.exam_readiness.preparing", "Preparing")
	message.SetString(lang, "plan.exam_readiness.scheduled", "Scheduled")
	message.SetString(lang, "plan.exam_readiness.completed", "Completed")
	message.SetString(lang, "plan.current_stage.exploring", "Just exploring")
	message.SetString(lang, "plan.current_stage.shortlisting", "Comparing universities")
	message.SetString(lang, "plan.current_stage.applying", "Ready to apply")
	message.SetString(lang, "country.usa", "United States")
	message.SetString(lang, "country.uk", "United Kingdom")
	message.SetString(lang, "country.canada", "Canada")
	message.SetString(lang, "country.australia", "Australia")
	message.SetString(lang, "country.germany", "Germany")
	message.SetString(lang, "country.ireland", "Ireland")

	// Advisory stages
	message.SetString(lang, "stage.1", "Building your profile")
	message.SetString(lang, "stage.2", "Discovering universities")
	message.SetString(lang, "stage.3", "Finalizing your shortlist")
	message.SetString(lang, "stage.4", "Preparing applications")
	message.SetString(lang, "stage.5", "Submitting applications")

	// Dashboard
	message.SetString(lang, "dashboard.heading", "Welcome back, %s")
	message.SetString(lang, "dashboard.stage", "Stage %d: %s")
	message.SetString(lang, "dashboard.shortlisted", "Shortlisted universities")
	message.SetString(lang, "dashboard.pending_tasks", "Pending tasks")
	message.SetString(lang, "dashboard.completed_tasks", "Completed tasks")
	message.SetString(lang, "dashboard.locked", "Locked university: %s")
	message.SetString(lang, "dashboard.explore", "Explore universities")

	// Universities and shortlist
	message.SetString(lang, "universities.heading", "Universities")
	message.SetString(lang, "universities.filter_any", "Any")
	message.SetString(lang, "universities.apply_filters", "Apply filters")
	message.SetString(lang, "universities.empty", "No universities match these filters.")
	message.SetString(lang, "universities.locked", "Locked")
	message.SetString(lang, "universities.shortlist_add", "Add to shortlist")
	message.SetString(lang, "universities.shortlist_remove", "Remove from shortlist")
	message.SetString(lang, "universities.lock", "Lock this university")
	message.SetString(lang, "universities.tuition", "$%d per year")
	message.SetString(lang, "universities.filter.country", "Country")
	message.SetString(lang, "universities.filter.budget", "Budget")
	message.SetString(lang, "universities.filter.category", "Category")
	message.SetString(lang, "universities.category.dream", "Dream")
	message.SetString(lang, "universities.category.target", "Target")
	message.SetString(lang, "universities.category.safe", "Safe")
	message.SetString(lang, "shortlist.heading", "Your shortlist")
	message.SetString(lang, "shortlist.locked", "You have locked %s.")
	message.SetString(lang, "shortlist.generate_tasks", "Generate application tasks")
	message.SetString(lang, "shortlist.empty", "Your shortlist is empty.")
	message.SetString(lang, "shortlist.browse", "Browse universities")

	// Tasks
	message.SetString(lang, "tasks.heading", "Application tasks")
	message.SetString(lang, "tasks.summary", "%d pending, %d completed")
	message.SetString(lang, "tasks.generate", "Generate tasks")
	message.SetString(lang, "tasks.empty", "No tasks yet. Lock a university to generate them.")
	message.SetString(lang, "tasks.due", "Due %s")
	message.SetString(lang, "tasks.mark_done", "Mark done")
	message.SetString(lang, "tasks.mark_pending", "Mark pending")

	// Documents
	message.SetString(lang, "documents.heading", "Documents")
	message.SetString(lang, "documents.summary", "%d of %d documents completed")
	message.SetString(lang, "documents.empty", "No documents yet.")
	message.SetString(lang, "documents.notes", "Notes")
	message.SetString(lang, "documents.mark_done", "Mark done")
	message.SetString(lang, "documents.mark_pending", "Mark pending")
	message.SetString(lang, "documents.general", "General")

	// Profile
	message.SetString(lang, "profile.heading", "Profile")
	message.SetString(lang, "profile.identity", "Account details")
	message.SetString(lang, "profile.save", "Save")
	message.SetString(lang, "profile.preferences", "Study preferences")
	message.SetString(lang, "profile.delete_heading", "Delete account")
	message.SetString(lang, "profile.delete_warning", "This cannot be undone. Type %q to confirm.")
	message.SetString(lang, "profile.delete_confirmation", "Confirmation")
	message.SetString(lang, "profile.delete_submit", "Delete my account")
	message.SetString(lang, "profile.delete_mismatch", "Type %q exactly to delete your account.")
	message.SetString(lang, "profile.identity_required", "Name and email are required.")

	// Chat
	message.SetString(lang, "chat.heading", "Counsellor")
	message.SetString(lang, "chat.placeholder", "Ask about universities, exams, or applications…")
	message.SetString(lang, "chat.send", "Send")
	message.SetString(lang, "chat.empty_message", "Write a message first.")

	// Notices
	message.SetString(lang, "notice.signed_out", "You have been signed out.")
	message.SetString(lang, "notice.onboarding_complete", "Your profile is ready.")
	message.SetString(lang, "notice.shortlist_updated", "Shortlist updated.")
	message.SetString(lang, "notice.university_locked", "University locked. You can now generate application tasks.")
	message.SetString(lang, "notice.tasks_generated", "Application tasks generated.")
	message.SetString(lang, "notice.task_update_failed", "Could not update the task. Please try again.")
	message.SetString(lang, "notice.document_updated", "Document updated.")
	message.SetString(lang, "notice.preferences_saved", "Preferences saved.")
	message.SetString(lang, "notice.identity_saved", "Account details saved.")
	message.SetString(lang, "notice.action_failed", "That did not work. Please try again.")
	message.SetString(lang, "notice.chat_failed", "The counsellor could not reply. Please try again.")

	// Errors
	message.SetString(lang, "error.auth.invalid_credentials", "Invalid email or password.")
	message.SetString(lang, "error.auth.email_taken", "An account with this email already exists.")
	message.SetString(lang, "error.auth.invalid_input", "Check the form and try again.")
	message.SetString(lang, "error.auth.unavailable", "Sign in is temporarily unavailable. Please try again.")
	message.SetString(lang, "error.generic.invalid_input", "Check the form and try again.")
	message.SetString(lang, "error.generic.unauthorized", "Please sign in to continue.")
	message.SetString(lang, "error.generic.forbidden", "You do not have access to this page.")
	message.SetString(lang, "error.generic.not_found", "We could not find what you were looking for.")
	message.SetString(lang, "error.generic.conflict", "That change conflicts with the current state. Refresh and try again.")
	message.SetString(lang, "error.generic.unavailable", "The service is temporarily unavailable. Please try again.")
	message.SetString(lang, "error.generic.unknown", "Something went wrong. Please try again.")
	message.SetString(lang, "error.page.title_not_found", "Page not found")
	message.SetString(lang, "error.page.title_server_error", "Something went wrong")
	message.SetString(lang, "error.page.heading_not_found", "Page not found")
	message.SetString(lang, "error.page.heading_server_error", "Something went wrong")
	message.SetString(lang, "error.page.message_not_found", "The page you requested does not exist.")
	message.SetString(lang, "error.page.message_server_error", "We could not complete your request. Please try again shortly.")
	message.SetString(lang, "error.page.back_to_dashboard", "Back to dashboard")
}
