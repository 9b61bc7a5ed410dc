package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Login != "/login" {
		t.Fatalf("Login = %q", Login)
	}
	if Register != "/register" {
		t.Fatalf("Register = %q", Register)
	}
	if Onboarding != "/onboarding" {
		t.Fatalf("Onboarding = %q", Onboarding)
	}
	if Dashboard != "/dashboard" {
		t.Fatalf("Dashboard = %q", Dashboard)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
}

func TestRouteBuildersEscapeSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "shortlist", got: UniversityShortlist("uni-1"), want: "/universities/uni-1/shortlist"},
		{name: "lock", got: UniversityLock(" uni-2 "), want: "/universities/uni-2/lock"},
		{name: "task toggle", got: TaskToggle("a/b"), want: "/tasks/a%2Fb/toggle"},
		{name: "document toggle", got: DocumentToggle("doc-1"), want: "/documents/doc-1/toggle"},
		{name: "notification dismiss", got: NotificationDismiss("n-1"), want: "/notifications/n-1/dismiss"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.got != tc.want {
				t.Fatalf("route = %q, want %q", tc.got, tc.want)
			}
		})
	}
}

func TestUniversitiesWithFilters(t *testing.T) {
	t.Parallel()

	if got := UniversitiesWithFilters("", " ", ""); got != Universities {
		t.Fatalf("UniversitiesWithFilters() = %q, want %q", got, Universities)
	}
	if got := UniversitiesWithFilters("UK", "20000-40000", ""); got != "/universities?budget=20000-40000&country=UK" {
		t.Fatalf("UniversitiesWithFilters() = %q", got)
	}
}

func TestSection(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                     Root,
		"/":                    Root,
		"/dashboard":           Dashboard,
		"/dashboard/":          Dashboard,
		"/tasks/t-1/toggle":    Tasks,
		"/notifications/clear": Notifications,
	}
	for path, want := range tests {
		if got := Section(path); got != want {
			t.Fatalf("Section(%q) = %q, want %q", path, got, want)
		}
	}
}
