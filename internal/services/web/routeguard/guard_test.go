package routeguard

import (
	"testing"

	"github.com/louisbranch/studyabroad/internal/services/web/routepath"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
)

var (
	loadingState    = session.State{Loading: true}
	anonymousState  = session.State{Initialized: true}
	onboardingState = session.State{Initialized: true, User: &session.User{ID: "u-1"}}
	activeState     = session.State{Initialized: true, User: &session.User{ID: "u-1", OnboardingCompleted: true}}
)

func TestDecideCanonicalCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state session.State
		path  string
		want  Decision
	}{
		{name: "anonymous protected", state: anonymousState, path: "/dashboard", want: Decision{Kind: RedirectLogin, Location: routepath.Login}},
		{name: "onboarding protected", state: onboardingState, path: "/dashboard", want: Decision{Kind: RedirectOnboarding, Location: routepath.Onboarding}},
		{name: "active public", state: activeState, path: "/login", want: Decision{Kind: RedirectDashboard, Location: routepath.Dashboard}},
		{name: "loading", state: loadingState, path: "/dashboard", want: Decision{Kind: Loading}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Decide(tc.state, tc.path); got != tc.want {
				t.Fatalf("Decide(%q) = %+v, want %+v", tc.path, got, tc.want)
			}
		})
	}
}

func TestDecideLoadingIgnoresUser(t *testing.T) {
	t.Parallel()

	withUser := session.State{Loading: true, Initialized: true, User: &session.User{OnboardingCompleted: true}}
	for _, path := range []string{"/", "/login", "/register", "/dashboard", "/onboarding", "/chat"} {
		if got := Decide(withUser, path); got.Kind != Loading || got.Redirect() {
			t.Fatalf("Decide(loading, %q) = %+v, want loading without redirect", path, got)
		}
		if got := Decide(session.State{}, path); got.Kind != Loading {
			t.Fatalf("Decide(uninitialized, %q) = %+v, want loading", path, got)
		}
	}
}

func TestDecideAnonymous(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/", "/login", "/register", "/login/"} {
		if got := Decide(anonymousState, path); got.Kind != Render {
			t.Fatalf("Decide(anonymous, %q) = %+v, want render", path, got)
		}
	}
	for _, path := range []string{"/dashboard", "/universities?country=UK", "/shortlist", "/tasks/t-1/toggle", "/documents", "/profile", "/chat", "/onboarding"} {
		if got := Decide(anonymousState, path); got.Kind != RedirectLogin {
			t.Fatalf("Decide(anonymous, %q) = %+v, want redirect login", path, got)
		}
	}
}

func TestDecideOnboardingRequired(t *testing.T) {
	t.Parallel()

	if got := Decide(onboardingState, "/onboarding"); got.Kind != Render {
		t.Fatalf("Decide(onboarding, /onboarding) = %+v, want render", got)
	}
	for _, path := range []string{"/", "/login", "/register", "/dashboard", "/chat", "/profile"} {
		if got := Decide(onboardingState, path); got.Kind != RedirectOnboarding {
			t.Fatalf("Decide(onboarding, %q) = %+v, want redirect onboarding", path, got)
		}
	}
}

func TestDecideActive(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/dashboard", "/universities", "/shortlist", "/tasks", "/documents", "/profile", "/chat"} {
		if got := Decide(activeState, path); got.Kind != Render {
			t.Fatalf("Decide(active, %q) = %+v, want render", path, got)
		}
	}
	for _, path := range []string{"/", "/login", "/register", "/onboarding"} {
		if got := Decide(activeState, path); got.Kind != RedirectDashboard {
			t.Fatalf("Decide(active, %q) = %+v, want redirect dashboard", path, got)
		}
	}
}

func TestDecideUnclassifiedAlwaysRenders(t *testing.T) {
	t.Parallel()

	states := []session.State{loadingState, anonymousState, onboardingState, activeState}
	for _, path := range []string{"/logout", "/static/app.css", "/up", "/nowhere"} {
		for _, state := range states {
			if got := Decide(state, path); got.Kind != Render {
				t.Fatalf("Decide(%q, %q) = %+v, want render", state.Phase(), path, got)
			}
		}
	}
}

func TestDecideSessionBoundWaitsForSessionCheck(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/notifications", "/notifications/clear", "/notifications/n-1/dismiss"} {
		if got := Decide(loadingState, path); got.Kind != Loading {
			t.Fatalf("Decide(loading, %q) = %+v, want loading", path, got)
		}
		for _, state := range []session.State{anonymousState, onboardingState, activeState} {
			if got := Decide(state, path); got.Kind != Render || got.Redirect() {
				t.Fatalf("Decide(%q, %q) = %+v, want render", state.Phase(), path, got)
			}
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := map[string]Class{
		"":                   ClassPublic,
		"/":                  ClassPublic,
		"/register":          ClassPublic,
		"/onboarding":        ClassOnboarding,
		"/onboarding/":       ClassOnboarding,
		"/dashboard":         ClassProtected,
		"/universities/u/lk": ClassProtected,
		"/notifications":     ClassSessionBound,
		"/notifications/n-1": ClassSessionBound,
		"/dashboardx":        ClassUnclassified,
		"/static/app.js":     ClassUnclassified,
	}
	for path, want := range tests {
		if got := Classify(path); got != want {
			t.Fatalf("Classify(%q) = %q, want %q", path, got, want)
		}
	}
}
