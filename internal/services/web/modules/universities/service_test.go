package universities

import (
	"context"
	"errors"
	"net/url"
	"testing"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
)

func TestParseFiltersKeepsKnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query url.Values
		want  Filters
	}{
		{name: "empty", query: url.Values{}, want: Filters{}},
		{
			name:  "all known",
			query: url.Values{"country": {"uk"}, "budget": {"20000-40000"}, "category": {"Target"}},
			want:  Filters{Country: "UK", Budget: "20000-40000", Category: "target"},
		},
		{
			name:  "unknown dropped",
			query: url.Values{"country": {"Mars"}, "budget": {"free"}, "category": {"reach"}},
			want:  Filters{},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := parseFilters(tc.query); got != tc.want {
				t.Fatalf("parseFilters() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestLoadShortlistFindsLockedUniversity(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{shortlisted: []University{
		{ID: "u-1", Name: "Oxford", Shortlisted: true},
		{ID: "u-2", Name: "MIT", Shortlisted: true, Locked: true},
	}}
	state, err := newService(gateway).loadShortlist(context.Background())
	if err != nil {
		t.Fatalf("loadShortlist() error = %v", err)
	}
	if state.Locked == nil || state.Locked.ID != "u-2" {
		t.Fatalf("Locked = %+v, want u-2", state.Locked)
	}
}

func TestMutationsRequireUniversityID(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := newService(gateway)
	if _, err := svc.toggleShortlist(context.Background(), " "); !apperrors.IsKind(err, apperrors.KindInvalidInput) {
		t.Fatalf("toggleShortlist() error = %v, want invalid input", err)
	}
	if err := svc.lockUniversity(context.Background(), ""); !apperrors.IsKind(err, apperrors.KindInvalidInput) {
		t.Fatalf("lockUniversity() error = %v, want invalid input", err)
	}
	if len(gateway.toggled)+len(gateway.locked) != 0 {
		t.Fatalf("gateway called with empty id")
	}
}

func TestNilGatewayIsUnavailable(t *testing.T) {
	t.Parallel()

	_, err := newService(nil).listUniversities(context.Background(), Filters{})
	if !apperrors.IsKind(err, apperrors.KindUnavailable) {
		t.Fatalf("listUniversities() error = %v, want unavailable", err)
	}
}

func TestSafeReturnTo(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                             "/universities",
		"/universities?country=UK":     "/universities?country=UK",
		"/shortlist":                   "/shortlist",
		"//evil.example/universities":  "/universities",
		"https://evil.example/":        "/universities",
		"/dashboard":                   "/universities",
		"/universities\\..\\profile":   "/universities",
		"universities":                 "/universities",
	}
	for raw, want := range tests {
		if got := safeReturnTo(raw, "/universities"); got != want {
			t.Fatalf("safeReturnTo(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestHTTPGatewayMapsRequests(t *testing.T) {
	t.Parallel()

	client := &fakeBackendClient{
		list: []universityPayload{
			{ID: " u-1 ", Name: "Oxford", Country: "UK", Category: "Dream", Tuition: 38000},
			{ID: "", Name: "dropped"},
		},
		shortlist: shortlistPayload{Shortlisted: true},
	}
	gateway := NewHTTPGateway(client)

	items, err := gateway.ListUniversities(context.Background(), Filters{Country: "UK", Category: "dream"})
	if err != nil {
		t.Fatalf("ListUniversities() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != "u-1" || items[0].Category != "dream" {
		t.Fatalf("items = %+v", items)
	}
	if got := client.queries[0].Encode(); got != "category=dream&country=UK" {
		t.Fatalf("query = %q", got)
	}

	shortlisted, err := gateway.ToggleShortlist(context.Background(), "u 1")
	if err != nil || !shortlisted {
		t.Fatalf("ToggleShortlist() = %v, %v", shortlisted, err)
	}
	if err := gateway.LockUniversity(context.Background(), "u-1"); err != nil {
		t.Fatalf("LockUniversity() error = %v", err)
	}
	want := []string{"/api/universities/u%201/shortlist", "/api/universities/u-1/lock"}
	for i, path := range want {
		if client.posts[i] != path {
			t.Fatalf("post[%d] = %q, want %q", i, client.posts[i], path)
		}
	}

	picked, err := gateway.ListShortlisted(context.Background())
	if err != nil || len(picked) != 1 || !picked[0].Shortlisted {
		t.Fatalf("ListShortlisted() = %+v, %v", picked, err)
	}
	if client.gets[1] != pathShortlisted {
		t.Fatalf("get path = %q, want %q", client.gets[1], pathShortlisted)
	}
}

func TestHTTPGatewayPropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	gateway := NewHTTPGateway(&fakeBackendClient{err: boom})
	if _, err := gateway.ListUniversities(context.Background(), Filters{}); !errors.Is(err, boom) {
		t.Fatalf("ListUniversities() error = %v, want boom", err)
	}
	if _, ok := NewHTTPGateway(nil).(unavailableGateway); !ok {
		t.Fatalf("NewHTTPGateway(nil) did not return unavailable gateway")
	}
}
