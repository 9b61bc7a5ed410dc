package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/studyabroad/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
	"github.com/louisbranch/studyabroad/internal/services/web/session/sessiontest"
	"github.com/louisbranch/studyabroad/internal/services/web/storage/memory"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	sessions := session.NewManager(&sessiontest.Authenticator{}, memory.New())
	h, err := NewHandler(Config{}, HandlerDependencies{Sessions: sessions})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func TestNewHandlerRequiresSessions(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(Config{}, HandlerDependencies{}); err == nil {
		t.Fatalf("NewHandler() error = nil")
	}
}

func TestNewServerRejectsInvalidBackendURL(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{BackendBaseURL: "ftp://backend"}); err == nil {
		t.Fatalf("NewServer() error = nil")
	}
}

func TestHealthReportsDegradedModules(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var resp healthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if resp.Status != "degraded" {
		t.Fatalf("status = %q, want degraded", resp.Status)
	}
	if healthy, ok := resp.Modules["tasks"]; !ok || healthy {
		t.Fatalf("tasks health = %v (present %v), want false", healthy, ok)
	}
	if !resp.Modules["public"] {
		t.Fatalf("public module reported unhealthy")
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
}

func TestServesStaticAssets(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestAnonymousNavigation(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	tests := []struct {
		path     string
		status   int
		location string
	}{
		{path: "/", status: http.StatusOK},
		{path: "/login", status: http.StatusOK},
		{path: "/dashboard", status: http.StatusFound, location: "/login"},
		{path: "/chat", status: http.StatusFound, location: "/login"},
		{path: "/onboarding", status: http.StatusFound, location: "/login"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if rr.Code != tc.status {
				t.Fatalf("status = %d, want %d", rr.Code, tc.status)
			}
			if got := rr.Header().Get("Location"); got != tc.location {
				t.Fatalf("Location = %q, want %q", got, tc.location)
			}
			if !strings.Contains(rr.Header().Get("Set-Cookie"), sessioncookie.Name+"=") {
				t.Fatalf("session cookie not issued")
			}
		})
	}
}
