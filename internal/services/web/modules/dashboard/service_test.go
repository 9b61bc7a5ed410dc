package dashboard

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestLoadDashboardCombinesSources(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{stats: Stats{ShortlistedCount: 3, PendingTasks: 2, CompletedTasks: 1, LockedUniversity: " MIT "}, stage: 3}
	snapshot, err := newService(gateway).loadDashboard(context.Background())
	if err != nil {
		t.Fatalf("loadDashboard() error = %v", err)
	}
	if snapshot.Degraded() {
		t.Fatalf("snapshot degraded: %v", snapshot.DegradedDependencies)
	}
	if snapshot.Stats.ShortlistedCount != 3 || snapshot.Stage != 3 || snapshot.Stats.LockedUniversity != "MIT" {
		t.Fatalf("snapshot = %+v", snapshot)
	}
	if gateway.calls != 2 {
		t.Fatalf("gateway calls = %d, want 2", gateway.calls)
	}
}

func TestLoadDashboardDegradesFailedSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		gateway *fakeGateway
		want    []string
	}{
		{name: "stats", gateway: &fakeGateway{statsErr: errors.New("boom"), stage: 2}, want: []string{degradedDependencyStats}},
		{name: "stage", gateway: &fakeGateway{stats: Stats{PendingTasks: 4}, stageErr: errors.New("boom")}, want: []string{degradedDependencyStage}},
		{name: "both", gateway: &fakeGateway{statsErr: errors.New("boom"), stageErr: errors.New("boom")}, want: []string{degradedDependencyStats, degradedDependencyStage}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			snapshot, err := newService(tc.gateway).loadDashboard(context.Background())
			if err != nil {
				t.Fatalf("loadDashboard() error = %v", err)
			}
			if !slices.Equal(snapshot.DegradedDependencies, tc.want) {
				t.Fatalf("DegradedDependencies = %v, want %v", snapshot.DegradedDependencies, tc.want)
			}
		})
	}
}

// sequencedGateway fails stats first and only then loads the stage, so the
// stage call observes whatever the stats failure did to its context.
type sequencedGateway struct {
	statsDone chan struct{}
}

func (g sequencedGateway) LoadStats(context.Context) (Stats, error) {
	defer close(g.statsDone)
	return Stats{}, errors.New("boom")
}

func (g sequencedGateway) LoadStage(ctx context.Context) (int, error) {
	<-g.statsDone
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return 5, nil
}

func TestLoadDashboardFailureDoesNotCancelSibling(t *testing.T) {
	t.Parallel()

	snapshot, err := newService(sequencedGateway{statsDone: make(chan struct{})}).loadDashboard(context.Background())
	if err != nil {
		t.Fatalf("loadDashboard() error = %v", err)
	}
	if snapshot.Stage != 5 {
		t.Fatalf("Stage = %d, want 5", snapshot.Stage)
	}
	if !slices.Equal(snapshot.DegradedDependencies, []string{degradedDependencyStats}) {
		t.Fatalf("DegradedDependencies = %v", snapshot.DegradedDependencies)
	}
}

func TestLoadDashboardDiscardsResultWhenClientGone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newService(&fakeGateway{}).loadDashboard(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("loadDashboard() error = %v, want context.Canceled", err)
	}
}

func TestHTTPGatewayMapsPayloads(t *testing.T) {
	t.Parallel()

	gateway := NewHTTPGateway(fakeBackendClient{responses: map[string]any{
		pathStats: statsPayload{ShortlistedCount: 5, LockedUniversity: &lockedUniversityPayload{ID: "u-9", Name: "ETH Zurich"}},
		pathStage: stagePayload{Stage: 4},
	}})
	stats, err := gateway.LoadStats(context.Background())
	if err != nil {
		t.Fatalf("LoadStats() error = %v", err)
	}
	if stats.ShortlistedCount != 5 || stats.LockedUniversity != "ETH Zurich" {
		t.Fatalf("stats = %+v", stats)
	}
	stage, err := gateway.LoadStage(context.Background())
	if err != nil || stage != 4 {
		t.Fatalf("LoadStage() = %d, %v", stage, err)
	}
}
