package dashboard

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/studyabroad/internal/services/web/platform/httpx"
)

const (
	degradedDependencyStats = "dashboard.stats"
	degradedDependencyStage = "chat.stage"
)

// Stats is the aggregate progress reported by the backend.
type Stats struct {
	ShortlistedCount int
	PendingTasks     int
	CompletedTasks   int
	LockedUniversity string
}

// DashboardGateway loads dashboard data for the signed-in user.
type DashboardGateway interface {
	LoadStats(ctx context.Context) (Stats, error)
	LoadStage(ctx context.Context) (int, error)
}

// DashboardSnapshot is the combined dashboard data. DegradedDependencies
// names the sources that failed to load.
type DashboardSnapshot struct {
	Stats                Stats
	Stage                int
	DegradedDependencies []string
}

// Degraded reports whether any source failed to load.
func (s DashboardSnapshot) Degraded() bool {
	return len(s.DegradedDependencies) > 0
}

type service struct {
	readGateway DashboardGateway
}

func newService(gateway DashboardGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{readGateway: gateway}
}

// loadDashboard fetches stats and stage concurrently. A failed source is
// logged and degrades to its zero value. The only error returned is the
// request context's own cancellation.
func (s service) loadDashboard(ctx context.Context) (DashboardSnapshot, error) {
	var (
		snapshot DashboardSnapshot
		statsErr error
		stageErr error
	)
	// Each source degrades on its own, so a failure never cancels its sibling.
	var g errgroup.Group
	g.Go(func() error {
		snapshot.Stats, statsErr = s.readGateway.LoadStats(ctx)
		return nil
	})
	g.Go(func() error {
		snapshot.Stage, stageErr = s.readGateway.LoadStage(ctx)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil && httpx.ClientGone(ctx, err) {
		return DashboardSnapshot{}, err
	}
	if statsErr != nil {
		log.Printf("web: dashboard stats unavailable err=%v", statsErr)
		snapshot.Stats = Stats{}
		snapshot.DegradedDependencies = append(snapshot.DegradedDependencies, degradedDependencyStats)
	}
	if stageErr != nil {
		log.Printf("web: dashboard stage unavailable err=%v", stageErr)
		snapshot.Stage = 0
		snapshot.DegradedDependencies = append(snapshot.DegradedDependencies, degradedDependencyStage)
	}
	snapshot.Stats.LockedUniversity = strings.TrimSpace(snapshot.Stats.LockedUniversity)
	return snapshot, nil
}
