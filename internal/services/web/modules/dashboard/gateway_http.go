package dashboard

import (
	"context"
	"net/url"
)

const (
	pathStats = "/api/dashboard/stats"
	pathStage = "/api/chat/stage"
)

// BackendClient is the subset of the REST client used by the dashboard.
type BackendClient interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
}

type lockedUniversityPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type statsPayload struct {
	ShortlistedCount int                      `json:"shortlistedCount"`
	PendingTasks     int                      `json:"pendingTasks"`
	CompletedTasks   int                      `json:"completedTasks"`
	LockedUniversity *lockedUniversityPayload `json:"lockedUniversity"`
}

type stagePayload struct {
	Stage int `json:"stage"`
}

type httpGateway struct {
	client BackendClient
}

// NewHTTPGateway returns a gateway over the backend REST API.
func NewHTTPGateway(client BackendClient) DashboardGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return httpGateway{client: client}
}

func (g httpGateway) LoadStats(ctx context.Context) (Stats, error) {
	var resp statsPayload
	if err := g.client.Get(ctx, pathStats, nil, &resp); err != nil {
		return Stats{}, err
	}
	stats := Stats{
		ShortlistedCount: resp.ShortlistedCount,
		PendingTasks:     resp.PendingTasks,
		CompletedTasks:   resp.CompletedTasks,
	}
	if resp.LockedUniversity != nil {
		stats.LockedUniversity = resp.LockedUniversity.Name
	}
	return stats, nil
}

func (g httpGateway) LoadStage(ctx context.Context) (int, error) {
	var resp stagePayload
	if err := g.client.Get(ctx, pathStage, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Stage, nil
}
