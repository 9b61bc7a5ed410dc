package chat

import (
	"context"
	"net/url"
)

const (
	pathChat  = "/api/chat"
	pathStage = "/api/chat/stage"
)

// BackendClient is the subset of the REST client used by the chat page.
type BackendClient interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
}

type stagePayload struct {
	Stage int `json:"stage"`
}

type messageRequest struct {
	Message string `json:"message"`
	History []Turn `json:"history"`
}

type messageResponse struct {
	Reply string `json:"reply"`
	Stage int    `json:"stage"`
}

type httpGateway struct {
	client BackendClient
}

// NewHTTPGateway returns a gateway over the backend REST API.
func NewHTTPGateway(client BackendClient) ChatGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return httpGateway{client: client}
}

func (g httpGateway) LoadStage(ctx context.Context) (int, error) {
	var resp stagePayload
	if err := g.client.Get(ctx, pathStage, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Stage, nil
}

func (g httpGateway) SendMessage(ctx context.Context, message string, history []Turn) (Reply, error) {
	if history == nil {
		history = []Turn{}
	}
	var resp messageResponse
	if err := g.client.Post(ctx, pathChat, messageRequest{Message: message, History: history}, &resp); err != nil {
		return Reply{}, err
	}
	return Reply{Message: resp.Reply, Stage: resp.Stage}, nil
}
