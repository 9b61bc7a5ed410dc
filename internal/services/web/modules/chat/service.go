package chat

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
	"github.com/louisbranch/studyabroad/internal/services/web/session"
)

const (
	// MaxHistory is how many prior turns accompany each message.
	MaxHistory = 20

	maxMessageRunes = 4000

	historyKey = "chat.history"
	stageKey   = "chat.stage"

	// ErrKeyEmptyMessage is the inline error for a blank message.
	ErrKeyEmptyMessage = "chat.empty_message"
)

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message of the conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply is the counsellor's answer and the advisory stage after it.
type Reply struct {
	Message string
	Stage   int
}

// ChatGateway talks to the backend counsellor.
type ChatGateway interface {
	LoadStage(ctx context.Context) (int, error)
	SendMessage(ctx context.Context, message string, history []Turn) (Reply, error)
}

type service struct {
	gateway ChatGateway
}

func newService(gateway ChatGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// conversation is the chat page data.
type conversation struct {
	Stage int
	Turns []Turn
}

// loadConversation reads the stage from the backend and the turns from the
// session. A failed stage read falls back to the last stage seen.
func (s service) loadConversation(ctx context.Context, store *session.Store) (conversation, error) {
	result := conversation{Turns: history(store)}
	stage, err := s.gateway.LoadStage(ctx)
	if err != nil {
		if cached, ok := session.RecallAs[int](store, stageKey); ok {
			result.Stage = cached
		}
		return result, err
	}
	result.Stage = stage
	if store != nil {
		store.Remember(stageKey, stage)
	}
	return result, nil
}

// send posts message with the retained history. The exchange is recorded
// only after the backend replies.
func (s service) send(ctx context.Context, store *session.Store, message string) (Turn, Turn, int, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Turn{}, Turn{}, 0, apperrors.EK(apperrors.KindInvalidInput, ErrKeyEmptyMessage, "message is empty")
	}
	if utf8.RuneCountInString(message) > maxMessageRunes {
		return Turn{}, Turn{}, 0, apperrors.E(apperrors.KindInvalidInput, "message is too long")
	}
	prior := history(store)
	reply, err := s.gateway.SendMessage(ctx, message, prior)
	if err != nil {
		return Turn{}, Turn{}, 0, err
	}
	question := Turn{Role: RoleUser, Content: message}
	answer := Turn{Role: RoleAssistant, Content: strings.TrimSpace(reply.Message)}
	if store != nil {
		next := append(slices.Clone(history(store)), question, answer)
		store.Remember(historyKey, trimHistory(next))
		if reply.Stage > 0 {
			store.Remember(stageKey, reply.Stage)
		}
	}
	return question, answer, reply.Stage, nil
}

func history(store *session.Store) []Turn {
	turns, _ := session.RecallAs[[]Turn](store, historyKey)
	return trimHistory(turns)
}

func trimHistory(turns []Turn) []Turn {
	if len(turns) > MaxHistory {
		turns = turns[len(turns)-MaxHistory:]
	}
	return slices.Clone(turns)
}
