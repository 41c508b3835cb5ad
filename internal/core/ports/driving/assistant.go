package driving

import (
	"context"
	"iter"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

// AssistantService runs the conversational reservation assistant.
type AssistantService interface {
	// Respond processes one user message and yields the reply in fragments.
	// A non-nil error ends the sequence; the turn is then not recorded.
	Respond(ctx context.Context, message string) iter.Seq2[string, error]

	// Recommend streams a recommendation for restaurants matching criteria.
	Recommend(ctx context.Context, criteria domain.SearchCriteria) iter.Seq2[string, error]

	// History returns a copy of the conversation so far.
	History() []domain.ChatTurn

	// Reset clears the conversation.
	Reset()
}

// AssistantFactory creates an assistant with an empty conversation.
type AssistantFactory func() (AssistantService, error)

// SessionPool hands out one assistant per conversation id so several
// clients can talk to the assistant at once.
type SessionPool interface {
	// Acquire returns the assistant for id. An empty or unknown id starts a
	// new conversation; the id actually used is returned.
	Acquire(id string) (string, AssistantService, error)

	// Drop forgets a conversation.
	Drop(id string)
}
