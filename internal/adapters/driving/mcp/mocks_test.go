package mcp

import (
	"context"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/storage/memory"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/catalog"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/services"
)

// newReservations returns a reservation service over the real catalog.
func newReservations(t *testing.T, seed ...domain.Reservation) *services.ReservationService {
	t.Helper()
	svc, err := services.NewReservationService(context.Background(), catalog.Restaurants(), memory.NewReservationStore(seed...))
	require.NoError(t, err)
	return svc
}

// mockAssistant replies with fixed fragments and records messages.
type mockAssistant struct {
	fragments []string
	err       error
	messages  []string
}

func (m *mockAssistant) Respond(_ context.Context, message string) iter.Seq2[string, error] {
	m.messages = append(m.messages, message)
	return func(yield func(string, error) bool) {
		for _, f := range m.fragments {
			if !yield(f, nil) {
				return
			}
		}
		if m.err != nil {
			yield("", m.err)
		}
	}
}

func (m *mockAssistant) Recommend(_ context.Context, _ domain.SearchCriteria) iter.Seq2[string, error] {
	return func(func(string, error) bool) {}
}

func (m *mockAssistant) History() []domain.ChatTurn { return nil }

func (m *mockAssistant) Reset() {}

// mockSessions hands out a single assistant under a fixed id.
type mockSessions struct {
	assistant *mockAssistant
	err       error
	acquired  []string
}

func (m *mockSessions) Acquire(id string) (string, driving.AssistantService, error) {
	m.acquired = append(m.acquired, id)
	if m.err != nil {
		return "", nil, m.err
	}
	if id == "" {
		id = "session-1"
	}
	return id, m.assistant, nil
}

func (m *mockSessions) Drop(string) {}
