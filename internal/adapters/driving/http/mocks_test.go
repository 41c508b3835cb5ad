package httpapi

import (
	"context"
	"iter"
	"sync"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
)

// mockAssistant replies with fixed fragments.
type mockAssistant struct {
	fragments []string
	err       error
}

func (m *mockAssistant) Respond(_ context.Context, _ string) iter.Seq2[string, error] {
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

// mockSessions hands out one assistant and records calls.
type mockSessions struct {
	mu        sync.Mutex
	assistant *mockAssistant
	err       error
	acquired  []string
	dropped   []string
}

func (m *mockSessions) Acquire(id string) (string, driving.AssistantService, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acquired = append(m.acquired, id)
	if m.err != nil {
		return "", nil, m.err
	}
	if id == "" {
		id = "generated-session"
	}
	return id, m.assistant, nil
}

func (m *mockSessions) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dropped = append(m.dropped, id)
}

// failingReservations fails every call with err.
type failingReservations struct {
	driving.ReservationService
	err error
}

func (f *failingReservations) List(context.Context) ([]domain.Reservation, error) {
	return nil, f.err
}

func (f *failingReservations) Restaurants() []domain.Restaurant { return nil }
