package tui

import (
	"context"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/storage/memory"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/catalog"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/services"
)

// MockAssistant implements driving.AssistantService for testing.
type MockAssistant struct {
	Fragments []string
	Received  []string
}

func (m *MockAssistant) Respond(_ context.Context, message string) iter.Seq2[string, error] {
	m.Received = append(m.Received, message)
	return func(yield func(string, error) bool) {
		for _, f := range m.Fragments {
			if !yield(f, nil) {
				return
			}
		}
	}
}

func (m *MockAssistant) Recommend(context.Context, domain.SearchCriteria) iter.Seq2[string, error] {
	return func(func(string, error) bool) {}
}

func (m *MockAssistant) History() []domain.ChatTurn { return nil }

func (m *MockAssistant) Reset() {}

func newReservations(t *testing.T, seed ...domain.Reservation) *services.ReservationService {
	t.Helper()
	svc, err := services.NewReservationService(context.Background(), catalog.Restaurants(), memory.NewReservationStore(seed...))
	require.NoError(t, err)
	return svc
}

func TestNewPorts(t *testing.T) {
	reservations := newReservations(t)
	assistant := &MockAssistant{}

	ports := NewPorts(reservations, assistant)

	require.NotNil(t, ports)
	assert.Equal(t, reservations, ports.Reservations)
	assert.Equal(t, assistant, ports.Assistant)
}

func TestPorts_Validate(t *testing.T) {
	t.Run("valid without assistant", func(t *testing.T) {
		ports := NewPorts(newReservations(t), nil)

		assert.NoError(t, ports.Validate())
	})

	t.Run("missing reservations", func(t *testing.T) {
		ports := NewPorts(nil, &MockAssistant{})

		assert.ErrorIs(t, ports.Validate(), ErrMissingReservationService)
	})

	t.Run("nil ports", func(t *testing.T) {
		var ports *Ports

		assert.ErrorIs(t, ports.Validate(), ErrInvalidPorts)
	})
}
