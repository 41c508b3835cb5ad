package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

func newTestServer(t *testing.T, sessions *mockSessions, seed ...domain.Reservation) *Server {
	t.Helper()
	ports := &Ports{Reservations: newReservations(t, seed...)}
	if sessions != nil {
		ports.Sessions = sessions
	}
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func existingReservation() domain.Reservation {
	return domain.Reservation{
		ID: "RES-10000", RestaurantID: 2, Name: "Ravi", PartySize: 2, Date: "2026-11-20", Time: "20:00",
	}
}

func TestServer_handleFind(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, nil)

	t.Run("filters by cuisine and location", func(t *testing.T) {
		_, output, err := server.handleFind(ctx, nil, FindInput{Cuisine: "south indian", Location: "Midtown"})

		require.NoError(t, err)
		require.Equal(t, 1, output.Count)
		assert.Equal(t, "Coastal Spice", output.Restaurants[0].Name)
	})

	t.Run("no match returns empty list", func(t *testing.T) {
		_, output, err := server.handleFind(ctx, nil, FindInput{Cuisine: "Martian"})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Restaurants)
	})

	t.Run("bad time is rejected", func(t *testing.T) {
		_, _, err := server.handleFind(ctx, nil, FindInput{Date: "2026-11-20", Time: "7pm"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HH:MM")
	})
}

func TestServer_handleMake(t *testing.T) {
	ctx := context.Background()

	t.Run("books a table", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, output, err := server.handleMake(ctx, nil, MakeInput{
			RestaurantID: 1, Name: "Asha", PartySize: 4, Date: "2026-11-20", Time: "19:00",
		})

		require.NoError(t, err)
		assert.Equal(t, "RES-10000", output.ReservationID)
		assert.Equal(t, "Taj Mahal Bistro", output.RestaurantName)
		assert.Equal(t, 4, output.PartySize)
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, _, err := server.handleMake(ctx, nil, MakeInput{
			RestaurantID: 1, PartySize: 4, Date: "2026-11-20", Time: "19:00",
		})

		rejection, ok := domain.AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, domain.RejectMissingName, rejection.Kind)
	})
}

func TestServer_handleModify(t *testing.T) {
	ctx := context.Background()

	t.Run("applies updates", func(t *testing.T) {
		server := newTestServer(t, nil, existingReservation())

		_, output, err := server.handleModify(ctx, nil, ModifyInput{
			ReservationID: "RES-10000",
			Updates:       map[string]any{"party_size": float64(3), "time": "21:00"},
		})

		require.NoError(t, err)
		assert.Equal(t, 3, output.Reservation.PartySize)
		assert.Equal(t, "21:00", output.Reservation.Time)
		assert.Equal(t, "Coastal Spice", output.RestaurantName)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		server := newTestServer(t, nil, existingReservation())

		_, _, err := server.handleModify(ctx, nil, ModifyInput{
			ReservationID: "RES-10000",
			Updates:       map[string]any{"table": "window"},
		})

		assert.ErrorIs(t, err, domain.ErrUnknownField)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, _, err := server.handleModify(ctx, nil, ModifyInput{
			ReservationID: "RES-99999",
			Updates:       map[string]any{"name": "X"},
		})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServer_handleCancelAndGet(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, nil, existingReservation())

	_, got, err := server.handleGet(ctx, nil, ReservationInput{ReservationID: "RES-10000"})
	require.NoError(t, err)
	assert.Equal(t, "Ravi", got.Reservation.Name)

	_, cancelled, err := server.handleCancel(ctx, nil, ReservationInput{ReservationID: "RES-10000"})
	require.NoError(t, err)
	assert.True(t, cancelled.Cancelled)

	_, _, err = server.handleGet(ctx, nil, ReservationInput{ReservationID: "RES-10000"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = server.handleCancel(ctx, nil, ReservationInput{ReservationID: "RES-10000"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServer_handleChat(t *testing.T) {
	ctx := context.Background()

	t.Run("collects the streamed reply", func(t *testing.T) {
		assistant := &mockAssistant{fragments: []string{"Hello", ", ", "Asha!"}}
		sessions := &mockSessions{assistant: assistant}
		server := newTestServer(t, sessions)

		_, output, err := server.handleChat(ctx, nil, ChatInput{Message: "hi"})

		require.NoError(t, err)
		assert.Equal(t, "Hello, Asha!", output.Reply)
		assert.Equal(t, "session-1", output.SessionID)
		assert.Equal(t, []string{"hi"}, assistant.messages)
	})

	t.Run("continues a session", func(t *testing.T) {
		sessions := &mockSessions{assistant: &mockAssistant{fragments: []string{"ok"}}}
		server := newTestServer(t, sessions)

		_, output, err := server.handleChat(ctx, nil, ChatInput{Message: "again", SessionID: "abc"})

		require.NoError(t, err)
		assert.Equal(t, "abc", output.SessionID)
		assert.Equal(t, []string{"abc"}, sessions.acquired)
	})

	t.Run("empty message", func(t *testing.T) {
		server := newTestServer(t, &mockSessions{assistant: &mockAssistant{}})

		_, _, err := server.handleChat(ctx, nil, ChatInput{Message: "  "})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("assistant unavailable", func(t *testing.T) {
		server := newTestServer(t, &mockSessions{err: domain.ErrLLMUnavailable})

		_, _, err := server.handleChat(ctx, nil, ChatInput{Message: "hi"})

		assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	})

	t.Run("stream error", func(t *testing.T) {
		server := newTestServer(t, &mockSessions{assistant: &mockAssistant{err: errors.New("connection reset")}})

		_, _, err := server.handleChat(ctx, nil, ChatInput{Message: "hi"})

		assert.ErrorContains(t, err, "connection reset")
	})
}
