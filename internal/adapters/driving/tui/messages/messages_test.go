package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewMenu, "menu"},
		{ViewChat, "chat"},
		{ViewRestaurants, "restaurants"},
		{ViewReservations, "reservations"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestReplyFinished_CarriesError(t *testing.T) {
	err := errors.New("stream closed")

	msg := ReplyFinished{Err: err}

	assert.ErrorIs(t, msg.Err, err)
	assert.NoError(t, ReplyFinished{}.Err)
}

func TestReservationsLoaded(t *testing.T) {
	msg := ReservationsLoaded{Reservations: []domain.Reservation{{ID: "RES-10000"}}}

	assert.Len(t, msg.Reservations, 1)
	assert.NoError(t, msg.Err)
}
