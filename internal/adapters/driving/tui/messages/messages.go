// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

// MessageSubmitted is sent when the user sends a chat message.
type MessageSubmitted struct {
	Text string
}

// ReplyFragment carries the next piece of a streamed reply.
type ReplyFragment struct {
	Text string
}

// ReplyFinished ends a streamed reply. Err is set when the turn failed.
type ReplyFinished struct {
	Err error
}

// ConversationReset is sent after the transcript is cleared.
type ConversationReset struct{}

// ReservationsLoaded carries the reservation list back to the model.
type ReservationsLoaded struct {
	Reservations []domain.Reservation
	Err          error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewChat is the conversation with the assistant.
	ViewChat
	// ViewRestaurants browses the catalog.
	ViewRestaurants
	// ViewReservations lists current bookings.
	ViewReservations
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewChat:
		return "chat"
	case ViewRestaurants:
		return "restaurants"
	case ViewReservations:
		return "reservations"
	default:
		return "unknown"
	}
}
