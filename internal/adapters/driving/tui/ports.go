// Package tui provides an interactive terminal user interface for FoodieSpot.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Reservations searches the catalog and manages bookings.
	Reservations driving.ReservationService

	// Assistant holds the conversation. Nil when no LLM is configured;
	// the chat view then explains how to set one up.
	Assistant driving.AssistantService

	// Welcome is shown at the top of a new conversation.
	Welcome string
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(reservations driving.ReservationService, assistant driving.AssistantService) *Ports {
	return &Ports{
		Reservations: reservations,
		Assistant:    assistant,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Reservations == nil {
		return ErrMissingReservationService
	}
	return nil
}
