package mcp

import (
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Reservations searches the catalog and manages bookings.
	Reservations driving.ReservationService

	// Sessions backs the chat tool. Optional: without it no chat tool is offered.
	Sessions driving.SessionPool
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Reservations == nil {
		return ErrMissingReservationService
	}
	return nil
}
