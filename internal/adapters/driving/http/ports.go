package httpapi

import (
	"net/http"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
)

// Ports aggregates the driving ports served over HTTP.
type Ports struct {
	// Reservations searches the catalog and manages bookings.
	Reservations driving.ReservationService

	// Sessions backs /api/chat. Optional: chat answers 503 without it.
	Sessions driving.SessionPool

	// MCP is mounted at /mcp when set.
	MCP http.Handler
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Reservations == nil {
		return ErrMissingReservationService
	}
	return nil
}
