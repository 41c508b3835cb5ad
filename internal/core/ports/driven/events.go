package driven

import (
	"context"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

// EventPublisher announces reservation lifecycle events to other systems.
// Publishing is best-effort: callers log failures and carry on.
type EventPublisher interface {
	// Publish sends one event.
	Publish(ctx context.Context, event domain.ReservationEvent) error

	// Close releases the broker connection.
	Close() error
}
