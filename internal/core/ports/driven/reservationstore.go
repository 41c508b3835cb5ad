package driven

import (
	"context"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

// ReservationStore persists the full reservation set as one snapshot.
// Every mutation hands the complete set to Save, replacing what was there.
type ReservationStore interface {
	// Load returns every stored reservation in insertion order.
	// Absent or empty backing data yields an empty slice, and the
	// backing resource is created.
	Load(ctx context.Context) ([]domain.Reservation, error)

	// Save replaces the stored snapshot with reservations.
	Save(ctx context.Context, reservations []domain.Reservation) error

	// Location describes where the snapshot lives, for diagnostics.
	Location() string
}
