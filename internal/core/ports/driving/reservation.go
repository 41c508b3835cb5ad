package driving

import (
	"context"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

// ReservationService searches the catalog and manages reservations.
// Business-rule failures are returned as *domain.Rejection errors.
type ReservationService interface {
	// Find returns catalog entries matching every supplied filter.
	Find(ctx context.Context, criteria domain.SearchCriteria) ([]domain.RestaurantSummary, error)

	// Create books a table and persists it.
	Create(ctx context.Context, req domain.ReservationRequest) (*domain.Booking, error)

	// Update overwrites the fields set in patch and persists the result.
	Update(ctx context.Context, id string, patch domain.ReservationPatch) (*domain.Reservation, error)

	// Cancel removes a reservation.
	Cancel(ctx context.Context, id string) error

	// Get returns one reservation.
	Get(ctx context.Context, id string) (*domain.Reservation, error)

	// List returns every reservation in booking order.
	List(ctx context.Context) ([]domain.Reservation, error)

	// Restaurants returns the full catalog.
	Restaurants() []domain.Restaurant

	// Restaurant returns one catalog entry by id.
	Restaurant(id int) (*domain.Restaurant, error)

	// RestaurantByName finds a catalog entry by name, ignoring case.
	RestaurantByName(name string) (*domain.Restaurant, error)
}
