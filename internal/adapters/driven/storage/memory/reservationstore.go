package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
)

// Ensure ReservationStore implements the interface.
var _ driven.ReservationStore = (*ReservationStore)(nil)

// ReservationStore is an in-memory implementation of driven.ReservationStore.
// Nothing survives the process.
type ReservationStore struct {
	mu           sync.RWMutex
	reservations []domain.Reservation
	saves        int
}

// NewReservationStore creates a store seeded with the given reservations.
func NewReservationStore(seed ...domain.Reservation) *ReservationStore {
	return &ReservationStore{
		reservations: slices.Clone(seed),
	}
}

// Load returns a copy of the stored reservations.
func (s *ReservationStore) Load(_ context.Context) ([]domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.reservations == nil {
		return []domain.Reservation{}, nil
	}
	return slices.Clone(s.reservations), nil
}

// Save replaces the stored reservations.
func (s *ReservationStore) Save(_ context.Context, reservations []domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = slices.Clone(reservations)
	s.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (s *ReservationStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// Location identifies the store.
func (s *ReservationStore) Location() string {
	return ":memory:"
}
