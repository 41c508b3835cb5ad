package services

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/logger"
)

// Ensure ReservationService implements the interface.
var _ driving.ReservationService = (*ReservationService)(nil)

// Reservation ids run from RES-10000 to RES-99999.
const (
	minReservationSeq = 10000
	maxReservationSeq = 99999
)

// slotWindow is the distance under which two bookings share a seating.
const slotWindow = time.Hour

// clockLayout is the HH:MM format of reservation times.
const clockLayout = "15:04"

// SuggestedTimes returns the half-hour slots offered when a slot is full:
// 18:00 through 21:30.
func SuggestedTimes() []string {
	slots := make([]string, 0, 8)
	for hour := 18; hour < 22; hour++ {
		for _, minute := range []int{0, 30} {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// ReservationService holds the restaurant catalog and the reservation set.
// Every mutation writes the full set through the ReservationStore before it
// becomes visible.
type ReservationService struct {
	mu           sync.Mutex
	restaurants  []domain.Restaurant
	reservations []domain.Reservation
	store        driven.ReservationStore
	events       driven.EventPublisher
	nextSeq      int
}

// NewReservationService creates a reservation service over a fixed catalog
// and loads the stored reservation snapshot.
func NewReservationService(
	ctx context.Context,
	restaurants []domain.Restaurant,
	store driven.ReservationStore,
) (*ReservationService, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: reservation store is required", domain.ErrInvalidInput)
	}

	reservations, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading reservations from %s: %w", store.Location(), err)
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	logger.Debug("Loaded %d reservations from %s", len(reservations), store.Location())

	return &ReservationService{
		restaurants:  slices.Clone(restaurants),
		reservations: reservations,
		store:        store,
		nextSeq:      seedSequence(reservations),
	}, nil
}

// SetEventPublisher sets where lifecycle events are announced.
func (s *ReservationService) SetEventPublisher(events driven.EventPublisher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = events
}

// Find returns catalog entries matching every supplied filter.
func (s *ReservationService) Find(
	_ context.Context,
	criteria domain.SearchCriteria,
) ([]domain.RestaurantSummary, error) {
	var at time.Time
	if criteria.ChecksAvailability() {
		t, err := time.Parse(clockLayout, criteria.Time)
		if err != nil {
			return nil, domain.Reject(domain.RejectInvalidTime, "Time must be in HH:MM format.")
		}
		at = t
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]domain.RestaurantSummary, 0, len(s.restaurants))
	for i := range s.restaurants {
		r := &s.restaurants[i]
		if criteria.Cuisine != "" && !strings.EqualFold(r.Cuisine, criteria.Cuisine) {
			continue
		}
		if criteria.Location != "" && !strings.EqualFold(r.Location, criteria.Location) {
			continue
		}
		if !hasAllAmenities(r, criteria.Amenities) {
			continue
		}
		if criteria.PartySize > 0 && r.Capacity < criteria.PartySize {
			continue
		}
		if criteria.ChecksAvailability() {
			booked := s.bookedNear(r.ID, criteria.Date, at)
			if float64(booked) >= float64(r.Capacity)/4 {
				continue
			}
		}
		results = append(results, r.Summary())
	}
	return results, nil
}

// Create books a table after checking the request, the restaurant's capacity
// and the slot heuristic.
func (s *ReservationService) Create(ctx context.Context, req domain.ReservationRequest) (*domain.Booking, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, domain.Reject(domain.RejectMissingName, "Please provide a name for the reservation")
	}
	if req.PartySize <= 0 {
		return nil, domain.Reject(domain.RejectInvalidPartySize, "Party size must be at least 1")
	}
	if strings.TrimSpace(req.Date) == "" {
		return nil, domain.Reject(domain.RejectMissingDate, "Please provide a reservation date")
	}
	if strings.TrimSpace(req.Time) == "" {
		return nil, domain.Reject(domain.RejectMissingTime, "Please provide a reservation time")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	restaurant := s.restaurant(req.RestaurantID)
	if restaurant == nil {
		return nil, domain.Reject(domain.RejectRestaurantNotFound, "Restaurant not found")
	}
	if req.PartySize > restaurant.Capacity {
		return nil, domain.Reject(domain.RejectOverCapacity,
			"Party size exceeds restaurant capacity of %d, Book another restaurant.", restaurant.Capacity)
	}

	at, err := time.Parse(clockLayout, req.Time)
	if err != nil {
		return nil, domain.Reject(domain.RejectInvalidTime, "Time must be in HH:MM format.")
	}
	if s.bookedNear(restaurant.ID, req.Date, at) >= restaurant.Capacity/4 {
		return nil, domain.Reject(domain.RejectSlotFull,
			"The time slot %s is currently full. Please try a different time.", req.Time).
			WithSuggestions(SuggestedTimes()...)
	}

	id, err := s.mintID()
	if err != nil {
		return nil, err
	}

	reservation := domain.Reservation{
		ID:              id,
		RestaurantID:    restaurant.ID,
		Name:            req.Name,
		PartySize:       req.PartySize,
		Date:            req.Date,
		Time:            req.Time,
		SpecialRequests: req.SpecialRequests,
	}
	next := append(slices.Clone(s.reservations), reservation)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	logger.Info("Created reservation %s at %s for %d on %s %s",
		id, restaurant.Name, req.PartySize, req.Date, req.Time)
	s.publish(ctx, domain.EventReservationCreated, reservation)

	return &domain.Booking{
		ReservationID:  id,
		RestaurantName: restaurant.Name,
		Date:           req.Date,
		Time:           req.Time,
		PartySize:      req.PartySize,
	}, nil
}

// Update overwrites the fields set in patch. Capacity and slot rules are
// not re-checked.
func (s *ReservationService) Update(
	ctx context.Context,
	id string,
	patch domain.ReservationPatch,
) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, domain.Reject(domain.RejectReservationNotFound, "Reservation not found")
	}

	next := slices.Clone(s.reservations)
	patch.Apply(&next[idx])
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	updated := next[idx]
	logger.Info("Updated reservation %s: %s", id, strings.Join(patch.Fields(), ", "))
	s.publish(ctx, domain.EventReservationUpdated, updated)

	return &updated, nil
}

// Cancel removes a reservation.
func (s *ReservationService) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Reject(domain.RejectReservationNotFound, "Reservation not found")
	}

	cancelled := s.reservations[idx]
	next := slices.Delete(slices.Clone(s.reservations), idx, idx+1)
	if err := s.commit(ctx, next); err != nil {
		return err
	}

	logger.Info("Cancelled reservation %s", id)
	s.publish(ctx, domain.EventReservationCancelled, cancelled)
	return nil
}

// Get returns one reservation.
func (s *ReservationService) Get(_ context.Context, id string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, domain.Reject(domain.RejectReservationNotFound, "Reservation not found")
	}
	r := s.reservations[idx]
	return &r, nil
}

// List returns every reservation in booking order.
func (s *ReservationService) List(_ context.Context) ([]domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.reservations), nil
}

// Restaurants returns the full catalog.
func (s *ReservationService) Restaurants() []domain.Restaurant {
	return slices.Clone(s.restaurants)
}

// Restaurant returns one catalog entry by id.
func (s *ReservationService) Restaurant(id int) (*domain.Restaurant, error) {
	r := s.restaurant(id)
	if r == nil {
		return nil, domain.Reject(domain.RejectRestaurantNotFound, "Restaurant not found")
	}
	found := *r
	return &found, nil
}

// RestaurantByName finds a catalog entry by name, ignoring case and
// surrounding whitespace.
func (s *ReservationService) RestaurantByName(name string) (*domain.Restaurant, error) {
	name = strings.TrimSpace(name)
	for i := range s.restaurants {
		if strings.EqualFold(s.restaurants[i].Name, name) {
			found := s.restaurants[i]
			return &found, nil
		}
	}
	return nil, domain.Reject(domain.RejectRestaurantNotFound, "Restaurant not found")
}

// commit persists next and makes it the current set (caller must hold lock).
func (s *ReservationService) commit(ctx context.Context, next []domain.Reservation) error {
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("saving reservations to %s: %w", s.store.Location(), err)
	}
	s.reservations = next
	return nil
}

// publish announces an event; failures are logged and otherwise ignored
// (caller must hold lock).
func (s *ReservationService) publish(ctx context.Context, kind domain.EventType, r domain.Reservation) {
	if s.events == nil {
		return
	}
	event := domain.ReservationEvent{
		Type:        kind,
		Reservation: r,
		OccurredAt:  time.Now().UTC(),
	}
	if restaurant := s.restaurant(r.RestaurantID); restaurant != nil {
		event.RestaurantName = restaurant.Name
	}
	if err := s.events.Publish(ctx, event); err != nil {
		logger.Warn("Publishing %s for %s failed: %v", kind, r.ID, err)
	}
}

// restaurant returns the catalog entry with id, or nil.
func (s *ReservationService) restaurant(id int) *domain.Restaurant {
	for i := range s.restaurants {
		if s.restaurants[i].ID == id {
			return &s.restaurants[i]
		}
	}
	return nil
}

// indexOf returns the position of reservation id, or -1 (caller must hold lock).
func (s *ReservationService) indexOf(id string) int {
	return slices.IndexFunc(s.reservations, func(r domain.Reservation) bool {
		return r.ID == id
	})
}

// bookedNear counts reservations at a restaurant on date whose time lies
// strictly within slotWindow of at. Unparsable times are skipped
// (caller must hold lock).
func (s *ReservationService) bookedNear(restaurantID int, date string, at time.Time) int {
	count := 0
	for _, r := range s.reservations {
		if r.RestaurantID != restaurantID || r.Date != date {
			continue
		}
		t, err := time.Parse(clockLayout, r.Time)
		if err != nil {
			continue
		}
		diff := t.Sub(at)
		if diff < 0 {
			diff = -diff
		}
		if diff < slotWindow {
			count++
		}
	}
	return count
}

// mintID returns the next unused reservation id (caller must hold lock).
// The counter only moves forward; once it passes the top of the range the
// lowest free id is used.
func (s *ReservationService) mintID() (string, error) {
	taken := make(map[string]bool, len(s.reservations))
	for _, r := range s.reservations {
		taken[r.ID] = true
	}

	for seq := s.nextSeq; seq <= maxReservationSeq; seq++ {
		id := formatReservationID(seq)
		if !taken[id] {
			s.nextSeq = seq + 1
			return id, nil
		}
	}
	for seq := minReservationSeq; seq <= maxReservationSeq; seq++ {
		id := formatReservationID(seq)
		if !taken[id] {
			return id, nil
		}
	}
	return "", domain.Reject(domain.RejectIDsExhausted,
		"No reservation ids are left. Please cancel an old reservation first.")
}

func formatReservationID(seq int) string {
	return fmt.Sprintf("%s%05d", domain.ReservationIDPrefix, seq)
}

// seedSequence starts the counter after the highest stored id.
func seedSequence(reservations []domain.Reservation) int {
	next := minReservationSeq
	for _, r := range reservations {
		digits, ok := strings.CutPrefix(r.ID, domain.ReservationIDPrefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		if n >= next {
			next = n + 1
		}
	}
	return next
}

func hasAllAmenities(r *domain.Restaurant, amenities []string) bool {
	for _, a := range amenities {
		if !r.HasAmenity(a) {
			return false
		}
	}
	return true
}
