package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
)

// Tool names exposed to the model.
const (
	ToolFindRestaurants   = "find_restaurants"
	ToolMakeReservation   = "make_reservation"
	ToolModifyReservation = "modify_reservation"
	ToolCancelReservation = "cancel_reservation"
	ToolGetReservation    = "get_reservation"
)

// RegisterReservationTools binds the reservation operations to registry.
func RegisterReservationTools(registry *ToolRegistry, reservations driving.ReservationService) error {
	if reservations == nil {
		return fmt.Errorf("%w: reservation service is required", domain.ErrInvalidInput)
	}
	tools := reservationTools{reservations: reservations}

	registrations := []struct {
		name        string
		description string
		params      []domain.ToolParameter
		handler     ToolHandler
	}{
		{
			name:        ToolFindRestaurants,
			description: "Find restaurants matching given criteria",
			params: []domain.ToolParameter{
				{Name: "cuisine", Type: "string", Description: "Type of cuisine preferred"},
				{Name: "location", Type: "string", Description: "Preferred neighborhood or area"},
				{Name: "party_size", Type: "integer", Description: "Number of people in the party"},
				{Name: "date", Type: "string", Description: "Date of reservation in YYYY-MM-DD format"},
				{Name: "time", Type: "string", Description: "Time of reservation in HH:MM format"},
				{Name: "amenities", Type: "string", Description: "Desired amenities (outdoor, bar, etc.)"},
			},
			handler: tools.find,
		},
		{
			name:        ToolMakeReservation,
			description: "Make a restaurant reservation",
			params: []domain.ToolParameter{
				{Name: "restaurant_id", Type: "integer", Description: "ID of the restaurant", Required: true},
				{Name: "name", Type: "string", Description: "Name for the reservation", Required: true},
				{Name: "party_size", Type: "integer", Description: "Number of people in the party", Required: true},
				{Name: "date", Type: "string", Description: "Date of reservation in YYYY-MM-DD format", Required: true},
				{Name: "time", Type: "string", Description: "Time of reservation in HH:MM format", Required: true},
				{Name: "special_requests", Type: "string", Description: "Any special requests"},
			},
			handler: tools.make,
		},
		{
			name:        ToolModifyReservation,
			description: "Modify an existing reservation",
			params: []domain.ToolParameter{
				{Name: "reservation_id", Type: "string", Description: "ID of the reservation", Required: true},
				{Name: "updates", Type: "object", Description: "Fields to update (e.g., date, time, party_size)", Required: true},
			},
			handler: tools.modify,
		},
		{
			name:        ToolCancelReservation,
			description: "Cancel an existing reservation",
			params: []domain.ToolParameter{
				{Name: "reservation_id", Type: "string", Description: "ID of the reservation to cancel", Required: true},
			},
			handler: tools.cancel,
		},
		{
			name:        ToolGetReservation,
			description: "Show the details of an existing reservation",
			params: []domain.ToolParameter{
				{Name: "reservation_id", Type: "string", Description: "ID of the reservation to show", Required: true},
			},
			handler: tools.get,
		},
	}

	for _, reg := range registrations {
		if err := registry.Register(reg.name, reg.description, reg.params, reg.handler); err != nil {
			return fmt.Errorf("register %s: %w", reg.name, err)
		}
	}
	return nil
}

// reservationTools adapts untyped tool arguments to ReservationService calls.
type reservationTools struct {
	reservations driving.ReservationService
}

func (t reservationTools) find(ctx context.Context, args map[string]any) (domain.Outcome, error) {
	var criteria domain.SearchCriteria
	var err error
	if criteria.Cuisine, err = optionalString(args, "cuisine"); err != nil {
		return domain.Outcome{}, err
	}
	if criteria.Location, err = optionalString(args, "location"); err != nil {
		return domain.Outcome{}, err
	}
	if criteria.Date, err = optionalString(args, "date"); err != nil {
		return domain.Outcome{}, err
	}
	if criteria.Time, err = optionalString(args, "time"); err != nil {
		return domain.Outcome{}, err
	}
	if criteria.PartySize, err = optionalInt(args, "party_size"); err != nil {
		return domain.Outcome{}, err
	}
	if criteria.Amenities, err = amenityList(args["amenities"]); err != nil {
		return domain.Outcome{}, err
	}

	results, err := t.reservations.Find(ctx, criteria)
	if err != nil {
		return rejectionOutcome(err)
	}
	return domain.Success(map[string]any{"restaurants": results}), nil
}

func (t reservationTools) make(ctx context.Context, args map[string]any) (domain.Outcome, error) {
	var req domain.ReservationRequest
	var err error
	if req.RestaurantID, err = optionalInt(args, "restaurant_id"); err != nil {
		return domain.Outcome{}, err
	}
	if req.Name, err = optionalString(args, "name"); err != nil {
		return domain.Outcome{}, err
	}
	if req.PartySize, err = optionalInt(args, "party_size"); err != nil {
		return domain.Outcome{}, err
	}
	if req.Date, err = optionalString(args, "date"); err != nil {
		return domain.Outcome{}, err
	}
	if req.Time, err = optionalString(args, "time"); err != nil {
		return domain.Outcome{}, err
	}
	if req.SpecialRequests, err = optionalString(args, "special_requests"); err != nil {
		return domain.Outcome{}, err
	}

	booking, err := t.reservations.Create(ctx, req)
	if err != nil {
		return rejectionOutcome(err)
	}
	return domain.Success(booking), nil
}

func (t reservationTools) modify(ctx context.Context, args map[string]any) (domain.Outcome, error) {
	id, err := optionalString(args, "reservation_id")
	if err != nil {
		return domain.Outcome{}, err
	}
	updates, ok := args["updates"].(map[string]any)
	if !ok {
		return domain.Outcome{}, fmt.Errorf("%w: updates must be an object", domain.ErrInvalidInput)
	}

	patch, err := domain.ParseReservationPatch(updates)
	if err != nil {
		return rejectionOutcome(err)
	}
	updated, err := t.reservations.Update(ctx, id, patch)
	if err != nil {
		return rejectionOutcome(err)
	}
	return domain.Success(map[string]any{
		"message": "Reservation updated",
		"updated": updated,
	}), nil
}

func (t reservationTools) cancel(ctx context.Context, args map[string]any) (domain.Outcome, error) {
	id, err := optionalString(args, "reservation_id")
	if err != nil {
		return domain.Outcome{}, err
	}
	if err := t.reservations.Cancel(ctx, id); err != nil {
		return rejectionOutcome(err)
	}
	return domain.Success(map[string]any{"message": "Reservation canceled"}), nil
}

func (t reservationTools) get(ctx context.Context, args map[string]any) (domain.Outcome, error) {
	id, err := optionalString(args, "reservation_id")
	if err != nil {
		return domain.Outcome{}, err
	}
	reservation, err := t.reservations.Get(ctx, id)
	if err != nil {
		return rejectionOutcome(err)
	}

	payload := map[string]any{"reservation": reservation}
	if restaurant, err := t.reservations.Restaurant(reservation.RestaurantID); err == nil {
		payload["restaurant_name"] = restaurant.Name
	}
	return domain.Success(payload), nil
}

// rejectionOutcome turns a business-rule rejection into a failure outcome
// and passes any other error through.
func rejectionOutcome(err error) (domain.Outcome, error) {
	if rejection, ok := domain.AsRejection(err); ok {
		return domain.Failure(rejection), nil
	}
	return domain.Outcome{}, err
}

// optionalString reads a text argument; absent and null read as "".
func optionalString(args map[string]any, key string) (string, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be text, got %T", domain.ErrInvalidInput, key, value)
	}
	return s, nil
}

// optionalInt reads a whole-number argument from a JSON number or a
// numeric string; absent and null read as 0.
func optionalInt(args map[string]any, key string) (int, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return 0, nil
	}
	n, err := domain.CoerceInt(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// amenityList accepts a list of names or a comma-separated string.
func amenityList(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return splitAmenities(v), nil
	case []string:
		return splitAmenities(strings.Join(v, ",")), nil
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: amenities must be text, got %T", domain.ErrInvalidInput, item)
			}
			names = append(names, s)
		}
		return splitAmenities(strings.Join(names, ",")), nil
	default:
		return nil, fmt.Errorf("%w: amenities must be a list or text, got %T", domain.ErrInvalidInput, value)
	}
}

func splitAmenities(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
