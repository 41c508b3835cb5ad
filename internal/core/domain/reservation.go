package domain

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ReservationIDPrefix starts every reservation id.
const ReservationIDPrefix = "RES-"

// Reservation is a booking held against a restaurant.
// The JSON form is the on-disk snapshot format.
type Reservation struct {
	ID              string `json:"id"`
	RestaurantID    int    `json:"restaurant_id"`
	Name            string `json:"name"`
	PartySize       int    `json:"party_size"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	SpecialRequests string `json:"special_requests"`
}

// ReservationRequest carries the inputs of a new booking.
type ReservationRequest struct {
	RestaurantID    int
	Name            string
	PartySize       int
	Date            string
	Time            string
	SpecialRequests string
}

// Booking is the confirmation returned for a new reservation.
type Booking struct {
	ReservationID  string `json:"reservation_id"`
	RestaurantName string `json:"restaurant_name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	PartySize      int    `json:"party_size"`
}

// ReservationPatch lists the fields an update may overwrite.
// A nil field is left unchanged.
type ReservationPatch struct {
	RestaurantID    *int
	Name            *string
	PartySize       *int
	Date            *string
	Time            *string
	SpecialRequests *string
}

// patchFields are the keys accepted by ParseReservationPatch.
var patchFields = map[string]bool{
	"restaurant_id":    true,
	"name":             true,
	"party_size":       true,
	"date":             true,
	"time":             true,
	"special_requests": true,
}

// ParseReservationPatch builds a patch from an untyped mapping.
// Unknown keys produce a RejectUnknownField rejection; values of the wrong
// type produce RejectInvalidField.
func ParseReservationPatch(updates map[string]any) (ReservationPatch, error) {
	var unknown []string
	for key := range updates {
		if !patchFields[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return ReservationPatch{}, Reject(RejectUnknownField,
			"Cannot update unknown reservation fields: %s", strings.Join(unknown, ", "))
	}

	var p ReservationPatch
	for key, value := range updates {
		switch key {
		case "restaurant_id", "party_size":
			n, err := CoerceInt(value)
			if err != nil {
				return ReservationPatch{}, Reject(RejectInvalidField, "Field %s must be a whole number", key)
			}
			if key == "restaurant_id" {
				p.RestaurantID = &n
			} else {
				p.PartySize = &n
			}
		default:
			s, ok := value.(string)
			if !ok {
				return ReservationPatch{}, Reject(RejectInvalidField, "Field %s must be text", key)
			}
			switch key {
			case "name":
				p.Name = &s
			case "date":
				p.Date = &s
			case "time":
				p.Time = &s
			case "special_requests":
				p.SpecialRequests = &s
			}
		}
	}
	return p, nil
}

// IsEmpty returns true when the patch changes nothing.
func (p ReservationPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Fields returns the names of the fields the patch sets.
func (p ReservationPatch) Fields() []string {
	var fields []string
	if p.RestaurantID != nil {
		fields = append(fields, "restaurant_id")
	}
	if p.Name != nil {
		fields = append(fields, "name")
	}
	if p.PartySize != nil {
		fields = append(fields, "party_size")
	}
	if p.Date != nil {
		fields = append(fields, "date")
	}
	if p.Time != nil {
		fields = append(fields, "time")
	}
	if p.SpecialRequests != nil {
		fields = append(fields, "special_requests")
	}
	return fields
}

// Apply overwrites the set fields of r.
func (p ReservationPatch) Apply(r *Reservation) {
	if p.RestaurantID != nil {
		r.RestaurantID = *p.RestaurantID
	}
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.PartySize != nil {
		r.PartySize = *p.PartySize
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.SpecialRequests != nil {
		r.SpecialRequests = *p.SpecialRequests
	}
}

// CoerceInt converts a decoded JSON value to an int.
// Integral floats, ints and numeric strings are accepted.
func CoerceInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %v is not a whole number", ErrInvalidInput, v)
		}
		// -MinInt is a power of two, so both bounds are exact floats.
		if v < float64(math.MinInt) || v >= -float64(math.MinInt) {
			return 0, fmt.Errorf("%w: %v is out of range", ErrInvalidInput, v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: unexpected %T", ErrInvalidInput, value)
	}
}

// EventType names a reservation lifecycle event.
type EventType string

// Reservation lifecycle events.
const (
	EventReservationCreated   EventType = "reservation.created"
	EventReservationUpdated   EventType = "reservation.updated"
	EventReservationCancelled EventType = "reservation.cancelled"
)

// ReservationEvent is published after a reservation mutation is persisted.
type ReservationEvent struct {
	ID             string      `json:"id"`
	Type           EventType   `json:"type"`
	Reservation    Reservation `json:"reservation"`
	RestaurantName string      `json:"restaurant_name,omitempty"`
	OccurredAt     time.Time   `json:"occurred_at"`
}
