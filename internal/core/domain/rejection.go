package domain

import (
	"errors"
	"fmt"
)

// RejectionKind classifies a business-rule rejection.
type RejectionKind string

// Rejection kinds raised by the reservation service.
const (
	RejectMissingName         RejectionKind = "missing_name"
	RejectInvalidPartySize    RejectionKind = "invalid_party_size"
	RejectMissingDate         RejectionKind = "missing_date"
	RejectMissingTime         RejectionKind = "missing_time"
	RejectInvalidTime         RejectionKind = "invalid_time"
	RejectRestaurantNotFound  RejectionKind = "restaurant_not_found"
	RejectOverCapacity        RejectionKind = "over_capacity"
	RejectSlotFull            RejectionKind = "slot_full"
	RejectReservationNotFound RejectionKind = "reservation_not_found"
	RejectUnknownField        RejectionKind = "unknown_field"
	RejectInvalidField        RejectionKind = "invalid_field"
	RejectIDsExhausted        RejectionKind = "ids_exhausted"
)

// Rejection is a business-rule failure. It is reported to the user
// rather than treated as an infrastructure error.
type Rejection struct {
	Kind        RejectionKind
	Message     string
	Suggestions []string
}

// Reject creates a rejection with a formatted message.
func Reject(kind RejectionKind, format string, args ...any) *Rejection {
	return &Rejection{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithSuggestions attaches alternatives the user could try.
func (r *Rejection) WithSuggestions(suggestions ...string) *Rejection {
	r.Suggestions = suggestions
	return r
}

// Error implements error.
func (r *Rejection) Error() string {
	return r.Message
}

// Is lets errors.Is match rejections against the domain sentinels.
func (r *Rejection) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return r.Kind == RejectRestaurantNotFound || r.Kind == RejectReservationNotFound
	case ErrUnknownField:
		return r.Kind == RejectUnknownField
	case ErrIDSpaceExhausted:
		return r.Kind == RejectIDsExhausted
	case ErrInvalidInput:
		switch r.Kind {
		case RejectMissingName, RejectInvalidPartySize, RejectMissingDate, RejectMissingTime,
			RejectInvalidTime, RejectInvalidField, RejectUnknownField:
			return true
		}
	}
	return false
}

// AsRejection unwraps err to a rejection if it carries one.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
