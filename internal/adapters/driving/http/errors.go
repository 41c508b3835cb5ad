// Package httpapi exposes the reservation service and the assistant over a
// JSON HTTP API built on gin. Chat replies stream as server-sent events.
package httpapi

import "errors"

// ErrMissingReservationService is returned when the reservation service is not provided.
var ErrMissingReservationService = errors.New("http: reservation service is required")
