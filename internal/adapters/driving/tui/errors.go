package tui

import "errors"

// ErrMissingReservationService is returned when the reservation service is not provided.
var ErrMissingReservationService = errors.New("tui: reservation service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
