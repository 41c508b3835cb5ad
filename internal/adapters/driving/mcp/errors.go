// Package mcp provides an MCP (Model Context Protocol) server adapter for FoodieSpot.
// It lets AI assistants search restaurants and manage reservations directly.
package mcp

import "errors"

// ErrMissingReservationService is returned when the reservation service is not provided.
var ErrMissingReservationService = errors.New("mcp: reservation service is required")
