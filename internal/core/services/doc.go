// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// ReservationService owns the catalog and the reservation set. The
// assistant reaches it only through the tool registry.
//
// Services are pure Go with no CGO or external dependencies.
package services
