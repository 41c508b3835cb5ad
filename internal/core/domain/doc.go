// Package domain defines the core business entities for FoodieSpot.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Restaurant: A fixed catalog entry
//   - Reservation: A booking held against a restaurant
//   - Outcome: The success or failure envelope returned by tools
//   - ChatTurn: One message in a conversation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
