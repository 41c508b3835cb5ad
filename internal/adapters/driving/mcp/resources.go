package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for FoodieSpot resources.
	uriScheme = "foodiespot://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "restaurants",
		Name:        "restaurants",
		Description: "The FoodieSpot restaurant catalog with opening hours",
		MIMEType:    "application/json",
	}, s.handleRestaurantsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "reservations",
		Name:        "reservations",
		Description: "Every reservation in booking order",
		MIMEType:    "application/json",
	}, s.handleReservationsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "reservations/{reservationId}",
		Name:        "reservation",
		Description: "A single reservation",
		MIMEType:    "application/json",
	}, s.handleReservationResource)
}

// handleRestaurantsResource returns the catalog.
func (s *Server) handleRestaurantsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.Reservations.Restaurants())
}

// handleReservationsResource returns every reservation.
func (s *Server) handleReservationsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	reservations, err := s.ports.Reservations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}
	out := make([]ReservationOutput, len(reservations))
	for i := range reservations {
		out[i] = s.describe(reservations[i])
	}
	return jsonResource(req.Params.URI, out)
}

// handleReservationResource returns one reservation.
func (s *Server) handleReservationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// foodiespot://reservations/{reservationId}
	id := extractReservationID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	r, err := s.ports.Reservations.Get(ctx, id)
	if err != nil {
		if rejection, ok := domain.AsRejection(err); ok && rejection.Kind == domain.RejectReservationNotFound {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting reservation: %w", err)
	}
	return jsonResource(req.Params.URI, s.describe(*r))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractReservationID extracts the id from a URI like foodiespot://reservations/{reservationId}.
func extractReservationID(uri string) string {
	const prefix = uriScheme + "reservations/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
