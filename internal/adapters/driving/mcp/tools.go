package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

// FindInput is the input schema for the find_restaurants tool.
type FindInput struct {
	Cuisine   string   `json:"cuisine,omitempty" jsonschema:"type of cuisine preferred"`
	Location  string   `json:"location,omitempty" jsonschema:"preferred neighborhood or area"`
	PartySize int      `json:"party_size,omitempty" jsonschema:"number of people in the party"`
	Date      string   `json:"date,omitempty" jsonschema:"date of reservation in YYYY-MM-DD format"`
	Time      string   `json:"time,omitempty" jsonschema:"time of reservation in HH:MM format"`
	Amenities []string `json:"amenities,omitempty" jsonschema:"desired amenities such as outdoor or bar"`
}

// FindOutput is the output schema for the find_restaurants tool.
type FindOutput struct {
	Restaurants []domain.RestaurantSummary `json:"restaurants"`
	Count       int                        `json:"count"`
}

// MakeInput is the input schema for the make_reservation tool.
type MakeInput struct {
	RestaurantID    int    `json:"restaurant_id" jsonschema:"ID of the restaurant"`
	Name            string `json:"name" jsonschema:"name for the reservation"`
	PartySize       int    `json:"party_size" jsonschema:"number of people in the party"`
	Date            string `json:"date" jsonschema:"date of reservation in YYYY-MM-DD format"`
	Time            string `json:"time" jsonschema:"time of reservation in HH:MM format"`
	SpecialRequests string `json:"special_requests,omitempty" jsonschema:"any special requests"`
}

// BookingOutput is the output schema for the make_reservation tool.
type BookingOutput struct {
	ReservationID  string `json:"reservation_id"`
	RestaurantName string `json:"restaurant_name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	PartySize      int    `json:"party_size"`
}

// ModifyInput is the input schema for the modify_reservation tool.
type ModifyInput struct {
	ReservationID string         `json:"reservation_id" jsonschema:"ID of the reservation"`
	Updates       map[string]any `json:"updates" jsonschema:"fields to update, e.g. date, time, party_size"`
}

// ReservationInput identifies one reservation.
type ReservationInput struct {
	ReservationID string `json:"reservation_id" jsonschema:"ID of the reservation"`
}

// ReservationOutput describes one reservation.
type ReservationOutput struct {
	Reservation    domain.Reservation `json:"reservation"`
	RestaurantName string             `json:"restaurant_name"`
}

// CancelOutput is the output schema for the cancel_reservation tool.
type CancelOutput struct {
	ReservationID string `json:"reservation_id"`
	Cancelled     bool   `json:"cancelled"`
}

// ChatInput is the input schema for the chat tool.
type ChatInput struct {
	Message   string `json:"message" jsonschema:"what to say to the FoodieSpot assistant"`
	SessionID string `json:"session_id,omitempty" jsonschema:"conversation to continue; omit to start a new one"`
}

// ChatOutput is the output schema for the chat tool.
type ChatOutput struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_restaurants",
		Description: "Find restaurants matching given criteria",
	}, s.handleFind)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "make_reservation",
		Description: "Make a restaurant reservation",
	}, s.handleMake)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "modify_reservation",
		Description: "Modify an existing reservation",
	}, s.handleModify)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cancel_reservation",
		Description: "Cancel an existing reservation",
	}, s.handleCancel)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_reservation",
		Description: "Show the details of an existing reservation",
	}, s.handleGet)

	if s.ports.Sessions != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "chat",
			Description: "Talk to the FoodieSpot reservation assistant in plain language",
		}, s.handleChat)
	}
}

func (s *Server) handleFind(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindInput,
) (*mcp.CallToolResult, FindOutput, error) {
	results, err := s.ports.Reservations.Find(ctx, domain.SearchCriteria{
		Cuisine:   input.Cuisine,
		Location:  input.Location,
		PartySize: input.PartySize,
		Date:      input.Date,
		Time:      input.Time,
		Amenities: input.Amenities,
	})
	if err != nil {
		return nil, FindOutput{}, err
	}
	if results == nil {
		results = []domain.RestaurantSummary{}
	}
	return nil, FindOutput{Restaurants: results, Count: len(results)}, nil
}

func (s *Server) handleMake(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MakeInput,
) (*mcp.CallToolResult, BookingOutput, error) {
	booking, err := s.ports.Reservations.Create(ctx, domain.ReservationRequest{
		RestaurantID:    input.RestaurantID,
		Name:            input.Name,
		PartySize:       input.PartySize,
		Date:            input.Date,
		Time:            input.Time,
		SpecialRequests: input.SpecialRequests,
	})
	if err != nil {
		return nil, BookingOutput{}, err
	}
	return nil, BookingOutput{
		ReservationID:  booking.ReservationID,
		RestaurantName: booking.RestaurantName,
		Date:           booking.Date,
		Time:           booking.Time,
		PartySize:      booking.PartySize,
	}, nil
}

func (s *Server) handleModify(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ModifyInput,
) (*mcp.CallToolResult, ReservationOutput, error) {
	patch, err := domain.ParseReservationPatch(input.Updates)
	if err != nil {
		return nil, ReservationOutput{}, err
	}
	updated, err := s.ports.Reservations.Update(ctx, input.ReservationID, patch)
	if err != nil {
		return nil, ReservationOutput{}, err
	}
	return nil, s.describe(*updated), nil
}

func (s *Server) handleCancel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReservationInput,
) (*mcp.CallToolResult, CancelOutput, error) {
	if err := s.ports.Reservations.Cancel(ctx, input.ReservationID); err != nil {
		return nil, CancelOutput{}, err
	}
	return nil, CancelOutput{ReservationID: input.ReservationID, Cancelled: true}, nil
}

func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReservationInput,
) (*mcp.CallToolResult, ReservationOutput, error) {
	r, err := s.ports.Reservations.Get(ctx, input.ReservationID)
	if err != nil {
		return nil, ReservationOutput{}, err
	}
	return nil, s.describe(*r), nil
}

// handleChat runs one assistant turn and returns the whole reply.
func (s *Server) handleChat(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ChatInput,
) (*mcp.CallToolResult, ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, ChatOutput{}, fmt.Errorf("%w: message is empty", domain.ErrInvalidInput)
	}

	id, assistant, err := s.ports.Sessions.Acquire(input.SessionID)
	if err != nil {
		return nil, ChatOutput{}, err
	}

	var reply strings.Builder
	for fragment, err := range assistant.Respond(ctx, input.Message) {
		if err != nil {
			return nil, ChatOutput{}, err
		}
		reply.WriteString(fragment)
	}
	return nil, ChatOutput{Reply: reply.String(), SessionID: id}, nil
}

func (s *Server) describe(r domain.Reservation) ReservationOutput {
	out := ReservationOutput{Reservation: r}
	if restaurant, err := s.ports.Reservations.Restaurant(r.RestaurantID); err == nil {
		out.RestaurantName = restaurant.Name
	}
	return out
}
