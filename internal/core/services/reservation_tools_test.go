package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

func newTestRegistry(t *testing.T, seed ...domain.Reservation) (*ToolRegistry, *ReservationService) {
	t.Helper()
	service, _ := newTestReservationService(t, seed...)
	registry := NewToolRegistry()
	require.NoError(t, RegisterReservationTools(registry, service))
	return registry, service
}

func outcomeJSON(t *testing.T, outcome domain.Outcome) map[string]any {
	t.Helper()
	raw, err := json.Marshal(outcome)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return decoded
}

func TestRegisterReservationTools(t *testing.T) {
	registry, _ := newTestRegistry(t)

	assert.Equal(t, []string{
		ToolFindRestaurants, ToolMakeReservation, ToolModifyReservation, ToolCancelReservation, ToolGetReservation,
	}, registry.Names())
	assert.Contains(t, registry.Describe(), "find_restaurants: Find restaurants matching given criteria\nParameters: {")

	err := RegisterReservationTools(NewToolRegistry(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFindRestaurantsTool(t *testing.T) {
	ctx := context.Background()
	registry, _ := newTestRegistry(t)

	t.Run("no arguments lists the catalog", func(t *testing.T) {
		outcome, err := registry.Invoke(ctx, ToolFindRestaurants, map[string]any{})
		require.NoError(t, err)

		decoded := outcomeJSON(t, outcome)
		assert.Equal(t, true, decoded["success"])
		assert.Len(t, decoded["restaurants"], 25)
	})

	t.Run("amenities as a comma separated string", func(t *testing.T) {
		outcome, err := registry.Invoke(ctx, ToolFindRestaurants, map[string]any{"amenities": "bar, beach theme"})
		require.NoError(t, err)
		assert.Len(t, outcomeJSON(t, outcome)["restaurants"], 1)
	})

	t.Run("amenities as a list and numeric string party size", func(t *testing.T) {
		outcome, err := registry.Invoke(ctx, ToolFindRestaurants, map[string]any{
			"amenities":  []any{"bar"},
			"party_size": "50",
		})
		require.NoError(t, err)
		for _, r := range outcomeJSON(t, outcome)["restaurants"].([]any) {
			assert.GreaterOrEqual(t, r.(map[string]any)["capacity"], float64(50))
		}
	})

	t.Run("wrong type is a handler error", func(t *testing.T) {
		_, err := registry.Invoke(ctx, ToolFindRestaurants, map[string]any{"cuisine": 42.0})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("bad time is a failure outcome", func(t *testing.T) {
		outcome, err := registry.Invoke(ctx, ToolFindRestaurants, map[string]any{"date": "2026-11-20", "time": "dinner"})
		require.NoError(t, err)
		assert.False(t, outcome.OK())
	})
}

func TestMakeReservationTool(t *testing.T) {
	ctx := context.Background()
	registry, service := newTestRegistry(t)

	t.Run("success", func(t *testing.T) {
		outcome, err := registry.Invoke(ctx, ToolMakeReservation, map[string]any{
			"restaurant_id": float64(1),
			"name":          "Asha",
			"party_size":    "4",
			"date":          "2026-11-20",
			"time":          "19:00",
		})
		require.NoError(t, err)

		decoded := outcomeJSON(t, outcome)
		assert.Equal(t, true, decoded["success"])
		assert.Equal(t, "Taj Mahal Bistro", decoded["restaurant_name"])
		assert.Regexp(t, `^RES-\d{5}$`, decoded["reservation_id"])
		assert.Equal(t, float64(4), decoded["party_size"])

		list, _ := service.List(ctx)
		assert.Len(t, list, 1)
	})

	t.Run("over capacity is a failure outcome", func(t *testing.T) {
		outcome, err := registry.Invoke(ctx, ToolMakeReservation, map[string]any{
			"restaurant_id": 1, "name": "Asha", "party_size": 51, "date": "2026-11-20", "time": "19:00",
		})
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"success": false,
			"error":   "Party size exceeds restaurant capacity of 50, Book another restaurant.",
		}, outcomeJSON(t, outcome))
	})

	t.Run("missing required parameter", func(t *testing.T) {
		_, err := registry.Invoke(ctx, ToolMakeReservation, map[string]any{"restaurant_id": 1, "name": "Asha"})
		assert.ErrorIs(t, err, domain.ErrMissingParameters)
	})

	t.Run("fractional party size is a handler error", func(t *testing.T) {
		_, err := registry.Invoke(ctx, ToolMakeReservation, map[string]any{
			"restaurant_id": 1, "name": "Asha", "party_size": 2.5, "date": "2026-11-20", "time": "19:00",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestModifyReservationTool(t *testing.T) {
	ctx := context.Background()
	registry, _ := newTestRegistry(t, domain.Reservation{
		ID: "RES-10000", RestaurantID: 1, Name: "Asha", PartySize: 2, Date: "2026-11-20", Time: "19:00",
	})

	t.Run("success", func(t *testing.T) {
		outcome, err := registry.Invoke(ctx, ToolModifyReservation, map[string]any{
			"reservation_id": "RES-10000",
			"updates":        map[string]any{"time": "20:00"},
		})
		require.NoError(t, err)

		decoded := outcomeJSON(t, outcome)
		assert.Equal(t, "Reservation updated", decoded["message"])
		updated := decoded["updated"].(map[string]any)
		assert.Equal(t, "20:00", updated["time"])
		assert.Equal(t, "Asha", updated["name"])
	})

	t.Run("unknown field is a failure outcome", func(t *testing.T) {
		outcome, err := registry.Invoke(ctx, ToolModifyReservation, map[string]any{
			"reservation_id": "RES-10000",
			"updates":        map[string]any{"id": "RES-99999", "colour": "red"},
		})
		require.NoError(t, err)
		require.False(t, outcome.OK())
		assert.Equal(t, domain.RejectUnknownField, outcome.Failure.Kind)
		assert.Equal(t, "Cannot update unknown reservation fields: colour, id", outcome.ErrorMessage())
	})

	t.Run("unknown reservation", func(t *testing.T) {
		outcome, err := registry.Invoke(ctx, ToolModifyReservation, map[string]any{
			"reservation_id": "RES-55555",
			"updates":        map[string]any{"time": "20:00"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Reservation not found", outcome.ErrorMessage())
	})

	t.Run("updates must be an object", func(t *testing.T) {
		_, err := registry.Invoke(ctx, ToolModifyReservation, map[string]any{
			"reservation_id": "RES-10000",
			"updates":        "time=20:00",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCancelAndGetReservationTools(t *testing.T) {
	ctx := context.Background()
	registry, _ := newTestRegistry(t, domain.Reservation{
		ID: "RES-10000", RestaurantID: 7, Name: "Asha", PartySize: 2, Date: "2026-11-20", Time: "19:00",
	})

	outcome, err := registry.Invoke(ctx, ToolGetReservation, map[string]any{"reservation_id": "RES-10000"})
	require.NoError(t, err)
	decoded := outcomeJSON(t, outcome)
	assert.Equal(t, "Goan Shack", decoded["restaurant_name"])

	outcome, err = registry.Invoke(ctx, ToolCancelReservation, map[string]any{"reservation_id": "RES-10000"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"success": true, "message": "Reservation canceled"}, outcomeJSON(t, outcome))

	outcome, err = registry.Invoke(ctx, ToolCancelReservation, map[string]any{"reservation_id": "RES-10000"})
	require.NoError(t, err)
	assert.Equal(t, "Reservation not found", outcome.ErrorMessage())

	outcome, err = registry.Invoke(ctx, ToolGetReservation, map[string]any{"reservation_id": "RES-10000"})
	require.NoError(t, err)
	assert.False(t, outcome.OK())
}

func TestAmenityList(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []string
	}{
		{"nil", nil, nil},
		{"string", " bar ,live music,", []string{"bar", "live music"}},
		{"string slice", []string{"bar", " hookah"}, []string{"bar", "hookah"}},
		{"any slice", []any{"bar"}, []string{"bar"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := amenityList(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := amenityList(3)
	assert.Error(t, err)
	_, err = amenityList([]any{"bar", 1})
	assert.Error(t, err)
}
