package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

func echoHandler(_ context.Context, args map[string]any) (domain.Outcome, error) {
	return domain.Success(args), nil
}

func TestToolRegistry_Register(t *testing.T) {
	registry := NewToolRegistry()

	require.NoError(t, registry.Register("b_tool", "second", nil, echoHandler))
	require.NoError(t, registry.Register("a_tool", "first", nil, echoHandler))

	assert.Equal(t, []string{"b_tool", "a_tool"}, registry.Names())
	assert.True(t, registry.Has("a_tool"))
	assert.False(t, registry.Has("c_tool"))

	err := registry.Register("a_tool", "again", nil, echoHandler)
	assert.ErrorIs(t, err, domain.ErrToolAlreadyRegistered)

	err = registry.Register("", "nameless", nil, echoHandler)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestToolRegistry_Describe(t *testing.T) {
	registry := NewToolRegistry()
	require.NoError(t, registry.Register("cancel_reservation", "Cancel an existing reservation",
		[]domain.ToolParameter{{Name: "reservation_id", Type: "string", Description: "ID of the reservation to cancel", Required: true}},
		echoHandler))
	require.NoError(t, registry.Register("ping", "No parameters", nil, echoHandler))

	expected := "cancel_reservation: Cancel an existing reservation\n" +
		"Parameters: {\n" +
		"  \"reservation_id\": {\n" +
		"    \"type\": \"string\",\n" +
		"    \"description\": \"ID of the reservation to cancel\"\n" +
		"  }\n" +
		"}\n\n" +
		"ping: No parameters\n" +
		"Parameters: {}"

	assert.Equal(t, expected, registry.Describe())
}

func TestToolRegistry_SchemaKeepsDeclarationOrder(t *testing.T) {
	registry := NewToolRegistry()
	require.NoError(t, registry.Register("t", "d", []domain.ToolParameter{
		{Name: "zeta", Type: "string"},
		{Name: "alpha", Type: "integer"},
	}, echoHandler))

	schema, err := registry.Schema("t")
	require.NoError(t, err)
	assert.Less(t, strings.Index(schema, "zeta"), strings.Index(schema, "alpha"))

	_, err = registry.Schema("missing")
	assert.ErrorIs(t, err, domain.ErrUnknownTool)
}

func TestToolRegistry_Invoke(t *testing.T) {
	ctx := context.Background()
	registry := NewToolRegistry()
	require.NoError(t, registry.Register("book", "d", []domain.ToolParameter{
		{Name: "name", Required: true},
		{Name: "date", Required: true},
		{Name: "note"},
	}, echoHandler))

	t.Run("unknown tool", func(t *testing.T) {
		_, err := registry.Invoke(ctx, "nope", nil)
		assert.ErrorIs(t, err, domain.ErrUnknownTool)
	})

	t.Run("missing required parameters are all named", func(t *testing.T) {
		_, err := registry.Invoke(ctx, "book", map[string]any{"note": "x"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingParameters)
		var missing *MissingParametersError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, []string{"name", "date"}, missing.Names)
		assert.Equal(t, "Missing required parameters: name, date", err.Error())
	})

	t.Run("present but empty values reach the handler", func(t *testing.T) {
		outcome, err := registry.Invoke(ctx, "book", map[string]any{"name": "", "date": nil})
		require.NoError(t, err)
		assert.True(t, outcome.OK())
	})

	t.Run("handler errors propagate", func(t *testing.T) {
		boom := errors.New("boom")
		require.NoError(t, registry.Register("explode", "d", nil,
			func(context.Context, map[string]any) (domain.Outcome, error) { return domain.Outcome{}, boom }))

		_, err := registry.Invoke(ctx, "explode", nil)
		assert.ErrorIs(t, err, boom)
	})
}

