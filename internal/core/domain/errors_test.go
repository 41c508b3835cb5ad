package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnknownField", ErrUnknownField},
		{"ErrIDSpaceExhausted", ErrIDSpaceExhausted},
		{"ErrUnknownTool", ErrUnknownTool},
		{"ErrMissingParameters", ErrMissingParameters},
		{"ErrToolAlreadyRegistered", ErrToolAlreadyRegistered},
		{"ErrLLMUnavailable", ErrLLMUnavailable},
		{"ErrUnparsableResponse", ErrUnparsableResponse},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("invoking tool: %w", ErrUnknownTool)
	assert.True(t, errors.Is(wrapped, ErrUnknownTool))
	assert.False(t, errors.Is(wrapped, ErrMissingParameters))
}

func TestRejection_Is(t *testing.T) {
	tests := []struct {
		kind     RejectionKind
		target   error
		expected bool
	}{
		{RejectRestaurantNotFound, ErrNotFound, true},
		{RejectReservationNotFound, ErrNotFound, true},
		{RejectSlotFull, ErrNotFound, false},
		{RejectMissingName, ErrInvalidInput, true},
		{RejectInvalidPartySize, ErrInvalidInput, true},
		{RejectOverCapacity, ErrInvalidInput, false},
		{RejectUnknownField, ErrUnknownField, true},
		{RejectUnknownField, ErrInvalidInput, true},
		{RejectInvalidField, ErrUnknownField, false},
		{RejectIDsExhausted, ErrIDSpaceExhausted, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+" is "+tt.target.Error(), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", Reject(tt.kind, "message"))
			assert.Equal(t, tt.expected, errors.Is(err, tt.target))
		})
	}
}

func TestAsRejection(t *testing.T) {
	r := Reject(RejectSlotFull, "The time slot %s is currently full.", "19:00").
		WithSuggestions("18:00", "18:30")

	got, ok := AsRejection(fmt.Errorf("creating: %w", r))
	assert.True(t, ok)
	assert.Equal(t, RejectSlotFull, got.Kind)
	assert.Equal(t, "The time slot 19:00 is currently full.", got.Error())
	assert.Equal(t, []string{"18:00", "18:30"}, got.Suggestions)

	_, ok = AsRejection(errors.New("disk full"))
	assert.False(t, ok)
}
