package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReservationPatch(t *testing.T) {
	t.Run("typed fields", func(t *testing.T) {
		p, err := ParseReservationPatch(map[string]any{
			"time":       "21:00",
			"party_size": float64(6),
		})
		require.NoError(t, err)
		require.NotNil(t, p.Time)
		require.NotNil(t, p.PartySize)
		assert.Equal(t, "21:00", *p.Time)
		assert.Equal(t, 6, *p.PartySize)
		assert.Nil(t, p.Name)
		assert.ElementsMatch(t, []string{"time", "party_size"}, p.Fields())
	})

	t.Run("numeric string is accepted for integers", func(t *testing.T) {
		p, err := ParseReservationPatch(map[string]any{"restaurant_id": "24"})
		require.NoError(t, err)
		assert.Equal(t, 24, *p.RestaurantID)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := ParseReservationPatch(map[string]any{"time": "20:00", "table": "5", "id": "RES-1"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownField))
		assert.Contains(t, err.Error(), "id, table")
	})

	t.Run("wrong types are rejected", func(t *testing.T) {
		_, err := ParseReservationPatch(map[string]any{"party_size": "many"})
		require.Error(t, err)
		r, ok := AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, RejectInvalidField, r.Kind)

		_, err = ParseReservationPatch(map[string]any{"date": 20250528})
		require.Error(t, err)
	})

	t.Run("empty mapping", func(t *testing.T) {
		p, err := ParseReservationPatch(map[string]any{})
		require.NoError(t, err)
		assert.True(t, p.IsEmpty())
	})
}

func TestReservationPatch_Apply(t *testing.T) {
	r := Reservation{
		ID: "RES-12345", RestaurantID: 24, Name: "Adwait", PartySize: 15,
		Date: "2025-05-28", Time: "20:00", SpecialRequests: "window",
	}
	newTime := "21:30"
	size := 40

	ReservationPatch{Time: &newTime, PartySize: &size}.Apply(&r)

	assert.Equal(t, "21:30", r.Time)
	assert.Equal(t, 40, r.PartySize)
	assert.Equal(t, "Adwait", r.Name)
	assert.Equal(t, "2025-05-28", r.Date)
	assert.Equal(t, "window", r.SpecialRequests)
	assert.Equal(t, "RES-12345", r.ID)
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{"int", 4, 4, false},
		{"float", float64(15), 15, false},
		{"fractional float", 1.5, 0, true},
		{"huge float", 1e300, 0, true},
		{"huge negative float", -1e300, 0, true},
		{"infinite float", math.Inf(1), 0, true},
		{"not a number", math.NaN(), 0, true},
		{"numeric string", " 7 ", 7, false},
		{"word", "four", 0, true},
		{"nil", nil, 0, true},
		{"bool", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceInt(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRestaurant_HasAmenityAndSummary(t *testing.T) {
	r := Restaurant{ID: 5, Name: "Classic Dhaba", Capacity: 40, Amenities: []string{"river view", "Cultural Performances"}}

	assert.True(t, r.HasAmenity("River View"))
	assert.True(t, r.HasAmenity("cultural performances"))
	assert.False(t, r.HasAmenity("bar"))

	s := r.Summary()
	assert.Equal(t, 5, s.ID)
	assert.True(t, s.Available)
}

func TestSearchCriteria(t *testing.T) {
	assert.True(t, SearchCriteria{}.IsEmpty())
	assert.False(t, SearchCriteria{Location: "Downtown"}.IsEmpty())
	assert.False(t, SearchCriteria{Date: "2025-05-28"}.ChecksAvailability())
	assert.True(t, SearchCriteria{Date: "2025-05-28", Time: "20:00"}.ChecksAvailability())
}
