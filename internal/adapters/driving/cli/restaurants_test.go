package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

func TestRestaurantsCmd_HasSubcommands(t *testing.T) {
	names := []string{}
	for _, cmd := range restaurantsCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"list", "show"}, names)
}

func TestRestaurantsList(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		contains    []string
		notContains []string
	}{
		{
			name:     "all",
			args:     nil,
			contains: []string{"Found 25 restaurant(s)", "Taj Mahal Bistro", "Coastal Spice"},
		},
		{
			name:        "location and cuisine",
			args:        []string{"--location", "downtown", "--cuisine", "North Indian"},
			contains:    []string{"Taj Mahal Bistro", "Classic Dhaba"},
			notContains: []string{"Coastal Spice", "Punjab Grill House"},
		},
		{
			name:        "amenity",
			args:        []string{"--amenity", "live music", "--location", "Midtown"},
			contains:    []string{"Coastal Spice"},
			notContains: []string{"Rajasthani Darbar"},
		},
		{
			name:        "party size over capacity",
			args:        []string{"--party-size", "10", "--location", "Uptown"},
			notContains: []string{"Goan Shack"},
		},
		{
			name:     "no match",
			args:     []string{"--location", "Nowhere"},
			contains: []string{"No restaurants match those filters."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t)

			output, err := execute(t, nil, append([]string{"restaurants", "list"}, tt.args...)...)

			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, output, s)
			}
		})
	}
}

func TestRestaurantsList_JSON(t *testing.T) {
	setupTestServices(t)

	output, err := execute(t, nil, "restaurants", "list", "--location", "Midtown", "--json")

	require.NoError(t, err)
	var results []domain.RestaurantSummary
	require.NoError(t, json.Unmarshal([]byte(output), &results))
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, "Midtown", r.Location)
	}
}

func TestRestaurantsList_InvalidTime(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, nil, "restaurants", "list", "--date", "2025-05-28", "--time", "7pm")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRestaurantsShow(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"by id", []string{"2"}},
		{"by name", []string{"coastal", "spice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t)

			output, err := execute(t, nil, append([]string{"restaurants", "show"}, tt.args...)...)

			require.NoError(t, err)
			assert.Contains(t, output, "Coastal Spice (#2)")
			assert.Contains(t, output, "South Indian")
			assert.Contains(t, output, "live music, outdoor seating")
			assert.Contains(t, output, "Opening hours:")
			assert.Contains(t, output, "Monday")
		})
	}
}

func TestRestaurantsShow_NotFound(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, nil, "restaurants", "show", "999")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecommendCmd(t *testing.T) {
	env := setupTestServices(t)
	env.assistant.Fragments = []string{"Try Coastal Spice."}

	output, err := execute(t, nil, "recommend", "--location", "Midtown", "--party-size", "4")

	require.NoError(t, err)
	assert.Contains(t, output, "Assistant: Try Coastal Spice.")
	require.Len(t, env.assistant.Criteria, 1)
	assert.Equal(t, domain.SearchCriteria{Location: "Midtown", PartySize: 4}, env.assistant.Criteria[0])
}
