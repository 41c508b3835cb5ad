package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

var (
	filterCuisine   string
	filterLocation  string
	filterPartySize int
	filterDate      string
	filterTime      string
	filterAmenities []string
	restaurantsJSON bool
)

var restaurantsCmd = &cobra.Command{
	Use:     "restaurants",
	Aliases: []string{"restaurant"},
	Short:   "Browse the restaurant catalog",
}

var restaurantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List restaurants matching filters",
	Long: `List catalog restaurants. Every filter is optional and all given filters must match.

When both --date and --time are set, restaurants that look fully booked for
that slot are left out.

Examples:
  foodiespot restaurants list --location Downtown --cuisine "North Indian"
  foodiespot restaurants list --party-size 6 --amenity "outdoor seating"`,
	Args: cobra.NoArgs,
	RunE: runRestaurantsList,
}

var restaurantsShowCmd = &cobra.Command{
	Use:   "show [id or name]",
	Short: "Show one restaurant with its opening hours",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRestaurantsShow,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Ask the assistant to recommend restaurants",
	Long: `Filter the catalog and let the assistant write a short recommendation
from the matches.

Example:
  foodiespot recommend --location Midtown --party-size 4`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func addCriteriaFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&filterCuisine, "cuisine", "", "cuisine, e.g. \"South Indian\"")
	cmd.Flags().StringVar(&filterLocation, "location", "", "area: "+strings.Join(domain.Locations(), ", "))
	cmd.Flags().IntVar(&filterPartySize, "party-size", 0, "number of guests")
	cmd.Flags().StringVar(&filterDate, "date", "", "date, YYYY-MM-DD")
	cmd.Flags().StringVar(&filterTime, "time", "", "time, HH:MM")
	cmd.Flags().StringSliceVar(&filterAmenities, "amenity", nil, "required amenity (repeatable)")
}

func init() {
	addCriteriaFlags(restaurantsListCmd)
	restaurantsListCmd.Flags().BoolVar(&restaurantsJSON, "json", false, "output as JSON")
	restaurantsShowCmd.Flags().BoolVar(&restaurantsJSON, "json", false, "output as JSON")
	addCriteriaFlags(recommendCmd)

	restaurantsCmd.AddCommand(restaurantsListCmd)
	restaurantsCmd.AddCommand(restaurantsShowCmd)
	rootCmd.AddCommand(restaurantsCmd)
	rootCmd.AddCommand(recommendCmd)
}

func criteriaFromFlags() domain.SearchCriteria {
	return domain.SearchCriteria{
		Cuisine:   filterCuisine,
		Location:  filterLocation,
		PartySize: filterPartySize,
		Date:      filterDate,
		Time:      filterTime,
		Amenities: filterAmenities,
	}
}

func runRestaurantsList(cmd *cobra.Command, _ []string) error {
	svc, err := requireReservations()
	if err != nil {
		return err
	}

	results, err := svc.Find(commandContext(cmd), criteriaFromFlags())
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if restaurantsJSON {
		return printJSON(cmd, results)
	}

	if len(results) == 0 {
		cmd.Println("No restaurants match those filters.")
		return nil
	}

	cmd.Printf("Found %d restaurant(s):\n\n", len(results))
	for _, r := range results {
		cmd.Printf("[%d] %s\n", r.ID, r.Name)
		cmd.Printf("    %s · %s · seats %d · %.1f★ · %s\n", r.Cuisine, r.Location, r.Capacity, r.Rating, r.PriceRange)
		if len(r.Amenities) > 0 {
			cmd.Printf("    %s\n", strings.Join(r.Amenities, ", "))
		}
	}
	return nil
}

func runRestaurantsShow(cmd *cobra.Command, args []string) error {
	svc, err := requireReservations()
	if err != nil {
		return err
	}

	ref := strings.Join(args, " ")
	var restaurant *domain.Restaurant
	if id, convErr := strconv.Atoi(ref); convErr == nil {
		restaurant, err = svc.Restaurant(id)
	} else {
		restaurant, err = svc.RestaurantByName(ref)
	}
	if err != nil {
		return err
	}

	if restaurantsJSON {
		return printJSON(cmd, restaurant)
	}

	cmd.Printf("%s (#%d)\n", restaurant.Name, restaurant.ID)
	cmd.Printf("  Cuisine:   %s\n", restaurant.Cuisine)
	cmd.Printf("  Location:  %s\n", restaurant.Location)
	cmd.Printf("  Capacity:  %d guests\n", restaurant.Capacity)
	cmd.Printf("  Rating:    %.1f\n", restaurant.Rating)
	cmd.Printf("  Price:     %s\n", restaurant.PriceRange)
	if len(restaurant.Amenities) > 0 {
		cmd.Printf("  Amenities: %s\n", strings.Join(restaurant.Amenities, ", "))
	}
	if hours := restaurant.WeeklyHours(); len(hours) > 0 {
		cmd.Println("  Opening hours:")
		for _, h := range hours {
			cmd.Printf("    %-10s %s\n", h.Day, h.Hours)
		}
	}
	return nil
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	assistant, err := requireAssistant()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	return streamReply(ctx, cmd.OutOrStdout(), assistant.Recommend(ctx, criteriaFromFlags()))
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
