package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
)

var (
	bookRestaurant string
	bookName       string
	bookPartySize  int
	bookDate       string
	bookTime       string
	bookRequests   string

	reservationsJSON bool
	reservationsAll  bool
)

var reservationsCmd = &cobra.Command{
	Use:     "reservations",
	Aliases: []string{"reservation", "res"},
	Short:   "Manage reservations",
}

var reservationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reservations",
	Long: `Show the most recent reservation, or every reservation with --all.

JSON output always includes every reservation.`,
	Args: cobra.NoArgs,
	RunE:  runReservationsList,
}

var reservationsShowCmd = &cobra.Command{
	Use:   "show [reservation-id]",
	Short: "Show one reservation",
	Args:  cobra.ExactArgs(1),
	RunE:  runReservationsShow,
}

var reservationsBookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a table",
	Long: `Book a table directly, without the assistant.

Example:
  foodiespot reservations book --restaurant "Coastal Spice" --name Ravi \
    --party-size 4 --date 2025-05-28 --time 19:00`,
	Args: cobra.NoArgs,
	RunE: runReservationsBook,
}

var reservationsModifyCmd = &cobra.Command{
	Use:   "modify [reservation-id]",
	Short: "Change fields of a reservation",
	Long: `Change one or more fields of a reservation. Only the flags you pass are changed.

Example:
  foodiespot reservations modify RES-10000 --party-size 6 --time 20:00`,
	Args: cobra.ExactArgs(1),
	RunE: runReservationsModify,
}

var reservationsCancelCmd = &cobra.Command{
	Use:   "cancel [reservation-id]",
	Short: "Cancel a reservation",
	Args:  cobra.ExactArgs(1),
	RunE:  runReservationsCancel,
}

func addBookingFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&bookRestaurant, "restaurant", "", "restaurant id or name")
	cmd.Flags().StringVar(&bookName, "name", "", "guest name")
	cmd.Flags().IntVar(&bookPartySize, "party-size", 0, "number of guests")
	cmd.Flags().StringVar(&bookDate, "date", "", "date, YYYY-MM-DD")
	cmd.Flags().StringVar(&bookTime, "time", "", "time, HH:MM")
	cmd.Flags().StringVar(&bookRequests, "requests", "", "special requests")
}

func init() {
	reservationsListCmd.Flags().BoolVar(&reservationsJSON, "json", false, "output as JSON")
	reservationsListCmd.Flags().BoolVar(&reservationsAll, "all", false, "list every reservation")
	reservationsShowCmd.Flags().BoolVar(&reservationsJSON, "json", false, "output as JSON")
	addBookingFlags(reservationsBookCmd)
	addBookingFlags(reservationsModifyCmd)

	reservationsCmd.AddCommand(reservationsListCmd)
	reservationsCmd.AddCommand(reservationsShowCmd)
	reservationsCmd.AddCommand(reservationsBookCmd)
	reservationsCmd.AddCommand(reservationsModifyCmd)
	reservationsCmd.AddCommand(reservationsCancelCmd)
	rootCmd.AddCommand(reservationsCmd)
}

func runReservationsList(cmd *cobra.Command, _ []string) error {
	svc, err := requireReservations()
	if err != nil {
		return err
	}

	reservations, err := svc.List(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to list reservations: %w", err)
	}

	if reservationsJSON {
		return printJSON(cmd, reservations)
	}

	if len(reservations) == 0 {
		cmd.Println("No reservations.")
		return nil
	}

	if !reservationsAll {
		latest := reservations[len(reservations)-1]
		cmd.Println("Latest reservation:")
		printReservation(cmd, svc, &latest)
		if len(reservations) > 1 {
			cmd.Printf("\n%d reservations in total. Use --all to see every one.\n", len(reservations))
		}
		return nil
	}

	for _, r := range reservations {
		cmd.Printf("%s  %-24s %-12s %s %s  party of %d\n",
			r.ID, restaurantName(svc, r.RestaurantID), r.Name, r.Date, r.Time, r.PartySize)
	}
	return nil
}

func runReservationsShow(cmd *cobra.Command, args []string) error {
	svc, err := requireReservations()
	if err != nil {
		return err
	}

	r, err := svc.Get(commandContext(cmd), args[0])
	if err != nil {
		return err
	}

	if reservationsJSON {
		return printJSON(cmd, r)
	}
	printReservation(cmd, svc, r)
	return nil
}

func runReservationsBook(cmd *cobra.Command, _ []string) error {
	svc, err := requireReservations()
	if err != nil {
		return err
	}
	if bookRestaurant == "" {
		return errors.New("--restaurant is required")
	}

	restaurantID, err := resolveRestaurant(svc, bookRestaurant)
	if err != nil {
		return err
	}

	booking, err := svc.Create(commandContext(cmd), domain.ReservationRequest{
		RestaurantID:    restaurantID,
		Name:            bookName,
		PartySize:       bookPartySize,
		Date:            bookDate,
		Time:            bookTime,
		SpecialRequests: bookRequests,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Reservation confirmed: %s\n", booking.ReservationID)
	cmd.Printf("  %s, %s at %s, party of %d\n", booking.RestaurantName, booking.Date, booking.Time, booking.PartySize)
	return nil
}

func runReservationsModify(cmd *cobra.Command, args []string) error {
	svc, err := requireReservations()
	if err != nil {
		return err
	}

	var patch domain.ReservationPatch
	flags := cmd.Flags()
	if flags.Changed("restaurant") {
		id, err := resolveRestaurant(svc, bookRestaurant)
		if err != nil {
			return err
		}
		patch.RestaurantID = &id
	}
	if flags.Changed("name") {
		patch.Name = &bookName
	}
	if flags.Changed("party-size") {
		patch.PartySize = &bookPartySize
	}
	if flags.Changed("date") {
		patch.Date = &bookDate
	}
	if flags.Changed("time") {
		patch.Time = &bookTime
	}
	if flags.Changed("requests") {
		patch.SpecialRequests = &bookRequests
	}
	if patch.IsEmpty() {
		return errors.New("nothing to change: pass at least one of --restaurant, --name, " +
			"--party-size, --date, --time or --requests")
	}

	updated, err := svc.Update(commandContext(cmd), args[0], patch)
	if err != nil {
		return err
	}

	cmd.Println("Reservation updated.")
	printReservation(cmd, svc, updated)
	return nil
}

func runReservationsCancel(cmd *cobra.Command, args []string) error {
	svc, err := requireReservations()
	if err != nil {
		return err
	}

	if err := svc.Cancel(commandContext(cmd), args[0]); err != nil {
		return err
	}
	cmd.Printf("Reservation %s cancelled.\n", args[0])
	return nil
}

// resolveRestaurant accepts a catalog id or a restaurant name.
func resolveRestaurant(svc driving.ReservationService, ref string) (int, error) {
	if id, err := strconv.Atoi(ref); err == nil {
		return id, nil
	}
	r, err := svc.RestaurantByName(ref)
	if err != nil {
		return 0, err
	}
	return r.ID, nil
}

func restaurantName(svc driving.ReservationService, id int) string {
	r, err := svc.Restaurant(id)
	if err != nil {
		return fmt.Sprintf("restaurant #%d", id)
	}
	return r.Name
}

func printReservation(cmd *cobra.Command, svc driving.ReservationService, r *domain.Reservation) {
	cmd.Printf("%s\n", r.ID)
	cmd.Printf("  Restaurant: %s\n", restaurantName(svc, r.RestaurantID))
	cmd.Printf("  Name:       %s\n", r.Name)
	cmd.Printf("  Party size: %d\n", r.PartySize)
	cmd.Printf("  Date:       %s\n", r.Date)
	cmd.Printf("  Time:       %s\n", r.Time)
	if r.SpecialRequests != "" {
		cmd.Printf("  Requests:   %s\n", r.SpecialRequests)
	}
}
