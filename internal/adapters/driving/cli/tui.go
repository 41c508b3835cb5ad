package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for FoodieSpot.

The TUI lets you chat with the assistant, browse restaurants with their
opening hours and review current reservations.

Controls:
  ↑/k, ↓/j - Navigate lists
  Enter    - Select / Send
  Ctrl+R   - New conversation
  PgUp/Dn  - Scroll the transcript
  Esc      - Back to menu
  Ctrl+C   - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// newTUIApp builds the TUI from the injected services.
func newTUIApp() (*tui.App, error) {
	ports := tui.NewPorts(reservationService, assistantService)
	ports.Welcome = welcomeMessage
	return tui.NewApp(ports)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := newTUIApp()
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(commandContext(cmd)).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
