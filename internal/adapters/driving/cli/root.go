// Package cli provides the cobra command tree for the foodiespot binary.
// It is a driving adapter: commands call core services through driving ports.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/logger"
)

// version is overridden at build time with -ldflags.
var version = "dev"

// Services bundles the core services the commands drive.
type Services struct {
	Reservations driving.ReservationService
	Settings     driving.SettingsService

	// Assistant is nil when no LLM is configured. AssistantErr then
	// explains why.
	Assistant    driving.AssistantService
	AssistantErr error

	// Sessions gives HTTP and MCP clients their own conversations.
	Sessions driving.SessionPool

	// Welcome opens every new conversation.
	Welcome string

	// AllowedOrigins is the CORS allow-list of the HTTP API.
	AllowedOrigins []string

	// ListenAddr is the default address of the serve command.
	ListenAddr string
}

var (
	reservationService driving.ReservationService
	settingsService    driving.SettingsService
	assistantService   driving.AssistantService
	assistantErr       error
	sessionPool        driving.SessionPool
	welcomeMessage     string
	allowedOrigins     []string
	listenAddr         string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "foodiespot",
	Short: "FoodieSpot restaurant reservation assistant",
	Long: `FoodieSpot helps guests find restaurants and book, modify or cancel
reservations, either by chatting with an assistant or with direct commands.

Run without arguments to open the interactive terminal UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// SetServices injects the core services used by every command.
func SetServices(s Services) {
	reservationService = s.Reservations
	settingsService = s.Settings
	assistantService = s.Assistant
	assistantErr = s.AssistantErr
	sessionPool = s.Sessions
	welcomeMessage = s.Welcome
	allowedOrigins = s.AllowedOrigins
	listenAddr = s.ListenAddr
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// requireReservations returns the reservation service or an error when unset.
func requireReservations() (driving.ReservationService, error) {
	if reservationService == nil {
		return nil, errors.New("reservation service not configured")
	}
	return reservationService, nil
}

// requireAssistant returns the assistant or the reason it is unavailable.
func requireAssistant() (driving.AssistantService, error) {
	if assistantService != nil {
		return assistantService, nil
	}
	if assistantErr != nil {
		return nil, assistantErr
	}
	return nil, domain.ErrLLMUnavailable
}

// commandContext returns the command's context, falling back to Background.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
