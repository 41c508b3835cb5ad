package cli

import (
	"github.com/spf13/cobra"

	httpapi "github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/http"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serve the REST API, the streaming chat endpoint and the MCP endpoint.

Routes:
  GET    /healthz
  GET    /api/restaurants            filter with cuisine, location, party_size, date, time, amenities
  GET    /api/restaurants/:id
  GET    /api/reservations
  POST   /api/reservations
  GET    /api/reservations/:id
  PATCH  /api/reservations/:id
  DELETE /api/reservations/:id
  POST   /api/chat                   server-sent events; X-Session-ID selects the conversation
  DELETE /api/chat
  *      /mcp                        MCP streamable HTTP transport`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings, :8080)")
	rootCmd.AddCommand(serveCmd)
}

// newHTTPServer builds the HTTP API with the MCP endpoint mounted.
func newHTTPServer() (*httpapi.Server, error) {
	ports := &httpapi.Ports{
		Reservations: reservationService,
		Sessions:     sessionPool,
	}
	if mcpServer, err := newMCPServer(); err == nil {
		ports.MCP = mcpServer.Handler()
	}

	cfg := httpapi.Config{AllowedOrigins: allowedOrigins}
	return httpapi.NewServer(cfg, ports, logger.Get())
}

func runServe(cmd *cobra.Command, _ []string) error {
	server, err := newHTTPServer()
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = listenAddr
	}
	if addr == "" {
		addr = ":8080"
	}

	cmd.Printf("FoodieSpot API listening on %s\n", addr)
	if sessionPool == nil {
		logger.Warn("Chat endpoint disabled: %v", assistantErr)
	}
	return server.Run(commandContext(cmd), addr)
}
