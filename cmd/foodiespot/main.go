// Command foodiespot is the FoodieSpot restaurant reservation assistant.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/ai"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/config/file"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/events/rabbitmq"
	filestore "github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/storage/file"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/storage/memory"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driven/storage/sqlite"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/cli"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/catalog"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/config"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/services"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = ""

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return err
	}

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := env.ApplyTo(settings); err != nil {
		return err
	}

	store, closeStore, err := openReservationStore(settings.Storage)
	if err != nil {
		return err
	}
	defer closeStore.Close()

	reservations, err := services.NewReservationService(ctx, catalog.Restaurants(), store)
	if err != nil {
		return fmt.Errorf("failed to load reservations: %w", err)
	}

	if settings.Events.AMQPURL != "" {
		publisher, err := rabbitmq.NewPublisher(settings.Events.AMQPURL, rabbitmq.DefaultQueue)
		if err != nil {
			logger.Warn("reservation events disabled: %v", err)
		} else {
			defer publisher.Close()
			reservations.SetEventPublisher(publisher)
		}
	}

	svcs := cli.Services{
		Reservations:   reservations,
		Settings:       settingsService,
		Welcome:        services.WelcomeMessage(),
		AllowedOrigins: env.AllowedOrigins(),
		ListenAddr:     settings.Server.Addr,
	}

	aiResult, err := ai.Initialise(ctx, settings)
	if err != nil {
		svcs.AssistantErr = err
	} else {
		defer aiResult.Close()
		for _, w := range aiResult.Warnings {
			logger.Warn("%s", w)
		}
		if aiResult.LLMService == nil {
			svcs.AssistantErr = domain.ErrLLMUnavailable
		} else if err := wireAssistant(ctx, &svcs, aiResult.LLMService, reservations); err != nil {
			svcs.AssistantErr = err
		}
	}

	cli.SetVersion(version)
	cli.SetServices(svcs)
	return cli.Execute(ctx)
}

// openReservationStore picks the persistence backend. The returned closer
// is always non-nil.
func openReservationStore(cfg domain.StorageSettings) (driven.ReservationStore, io.Closer, error) {
	switch cfg.Backend {
	case domain.StorageSQLite:
		db, err := sqlite.NewStore(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return db.ReservationStore(), db, nil
	case domain.StorageMemory:
		return memory.NewReservationStore(), nopCloser{}, nil
	default:
		store, err := filestore.NewReservationStore(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open reservation file: %w", err)
		}
		return store, nopCloser{}, nil
	}
}

// wireAssistant builds the terminal assistant and the session pool shared
// by HTTP and MCP clients.
func wireAssistant(
	ctx context.Context,
	svcs *cli.Services,
	llm driven.LLMService,
	reservations driving.ReservationService,
) error {
	tools := services.NewToolRegistry()
	if err := services.RegisterReservationTools(tools, reservations); err != nil {
		return fmt.Errorf("failed to register tools: %w", err)
	}

	prompts, err := file.NewPromptStore("")
	if err != nil {
		logger.Warn("custom prompts disabled: %v", err)
	} else {
		go func() {
			if err := prompts.Watch(ctx); err != nil {
				logger.Debug("prompt watcher stopped: %v", err)
			}
		}()
	}

	factory := func() (driving.AssistantService, error) {
		assistant, err := services.NewAssistantService(llm, reservations, tools)
		if err != nil {
			return nil, err
		}
		if prompts != nil {
			assistant.SetPromptStore(prompts)
		}
		return assistant, nil
	}

	assistant, err := factory()
	if err != nil {
		return err
	}
	pool, err := services.NewSessionPool(factory, services.DefaultMaxSessions)
	if err != nil {
		return err
	}

	svcs.Assistant = assistant
	svcs.Sessions = pool
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
