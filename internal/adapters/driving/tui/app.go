package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/messages"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/styles"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/views/chat"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/views/menu"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/views/reservations"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/views/restaurants"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	menuView         *menu.View
	chatView         *chat.View
	restaurantsView  *restaurants.View
	reservationsView *reservations.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:            ports,
		ctx:              context.Background(),
		styles:           s,
		menuView:         menu.NewView(s),
		chatView:         chat.NewView(s, ports.Assistant, ports.Welcome),
		restaurantsView:  restaurants.NewView(s, ports.Reservations),
		reservationsView: reservations.NewView(s, ports.Reservations),
		currentView:      messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.chatView.SetContext(ctx)
	a.reservationsView.SetContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("FoodieSpot"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// Esc from any view goes to menu
		if msg.Type == tea.KeyEsc && a.currentView != messages.ViewMenu {
			a.currentView = messages.ViewMenu
			return a, nil
		}

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewChat:
			return a, a.chatView.Init()
		case messages.ViewRestaurants:
			return a, a.restaurantsView.Init()
		case messages.ViewReservations:
			return a, a.reservationsView.Init()
		case messages.ViewMenu:
		}
		return a, nil

	// A reply keeps streaming after the user leaves the chat view
	case messages.ReplyFragment, messages.ReplyFinished, messages.ConversationReset:
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.ReservationsLoaded:
		a.reservationsView, cmd = a.reservationsView.Update(msg)
		return a, cmd
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case messages.ViewRestaurants:
		a.restaurantsView, cmd = a.restaurantsView.Update(msg)
	case messages.ViewReservations:
		a.reservationsView, cmd = a.reservationsView.Update(msg)
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewChat:
		return a.chatView.View()
	case messages.ViewRestaurants:
		return a.restaurantsView.View()
	case messages.ViewReservations:
		return a.reservationsView.View()
	default:
		return a.menuView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.chatView.SetDimensions(width, height)
	a.restaurantsView.SetDimensions(width, height)
	a.reservationsView.SetDimensions(width, height)
}
