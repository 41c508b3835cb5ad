// Package reservations provides the bookings list view for the TUI.
package reservations

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/components/list"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/components/status"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/keymap"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/messages"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/styles"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
)

// View lists the current reservations.
type View struct {
	styles       *styles.Styles
	keys         *keymap.KeyMap
	service      driving.ReservationService
	ctx          context.Context
	reservations []domain.Reservation

	list   *list.ItemList
	status *status.Bar

	width  int
	height int
}

// NewView creates a new reservations view.
func NewView(s *styles.Styles, service driving.ReservationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	keys := keymap.DefaultKeyMap()
	bar := status.NewBar(s)
	bar.SetBindings(keys.ListHelp())

	return &View{
		styles:  s,
		keys:    keys,
		service: service,
		ctx:     context.Background(),
		list:    list.NewItemList(s, "Reservations"),
		status:  bar,
		width:   80,
		height:  24,
	}
}

// SetContext sets the context used to load reservations.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init loads the reservation list.
func (v *View) Init() tea.Cmd {
	return v.load()
}

func (v *View) load() tea.Cmd {
	if v.service == nil {
		return nil
	}
	v.status.SetState(status.StateThinking)
	ctx, service := v.ctx, v.service
	return func() tea.Msg {
		reservations, err := service.List(ctx)
		return messages.ReservationsLoaded{Reservations: reservations, Err: err}
	}
}

// Update handles messages for the reservations view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ReservationsLoaded:
		v.setReservations(msg.Reservations, msg.Err)
		return v, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), v.keys.Refresh) {
			return v, v.load()
		}
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) setReservations(reservations []domain.Reservation, err error) {
	if err != nil {
		v.status.SetState(status.StateError)
		v.status.SetMessage(err.Error())
		return
	}

	v.reservations = reservations
	items := make([]list.Item, len(reservations))
	for i, r := range reservations {
		items[i] = list.Item{
			Title:  fmt.Sprintf("%s  %s", r.ID, v.restaurantName(r.RestaurantID)),
			Detail: fmt.Sprintf("%s · party of %d · %s %s", r.Name, r.PartySize, r.Date, r.Time),
		}
	}
	v.list.SetItems(items)
	v.status.Clear()
	v.status.SetMessage(fmt.Sprintf("%d reservation(s)", len(reservations)))
}

func (v *View) restaurantName(id int) string {
	r, err := v.service.Restaurant(id)
	if err != nil {
		return fmt.Sprintf("restaurant #%d", id)
	}
	return r.Name
}

// View renders the reservation list.
func (v *View) View() string {
	body := v.list.View()
	if r := v.Selected(); r != nil && r.SpecialRequests != "" {
		body += "\n\n" + v.styles.Muted.Render("Special requests: ") + v.styles.Note.Render(r.SpecialRequests)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render("FoodieSpot"),
		"",
		body,
		"",
		v.status.View(),
	)
}

// Selected returns the highlighted reservation, or nil when there is none.
func (v *View) Selected() *domain.Reservation {
	i := v.list.Selected()
	if i < 0 || i >= len(v.reservations) {
		return nil
	}
	r := v.reservations[i]
	return &r
}

// Count returns the number of loaded reservations.
func (v *View) Count() int {
	return len(v.reservations)
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.status
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, height-7)
	v.status.SetWidth(width)
}
