// Package restaurants provides the catalog browser view for the TUI.
package restaurants

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/components/list"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/components/status"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/keymap"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/styles"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
)

// View lists the catalog with a detail pane for the selected restaurant.
type View struct {
	styles       *styles.Styles
	keys         *keymap.KeyMap
	reservations driving.ReservationService
	restaurants  []domain.Restaurant

	list        *list.ItemList
	status      *status.Bar
	showDetails bool

	width  int
	height int
}

// NewView creates a new restaurants view.
func NewView(s *styles.Styles, reservations driving.ReservationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	keys := keymap.DefaultKeyMap()
	bar := status.NewBar(s)
	bar.SetBindings([]key.Binding{keys.Up, keys.Down, keys.Select, keys.Back})

	v := &View{
		styles:       s,
		keys:         keys,
		reservations: reservations,
		list:         list.NewItemList(s, "Restaurants"),
		status:       bar,
		width:        80,
		height:       24,
	}
	v.load()
	return v
}

func (v *View) load() {
	if v.reservations == nil {
		return
	}
	v.restaurants = v.reservations.Restaurants()

	items := make([]list.Item, len(v.restaurants))
	for i, r := range v.restaurants {
		items[i] = list.Item{
			Title:  r.Name,
			Detail: fmt.Sprintf("%s · %s · %s · %.1f★", r.Cuisine, r.Location, r.PriceRange, r.Rating),
		}
	}
	v.list.SetItems(items)
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	v.showDetails = false
	return nil
}

// Update handles messages for the restaurants view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), v.keys.Select) {
			v.showDetails = !v.showDetails
			return v, nil
		}
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd
	}
	return v, nil
}

// View renders the list and, when toggled, the detail pane.
func (v *View) View() string {
	body := v.list.View()
	if r := v.Selected(); v.showDetails && r != nil {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "   ", v.renderDetails(*r))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render("FoodieSpot"),
		"",
		body,
		"",
		v.status.View(),
	)
}

func (v *View) renderDetails(r domain.Restaurant) string {
	lines := []string{
		v.styles.Subtitle.Render(r.Name),
		"",
		v.styles.Field("Cuisine", r.Cuisine),
		v.styles.Field("Location", r.Location),
		v.styles.Field("Capacity", fmt.Sprintf("%d guests", r.Capacity)),
		v.styles.Field("Rating", v.styles.Stars(r.Rating)),
		v.styles.Field("Price", r.PriceRange),
	}
	if len(r.Amenities) > 0 {
		lines = append(lines, v.styles.Field("Amenities", strings.Join(r.Amenities, ", ")))
	}
	if hours := r.WeeklyHours(); len(hours) > 0 {
		lines = append(lines, "", v.styles.Muted.Render("Opening hours"))
		for _, h := range hours {
			lines = append(lines, "  "+v.styles.Field(h.Day, h.Hours))
		}
	}
	return v.styles.DetailPane.Render(strings.Join(lines, "\n"))
}

// Selected returns the highlighted restaurant, or nil when the list is empty.
func (v *View) Selected() *domain.Restaurant {
	i := v.list.Selected()
	if i < 0 || i >= len(v.restaurants) {
		return nil
	}
	r := v.restaurants[i]
	return &r
}

// ShowingDetails reports whether the detail pane is open.
func (v *View) ShowingDetails() bool {
	return v.showDetails
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width/2, height-5)
	v.status.SetWidth(width)
}
