// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// fieldLabelWidth aligns the values of detail pane fields.
const fieldLabelWidth = 11

// Theme is the FoodieSpot palette.
type Theme struct {
	Primary    lipgloss.Color // saffron accents and the assistant
	Secondary  lipgloss.Color // the guest and restaurant names
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Highlight  lipgloss.Color // ratings
	Error      lipgloss.Color
	Border     lipgloss.Color
	Panel      lipgloss.Color // status bar background
}

// DefaultTheme returns the warm palette used by default.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#F97316"), // Saffron
		Secondary:  lipgloss.Color("#14B8A6"), // Teal
		Foreground: lipgloss.Color("#E7E5E4"), // Warm gray
		Muted:      lipgloss.Color("#78716C"), // Stone
		Highlight:  lipgloss.Color("#FACC15"), // Turmeric
		Error:      lipgloss.Color("#EF4444"), // Chilli
		Border:     lipgloss.Color("#57534E"), // Dark stone
		Panel:      lipgloss.Color("#1C1917"), // Charcoal
	}
}

// Styles are the lipgloss styles shared by the views.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style

	// Chat transcript.
	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	InputField     lipgloss.Style

	// Restaurant and reservation details.
	DetailPane lipgloss.Style
	FieldLabel lipgloss.Style
	Rating     lipgloss.Style
	Note       lipgloss.Style

	StatusBar lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme means DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		UserLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		AssistantLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		DetailPane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Padding(0, 1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Width(fieldLabelWidth),

		Rating: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Highlight),

		Note: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Secondary),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Panel).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Field renders one aligned "Label: value" line of a detail pane.
func (s *Styles) Field(label, value string) string {
	return s.FieldLabel.Render(label+":") + value
}

// Stars renders a rating out of five, e.g. "4.6 ★★★★★".
func (s *Styles) Stars(rating float64) string {
	full := int(rating + 0.5)
	full = max(0, min(full, 5))
	return s.Rating.Render(fmt.Sprintf("%.1f %s", rating, strings.Repeat("★", full))) +
		s.Muted.Render(strings.Repeat("☆", 5-full))
}
