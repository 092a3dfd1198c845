// Package theme holds the data-driven style tokens consumed by the view.
// Styles are plain values resolved at startup; the rendering layer never
// computes styles dynamically.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes the reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Panel         *lipgloss.Style
	Input         *lipgloss.Style
	Placeholder   *lipgloss.Style
	Primary       *lipgloss.Style
	Secondary     *lipgloss.Style
	Selected      *lipgloss.Style
	Hint          *lipgloss.Style
	Divider       *lipgloss.Style
	Menu          *lipgloss.Style
	MenuOption    *lipgloss.Style
	MenuSelected  *lipgloss.Style
	Error         *lipgloss.Style
}

var defaultStyles = Styles{
	Panel: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(1, 2),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Primary: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Secondary: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Selected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Divider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Menu: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	MenuOption: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	MenuSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
