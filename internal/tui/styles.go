package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the editing session.
type Theme struct {
	Title      lipgloss.Style
	Section    lipgloss.Style
	Label      lipgloss.Style
	Hint       lipgloss.Style
	Chip       lipgloss.Style
	ChipActive lipgloss.Style
	Focused    lipgloss.Style
	Input      lipgloss.Style
	Danger     lipgloss.Style
	Notice     lipgloss.Style
	Saved      lipgloss.Style
	Card       lipgloss.Style
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
}

// DefaultTheme is the default editor theme.
var DefaultTheme = func() Theme {
	t := Theme{
		Primary: lipgloss.Color("#2f80ed"),
		Muted:   lipgloss.Color("#737373"),
		Error:   lipgloss.Color("#d11a2a"),
		Success: lipgloss.Color("#10b981"),
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fafafa")).
		Background(lipgloss.Color("#000000")).Padding(0, 1)
	t.Section = lipgloss.NewStyle().Bold(true)
	t.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3a3a3"))
	t.Hint = lipgloss.NewStyle().Foreground(t.Muted).Italic(true)
	t.Chip = lipgloss.NewStyle().Padding(0, 1).
		Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted)
	t.ChipActive = lipgloss.NewStyle().Padding(0, 1).Bold(true).
		Border(lipgloss.RoundedBorder()).BorderForeground(t.Primary).
		Foreground(t.Primary)
	t.Focused = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	t.Input = lipgloss.NewStyle()
	t.Danger = lipgloss.NewStyle().Foreground(t.Error)
	t.Notice = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
	t.Saved = lipgloss.NewStyle().Foreground(t.Success)
	t.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1).MarginBottom(1)

	return t
}()
