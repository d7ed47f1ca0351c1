package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Misgexx/Fairtrack/internal/model"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DatePickerModel is an inline calendar for picking a single day. The
// editing session opens at most one picker at a time; the picker itself
// only tracks the highlighted day.
type DatePickerModel struct {
	theme  Theme
	cursor time.Time
}

// NewDatePickerModel opens a picker on the given date, or today when the
// date is unset.
func NewDatePickerModel(initial model.Date, theme Theme) DatePickerModel {
	cursor := initial.Time()
	if cursor.IsZero() {
		now := time.Now()
		cursor = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	}
	return DatePickerModel{theme: theme, cursor: cursor}
}

// Value returns the highlighted day.
func (m DatePickerModel) Value() model.Date {
	return model.NewDate(m.cursor)
}

// Update moves the highlight. Committing and dismissing are the parent's
// decisions; the picker never closes itself.
func (m DatePickerModel) Update(msg tea.Msg) (DatePickerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		m.cursor = m.cursor.AddDate(0, 0, -1)
	case "right", "l":
		m.cursor = m.cursor.AddDate(0, 0, 1)
	case "up", "k":
		m.cursor = m.cursor.AddDate(0, 0, -7)
	case "down", "j":
		m.cursor = m.cursor.AddDate(0, 0, 7)
	case "pgup", "[":
		m.cursor = m.cursor.AddDate(0, -1, 0)
	case "pgdown", "]":
		m.cursor = m.cursor.AddDate(0, 1, 0)
	case "t":
		now := time.Now()
		m.cursor = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	}
	return m, nil
}

// View renders the month grid around the highlighted day.
func (m DatePickerModel) View() string {
	var b strings.Builder

	header := m.cursor.Format("January 2006")
	b.WriteString(m.theme.Focused.Render(header))
	b.WriteString("\n")
	b.WriteString(m.theme.Label.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	first := time.Date(m.cursor.Year(), m.cursor.Month(), 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Leading blanks up to the first weekday.
	col := int(first.Weekday())
	b.WriteString(strings.Repeat("   ", col))

	for day := 1; day <= daysInMonth; day++ {
		cell := fmt.Sprintf("%2d", day)
		if day == m.cursor.Day() {
			cell = m.theme.Focused.Render(cell)
		}
		b.WriteString(cell)

		col++
		if col == 7 && day != daysInMonth {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Hint.Render("←/→ day · ↑/↓ week · [/] month · t today · Enter select · Esc close"))

	return lipgloss.NewStyle().Render(b.String())
}
